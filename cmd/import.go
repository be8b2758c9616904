package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/RecipeLab/configs"
	"droscher.com/RecipeLab/pkg/integrations"
	"droscher.com/RecipeLab/pkg/repository"
)

type ImportCmd struct {
	ConfigFile string `default:".RecipeLab.toml" help:"Path to config file" short:"c"`
	URL        string `arg:""                    help:"Page holding a schema.org recipe"`
}

func (i *ImportCmd) Run(ctx *Context) error {
	logger := commandLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	found, err := integrations.NewFinder(conf.Integrations.Recipe, logger).FindRecipe(i.URL)
	if err != nil {
		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer repo.Close() //nolint:errcheck

	recipe, err := repo.InsertRecipe(context.Background(), *found)
	if err != nil {
		return err
	}

	logger.Info("imported recipe",
		zap.Stringer("id", recipe.ID),
		zap.String("name", recipe.Name),
		zap.Int("ingredients", len(recipe.Ingredients)),
		zap.Int("directions", len(recipe.Directions)))

	return nil
}

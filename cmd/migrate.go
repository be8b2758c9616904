package cmd

import (
	"go.uber.org/zap"

	"droscher.com/RecipeLab/configs"
	"droscher.com/RecipeLab/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".RecipeLab.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := commandLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer repo.Close() //nolint:errcheck

	if err := repo.Migrate(); err != nil {
		logger.Error("migration failed", zap.Error(err))

		return err
	}

	logger.Info("migrations applied", zap.String("driver", conf.DB.Driver))

	return nil
}

package integrations

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/RecipeLab/pkg/integrations/schemaorg-web"
	"droscher.com/RecipeLab/pkg/model"
)

var (
	ErrRecipeNotFound = schemaorgweb.ErrRecipeNotFound
	ErrFetchFailed    = schemaorgweb.ErrFetchFailed
	ErrNoIntegrations = errors.New("no recipe integrations configured")
)

type Integration interface {
	FindRecipe(url string) (*model.Recipe, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == schemaorgweb.IntegrationName {
		return schemaorgweb.NewSchemaOrgWebIntegration(logger)
	}

	return nil
}

// Finder asks each configured integration in turn and returns the first recipe found.
type Finder struct {
	names  []string
	logger *zap.Logger
}

func NewFinder(names []string, logger *zap.Logger) *Finder {
	return &Finder{names: names, logger: logger}
}

func (f *Finder) FindRecipe(url string) (*model.Recipe, error) {
	var errs error

	for _, name := range f.names {
		integration := GetIntegration(name, f.logger)
		if integration == nil {
			f.logger.Warn("unknown recipe integration", zap.String("integration", name))

			continue
		}

		recipe, err := integration.FindRecipe(url)
		if err != nil {
			f.logger.Error("failed recipe import", zap.String("integration", name), zap.String("url", url), zap.Error(err))
			multierr.AppendInto(&errs, err)

			continue
		}

		return recipe, nil
	}

	if errs == nil {
		return nil, ErrNoIntegrations
	}

	return nil, errs
}

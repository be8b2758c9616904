package schemaorgweb

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

const (
	IntegrationName = "schemaorg_web"
	requestTimeout  = 15 * time.Second
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

var (
	ErrRecipeNotFound = errors.New("no recipe found on page")
	ErrFetchFailed    = errors.New("failed to fetch page")
)

// SchemaOrgWebIntegration reads schema.org Recipe JSON-LD embedded in a web page.
type SchemaOrgWebIntegration struct {
	logger *zap.Logger
}

func NewSchemaOrgWebIntegration(logger *zap.Logger) *SchemaOrgWebIntegration {
	return &SchemaOrgWebIntegration{logger: logger}
}

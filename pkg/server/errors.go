package server

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/RecipeLab/pkg/integrations"
	"droscher.com/RecipeLab/pkg/repository"
	"droscher.com/RecipeLab/pkg/server/rest"
)

var ErrInvalidInput = errors.New("bad request")

var notFoundMessage = regexp.MustCompile(`No \w+ with id:`)

// StatusFromError is the only place a failure is turned into an HTTP status.
func StatusFromError(err error) int {
	var (
		restErr          *rest.Error
		validationErrors validator.ValidationErrors
	)

	switch {
	case errors.Is(err, repository.ErrNotFound), notFoundMessage.MatchString(err.Error()):
		return http.StatusNotFound
	case errors.As(err, &restErr) && restErr.Status != 0:
		return restErr.Status
	case errors.Is(err, ErrInvalidInput), errors.As(err, &validationErrors):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, integrations.ErrRecipeNotFound), errors.Is(err, integrations.ErrNoIntegrations):
		return http.StatusUnprocessableEntity
	case errors.Is(err, integrations.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := StatusFromError(err)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}

	writeJSON(w, logger, status, rest.Error{Status: status, Message: err.Error()})
}

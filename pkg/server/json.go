package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/RecipeLab/pkg/repository"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}

// pathID reads the {id} path segment. An id that is not a UUID cannot match a row.
func pathID(r *http.Request, resource string) (uuid.UUID, error) {
	raw := r.PathValue("id")

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &repository.NotFoundError{Resource: resource, ID: raw}
	}

	return id, nil
}

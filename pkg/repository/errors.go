package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// NotFoundError reports an id that matched no row. The message format
// "No <resource> with id:<id> found." is part of the HTTP contract.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s with id:%s found.", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(resource string, id fmt.Stringer) error {
	return &NotFoundError{Resource: resource, ID: id.String()}
}

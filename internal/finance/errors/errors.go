package errors

import (
	"errors"
)

var (
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category is still used by transactions")
	ErrInvalidDate      = errors.New("date must be a valid ISO 8601 string")
)

// UnexpectedStoreError hides storage failures behind a generic message while
// keeping the cause reachable through errors.Unwrap for logging.
type UnexpectedStoreError struct {
	Cause error
}

func (e *UnexpectedStoreError) Error() string {
	return "unexpected store error"
}

func (e *UnexpectedStoreError) Unwrap() error {
	return e.Cause
}

func NewUnexpectedStoreError(cause error) error {
	return &UnexpectedStoreError{Cause: cause}
}

func IsUnexpectedStoreError(err error) bool {
	var storeErr *UnexpectedStoreError
	return errors.As(err, &storeErr)
}

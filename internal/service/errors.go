package service

import (
	"errors"
	"fmt"
	"strings"

	"go-stock-ledger/pkg/validator"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAuthFailure       = errors.New("invalid username or password")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrProductNotFound   = errors.New("product not found")
)

// ValidationError lists the fields that failed validation. It matches
// ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []*validator.ErrorResponse
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, fmt.Sprintf("%s (%s)", f.FailedField, f.Tag))
	}
	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, tag string) *ValidationError {
	return &ValidationError{Fields: []*validator.ErrorResponse{{FailedField: field, Tag: tag}}}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

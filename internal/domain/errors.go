package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals an empty, whitespace-only or oversized value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists signals that an entry with the same content is already stored.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound signals that no entry exists for the derived identifier.
	ErrNotFound = errors.New("not found")
	// ErrValidation signals a malformed filter value.
	ErrValidation = errors.New("validation failed")
	// ErrUnparseable signals that no known pattern was recognized in a query.
	ErrUnparseable = errors.New("unable to parse natural language query")
	// ErrConflictingFilters signals mutually exclusive patterns in one query.
	ErrConflictingFilters = errors.New("query parsed but resulted in conflicting filters")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)

// FilterError wraps ErrValidation with the offending filter parameter.
type FilterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("%s: %s=%q: %s", ErrValidation.Error(), e.Param, e.Value, e.Reason)
}

func (e *FilterError) Unwrap() error { return ErrValidation }

// NewFilterError creates a filter validation error.
func NewFilterError(param, value, reason string) error {
	return &FilterError{Param: param, Value: value, Reason: reason}
}

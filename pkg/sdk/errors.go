package strindex

import "github.com/kailas-cloud/strindex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput       = domain.ErrInvalidInput
	ErrAlreadyExists      = domain.ErrAlreadyExists
	ErrNotFound           = domain.ErrNotFound
	ErrValidation         = domain.ErrValidation
	ErrUnparseable        = domain.ErrUnparseable
	ErrConflictingFilters = domain.ErrConflictingFilters
)

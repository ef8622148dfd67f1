package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/strindex/internal/domain"
	"github.com/kailas-cloud/strindex/internal/domain/analysis"
)

// MaxValueSize is the default maximum value size in bytes.
const MaxValueSize = 262144 // 256KB

// Entry is a stored, analyzed string (immutable value object).
// Its ID is always the content hash of its value.
type Entry struct {
	id         string
	value      string
	properties analysis.Properties
	createdAt  time.Time
}

// New trims raw, validates it and analyzes the result.
// Empty or whitespace-only input and input above maxSize bytes are rejected
// with domain.ErrInvalidInput. maxSize <= 0 means MaxValueSize.
func New(raw string, createdAt time.Time, maxSize int) (Entry, error) {
	if maxSize <= 0 {
		maxSize = MaxValueSize
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return Entry{}, fmt.Errorf("value is empty: %w", domain.ErrInvalidInput)
	}
	if len(value) > maxSize {
		return Entry{}, fmt.Errorf("value too large (max %d bytes): %w", maxSize, domain.ErrInvalidInput)
	}

	props := analysis.Analyze(value)
	return Entry{
		id:         props.SHA256Hash,
		value:      value,
		properties: props,
		createdAt:  createdAt,
	}, nil
}

// Reconstruct creates an Entry without validation (storage hydration).
func Reconstruct(id, value string, props analysis.Properties, createdAt time.Time) Entry {
	return Entry{id: id, value: value, properties: props, createdAt: createdAt}
}

// KeyFor derives the identifier a lookup value maps to.
// With strict set the value is hashed exactly as supplied; otherwise it is
// trimmed first, the same way New trims before hashing.
func KeyFor(value string, strict bool) string {
	if !strict {
		value = strings.TrimSpace(value)
	}
	return analysis.ContentHash(value)
}

// ID returns the content-derived identifier.
func (e *Entry) ID() string { return e.id }

// Value returns the trimmed stored value.
func (e *Entry) Value() string { return e.value }

// Properties returns the analysis result.
func (e *Entry) Properties() analysis.Properties { return e.properties }

// CreatedAt returns the creation time.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

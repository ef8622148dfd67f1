package entry

import (
	"context"
	"fmt"
	"time"

	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
)

// Service implements create / get / list / delete over a content-addressed store.
type Service struct {
	repo         Repository
	now          func() time.Time
	maxValueSize int
	strictLookup bool
}

// New creates an entry service.
func New(repo Repository) *Service {
	return &Service{
		repo:         repo,
		now:          time.Now,
		maxValueSize: domentry.MaxValueSize,
	}
}

// WithMaxValueSize caps the trimmed value size in bytes.
func (s *Service) WithMaxValueSize(n int) *Service {
	if n > 0 {
		s.maxValueSize = n
	}
	return s
}

// WithStrictLookup makes GetByValue and DeleteByValue hash the value exactly
// as supplied instead of trimming it first.
func (s *Service) WithStrictLookup(strict bool) *Service {
	s.strictLookup = strict
	return s
}

// WithClock overrides the creation time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Create trims and analyzes value and stores it.
// Fails with domain.ErrInvalidInput for empty input and domain.ErrAlreadyExists
// when the same content is already stored; the stored entry is left untouched.
func (s *Service) Create(ctx context.Context, value string) (domentry.Entry, error) {
	e, err := domentry.New(value, s.now().UTC(), s.maxValueSize)
	if err != nil {
		return domentry.Entry{}, fmt.Errorf("new entry: %w", err)
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return domentry.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return e, nil
}

// GetByValue looks an entry up by its value.
func (s *Service) GetByValue(ctx context.Context, value string) (domentry.Entry, error) {
	e, err := s.repo.Get(ctx, domentry.KeyFor(value, s.strictLookup))
	if err != nil {
		return domentry.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// List returns all entries satisfying f.
func (s *Service) List(ctx context.Context, f filter.Filter) ([]domentry.Entry, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return filter.Apply(all, f), nil
}

// DeleteByValue removes the entry for value.
func (s *Service) DeleteByValue(ctx context.Context, value string) error {
	if err := s.repo.Delete(ctx, domentry.KeyFor(value, s.strictLookup)); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

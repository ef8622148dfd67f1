package entry

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/strindex/internal/domain"
	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
)

// Operation result labels.
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// InstrumentedRepository wraps a Repository with operation counters and a
// live entry gauge. Both collectors are optional.
type InstrumentedRepository struct {
	inner   Repository
	ops     *prometheus.CounterVec
	entries prometheus.Gauge
}

// NewInstrumentedRepository wraps inner. ops is labelled by operation and result.
func NewInstrumentedRepository(
	inner Repository, ops *prometheus.CounterVec, entries prometheus.Gauge,
) *InstrumentedRepository {
	return &InstrumentedRepository{inner: inner, ops: ops, entries: entries}
}

// Insert delegates and records the outcome.
func (r *InstrumentedRepository) Insert(ctx context.Context, e domentry.Entry) error {
	err := r.inner.Insert(ctx, e)
	r.record("insert", err)
	if err == nil && r.entries != nil {
		r.entries.Inc()
	}
	return err //nolint:wrapcheck // decorator
}

// Get delegates and records the outcome.
func (r *InstrumentedRepository) Get(ctx context.Context, id string) (domentry.Entry, error) {
	e, err := r.inner.Get(ctx, id)
	r.record("get", err)
	return e, err //nolint:wrapcheck // decorator
}

// List delegates and records the outcome.
func (r *InstrumentedRepository) List(ctx context.Context) ([]domentry.Entry, error) {
	out, err := r.inner.List(ctx)
	r.record("list", err)
	return out, err //nolint:wrapcheck // decorator
}

// Delete delegates and records the outcome.
func (r *InstrumentedRepository) Delete(ctx context.Context, id string) error {
	err := r.inner.Delete(ctx, id)
	r.record("delete", err)
	if err == nil && r.entries != nil {
		r.entries.Dec()
	}
	return err //nolint:wrapcheck // decorator
}

// Count delegates without recording.
func (r *InstrumentedRepository) Count(ctx context.Context) (int, error) {
	return r.inner.Count(ctx) //nolint:wrapcheck // decorator
}

func (r *InstrumentedRepository) record(op string, err error) {
	if r.ops == nil {
		return
	}
	r.ops.WithLabelValues(op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrAlreadyExists):
		return ResultConflict
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	default:
		return ResultError
	}
}

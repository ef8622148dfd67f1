package entry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kailas-cloud/strindex/internal/domain"
	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
)

// Repo is the process-lifetime entry store. One mutex guards the whole map:
// every read and write runs inside the same critical section.
type Repo struct {
	mu      sync.Mutex
	entries map[string]domentry.Entry
}

// New creates an empty store.
func New() *Repo {
	return &Repo{entries: make(map[string]domentry.Entry)}
}

// Insert stores e unless its ID is already present.
// An existing entry is never replaced; the call fails with domain.ErrAlreadyExists.
func (r *Repo) Insert(_ context.Context, e domentry.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[e.ID()]; ok {
		return fmt.Errorf("entry %s: %w", e.ID(), domain.ErrAlreadyExists)
	}
	r.entries[e.ID()] = e
	return nil
}

// Get returns the entry stored under id.
func (r *Repo) Get(_ context.Context, id string) (domentry.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return domentry.Entry{}, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

// List returns a snapshot of all entries, oldest first (ties broken by ID).
func (r *Repo) List(_ context.Context) ([]domentry.Entry, error) {
	r.mu.Lock()
	out := make([]domentry.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt(), out[j].CreatedAt()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

// Delete removes the entry stored under id.
func (r *Repo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	delete(r.entries, id)
	return nil
}

// Count returns the number of stored entries.
func (r *Repo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries), nil
}

// Ping reports store availability. The map is always reachable; only a
// cancelled context fails.
func (r *Repo) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

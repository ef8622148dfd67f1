package entry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/strindex/internal/domain"
	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
)

func newEntry(t *testing.T, v string, at time.Time) domentry.Entry {
	t.Helper()
	e, err := domentry.New(v, at, 0)
	require.NoError(t, err)
	return e
}

func TestRepo_InsertGetDelete(t *testing.T) {
	ctx := context.Background()
	r := New()
	e := newEntry(t, "hello", time.Now())

	require.NoError(t, r.Insert(ctx, e))

	got, err := r.Get(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Value())

	require.NoError(t, r.Delete(ctx, e.ID()))
	assert.ErrorIs(t, r.Delete(ctx, e.ID()), domain.ErrNotFound)

	_, err = r.Get(ctx, e.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_InsertNeverReplaces(t *testing.T) {
	ctx := context.Background()
	r := New()
	first := newEntry(t, "hello", time.Unix(100, 0))
	second := newEntry(t, "hello", time.Unix(200, 0))

	require.NoError(t, r.Insert(ctx, first))
	assert.ErrorIs(t, r.Insert(ctx, second), domain.ErrAlreadyExists)

	got, err := r.Get(ctx, first.ID())
	require.NoError(t, err)
	assert.True(t, got.CreatedAt().Equal(time.Unix(100, 0)))
}

func TestRepo_ListOrder(t *testing.T) {
	ctx := context.Background()
	r := New()
	base := time.Unix(1000, 0)

	require.NoError(t, r.Insert(ctx, newEntry(t, "third", base.Add(2*time.Second))))
	require.NoError(t, r.Insert(ctx, newEntry(t, "first", base)))
	require.NoError(t, r.Insert(ctx, newEntry(t, "second", base.Add(time.Second))))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Value())
	assert.Equal(t, "second", list[1].Value())
	assert.Equal(t, "third", list[2].Value())

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRepo_ListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	r := New()
	e := newEntry(t, "x", time.Now())
	require.NoError(t, r.Insert(ctx, e))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.NoError(t, r.Delete(ctx, e.ID()))

	assert.Len(t, list, 1)
}

func TestRepo_ConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	r := New()
	e := newEntry(t, "race", time.Now())

	const workers = 64
	var (
		wg        sync.WaitGroup
		ok        atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.Insert(ctx, e)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, domain.ErrAlreadyExists):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, workers-1, conflicts.Load())
}

func TestRepo_ConcurrentDelete(t *testing.T) {
	ctx := context.Background()
	r := New()
	e := newEntry(t, "gone", time.Now())
	require.NoError(t, r.Insert(ctx, e))

	const workers = 32
	var (
		wg sync.WaitGroup
		ok atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Delete(ctx, e.ID()) == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok.Load())
}

func TestRepo_Ping(t *testing.T) {
	r := New()
	require.NoError(t, r.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Ping(ctx), context.Canceled)
}

package entry

import (
	"context"

	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
)

// Repository defines the storage contract for entries.
type Repository interface {
	Insert(ctx context.Context, e domentry.Entry) error
	Get(ctx context.Context, id string) (domentry.Entry, error)
	List(ctx context.Context) ([]domentry.Entry, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

package search

import (
	"context"

	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
)

// Lister returns stored entries matching a filter.
type Lister interface {
	List(ctx context.Context, f filter.Filter) ([]domentry.Entry, error)
}

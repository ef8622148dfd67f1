package health

import "context"

// StorePinger checks entry store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// EntryCounter reports how many entries are stored.
type EntryCounter interface {
	Count(ctx context.Context) (int, error)
}

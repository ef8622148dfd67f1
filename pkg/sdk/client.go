package strindex

import (
	"context"
	"fmt"
	"time"

	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
	"github.com/kailas-cloud/strindex/internal/domain/filter"
	"github.com/kailas-cloud/strindex/internal/domain/nlquery"
	entryrepo "github.com/kailas-cloud/strindex/internal/repository/entry"
	entryuc "github.com/kailas-cloud/strindex/internal/usecase/entry"
	healthuc "github.com/kailas-cloud/strindex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/strindex/internal/usecase/search"
)

// Internal interfaces so tests can substitute the use cases.
type entryUseCase interface {
	Create(ctx context.Context, value string) (domentry.Entry, error)
	GetByValue(ctx context.Context, value string) (domentry.Entry, error)
	List(ctx context.Context, f filter.Filter) ([]domentry.Entry, error)
	DeleteByValue(ctx context.Context, value string) error
	Count(ctx context.Context) (int, error)
}

type searchUseCase interface {
	Interpret(ctx context.Context, text string) (nlquery.Interpretation, error)
	Search(ctx context.Context, text string) (nlquery.Interpretation, []domentry.Entry, error)
}

// Client is the strindex SDK entry point. It is safe for concurrent use.
type Client struct {
	entrySvc  entryUseCase
	searchSvc searchUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client with an empty in-memory store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{maxValueBytes: domentry.MaxValueSize}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store := entryrepo.New()
	entrySvc := entryuc.New(store).
		WithMaxValueSize(cfg.maxValueBytes).
		WithStrictLookup(cfg.strictLookup)

	return &Client{
		entrySvc:  entrySvc,
		searchSvc: searchuc.New(entrySvc),
		healthSvc: healthuc.New(store, store),
		obs:       obs,
	}, nil
}

// Create trims value, analyzes it and stores it.
// Returns ErrInvalidInput for empty or oversized values and ErrAlreadyExists
// when the same content is already stored.
func (c *Client) Create(ctx context.Context, value string) (s String, err error) {
	start := time.Now()
	defer func() { c.obs.observe("create", start, err) }()

	e, err := c.entrySvc.Create(ctx, value)
	if err != nil {
		return String{}, fmt.Errorf("create: %w", err)
	}
	return fromEntry(&e), nil
}

// Get returns the stored string for value. Returns ErrNotFound if absent.
func (c *Client) Get(ctx context.Context, value string) (s String, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get", start, err) }()

	e, err := c.entrySvc.GetByValue(ctx, value)
	if err != nil {
		return String{}, fmt.Errorf("get: %w", err)
	}
	return fromEntry(&e), nil
}

// List returns every stored string matching fs, oldest first.
// Negative counts fail with ErrValidation.
func (c *Client) List(ctx context.Context, fs Filters) (out []String, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list", start, err) }()

	f, err := toFilter(fs)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	found, err := c.entrySvc.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return fromEntries(found), nil
}

// Delete removes the stored string for value. Returns ErrNotFound if absent.
func (c *Client) Delete(ctx context.Context, value string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("delete", start, err) }()

	if err = c.entrySvc.DeleteByValue(ctx, value); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// Count returns how many strings are stored.
func (c *Client) Count(ctx context.Context) (int, error) {
	n, err := c.entrySvc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// Interpret translates a natural language query without running it.
// Returns ErrUnparseable or ErrConflictingFilters.
func (c *Client) Interpret(ctx context.Context, query string) (in Interpretation, err error) {
	start := time.Now()
	defer func() { c.obs.observe("interpret", start, err) }()

	parsed, err := c.searchSvc.Interpret(ctx, query)
	if err != nil {
		return Interpretation{}, fmt.Errorf("interpret: %w", err)
	}
	return fromInterpretation(parsed), nil
}

// Search translates query and returns the matching strings.
func (c *Client) Search(ctx context.Context, query string) (in Interpretation, out []String, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	parsed, found, err := c.searchSvc.Search(ctx, query)
	if err != nil {
		return Interpretation{}, nil, fmt.Errorf("search: %w", err)
	}
	return fromInterpretation(parsed), fromEntries(found), nil
}

package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/strindex/internal/domain"
	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
	"github.com/kailas-cloud/strindex/internal/domain/nlquery"
	logpkg "github.com/kailas-cloud/strindex/internal/logger"
)

// Interpretation outcome labels.
const (
	OutcomeParsed      = "parsed"
	OutcomeUnparseable = "unparseable"
	OutcomeConflicting = "conflicting"
)

// Service answers natural-language queries by translating them into a filter
// and listing the matching entries.
type Service struct {
	entries  Lister
	outcomes *prometheus.CounterVec
}

// New creates a search service.
func New(entries Lister) *Service {
	return &Service{entries: entries}
}

// WithOutcomeCounter records every interpretation on c, labelled by outcome.
func (s *Service) WithOutcomeCounter(c *prometheus.CounterVec) *Service {
	s.outcomes = c
	return s
}

// Interpret translates text without touching the store.
func (s *Service) Interpret(ctx context.Context, text string) (nlquery.Interpretation, error) {
	in, err := nlquery.Interpret(text)
	s.observe(ctx, text, err)
	if err != nil {
		return nlquery.Interpretation{}, fmt.Errorf("interpret: %w", err)
	}
	return in, nil
}

// Search interprets text and returns the matching entries along with the
// interpretation that produced them.
func (s *Service) Search(ctx context.Context, text string) (nlquery.Interpretation, []domentry.Entry, error) {
	in, err := s.Interpret(ctx, text)
	if err != nil {
		return nlquery.Interpretation{}, nil, err
	}

	found, err := s.entries.List(ctx, in.Filter)
	if err != nil {
		return nlquery.Interpretation{}, nil, fmt.Errorf("list entries: %w", err)
	}
	return in, found, nil
}

func (s *Service) observe(ctx context.Context, text string, err error) {
	outcome := OutcomeParsed
	switch {
	case errors.Is(err, domain.ErrConflictingFilters):
		outcome = OutcomeConflicting
	case err != nil:
		outcome = OutcomeUnparseable
	}

	if s.outcomes != nil {
		s.outcomes.WithLabelValues(outcome).Inc()
	}

	logpkg.FromContext(ctx).Debug("query interpreted",
		zap.String("query", text),
		zap.String("normalized", nlquery.Normalize(text)),
		zap.String("outcome", outcome),
	)
}

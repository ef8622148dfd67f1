package strindex

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	strictLookup  bool
	maxValueBytes int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithStrictLookup makes Get and Delete hash the value exactly as given.
// By default lookup values are trimmed the same way Create trims.
func WithStrictLookup() Option {
	return optionFunc(func(c *clientConfig) {
		c.strictLookup = true
	})
}

// WithMaxValueSize caps the trimmed value size in bytes. Default: 256KB.
func WithMaxValueSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxValueBytes = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

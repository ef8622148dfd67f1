package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Store and query interpreter metrics.
var (
	StoreOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	StoreEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "entries",
			Help:      "Number of entries currently stored",
		},
	)

	QueryInterpretationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "interpretations_total",
			Help:      "Natural language query interpretations by outcome",
		},
		[]string{"outcome"}, // parsed / unparseable / conflicting
	)
)

var registerStoreOnce sync.Once

// RegisterStoreMetrics registers store and query metrics on the default
// registry. Safe to call more than once.
func RegisterStoreMetrics() {
	registerStoreOnce.Do(func() {
		prometheus.MustRegister(StoreOperationsTotal)
		prometheus.MustRegister(StoreEntries)
		prometheus.MustRegister(QueryInterpretationsTotal)
	})
}

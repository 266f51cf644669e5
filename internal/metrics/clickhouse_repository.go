package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerStoreQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txreview",
		Subsystem: "ledger_store",
		Name:      "queries_total",
		Help:      "ClickHouse ledger and audit queries by outcome.",
	}, []string{"operation", "network", "status"})
	ledgerStoreQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txreview",
		Subsystem: "ledger_store",
		Name:      "query_duration_seconds",
		Help:      "ClickHouse query latency, including batch sends.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "network"})
)

// ClickhouseRepository records ClickHouse query outcomes of the ledger store.
type ClickhouseRepository struct{}

func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe is called in a defer once per repository method.
func (ClickhouseRepository) Observe(operation, network string, err error, started time.Time) {
	network = orUnknown(network)
	ledgerStoreQueriesTotal.WithLabelValues(operation, network, status(err)).Inc()
	ledgerStoreQueryDuration.WithLabelValues(operation, network).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerGatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txreview",
		Subsystem: "ledger_gateway",
		Name:      "operations_total",
		Help:      "Count of ledger lookups.",
	}, []string{"operation", "network", "status"})
	ledgerGatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txreview",
		Subsystem: "ledger_gateway",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	ledgerGatewayBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txreview",
		Subsystem: "ledger_gateway",
		Name:      "batch_size",
		Help:      "Number of addresses or tokens requested per ledger lookup.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"operation"})
)

// LedgerGateway tracks metrics for ledger lookups.
type LedgerGateway struct{}

// NewLedgerGateway constructs a metrics collector for ledger lookups.
func NewLedgerGateway() *LedgerGateway {
	return &LedgerGateway{}
}

// Observe records a single lookup outcome, duration and batch size.
func (m LedgerGateway) Observe(operation, network string, size int, err error, started time.Time) {
	outcome := status(err)
	network = orUnknown(network)

	ledgerGatewayRequestsTotal.WithLabelValues(operation, network, outcome).Inc()
	ledgerGatewayRequestDuration.WithLabelValues(operation, network, outcome).Observe(time.Since(started).Seconds())
	ledgerGatewayBatchSize.WithLabelValues(operation).Observe(float64(size))
}

// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reviewBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txreview",
		Subsystem: "review_builder",
		Name:      "builds_total",
		Help:      "Count of review builds.",
	}, []string{"classification", "network", "status"})

	reviewBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txreview",
		Subsystem: "review_builder",
		Name:      "build_duration_seconds",
		Help:      "Duration of building a review.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"classification", "network", "status"})
)

// ReviewBuilder tracks metrics for review builds of one network.
type ReviewBuilder struct {
	network string
}

// NewReviewBuilder constructs a ReviewBuilder with sane defaults.
func NewReviewBuilder(network string) *ReviewBuilder {
	return &ReviewBuilder{network: orUnknown(network)}
}

// ObserveBuild records a build outcome. Summaries without a structured review are counted apart
// from failures.
func (m ReviewBuilder) ObserveBuild(classification string, err error, started time.Time) {
	status := model.BuildStatus(err)
	classification = orUnknown(classification)

	reviewBuildsTotal.WithLabelValues(classification, m.network, status).Inc()
	reviewBuildDuration.WithLabelValues(classification, m.network, status).Observe(time.Since(started).Seconds())
}

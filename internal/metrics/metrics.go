// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts upstream calls by provider and outcome ("ok", "error").
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "windwaves",
		Name:      "upstream_requests_total",
		Help:      "Upstream forecast requests by provider and outcome.",
	}, []string{"provider", "outcome"})

	// PipelineDuration observes fetch-and-score time per location.
	PipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "windwaves",
		Name:      "pipeline_duration_seconds",
		Help:      "Time to fetch and score one location.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})

	// CacheLookups counts bundle cache lookups by result ("hit", "miss").
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "windwaves",
		Name:      "cache_lookups_total",
		Help:      "Bundle cache lookups by result.",
	}, []string{"result"})
)

// Outcome maps an error to the outcome label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

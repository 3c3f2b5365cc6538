// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "artifactscan"

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of ledger explorer API operations.",
	}, []string{"operation", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger explorer API operations, including rate limiter wait.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60},
	}, []string{"operation", "status"})
)

// ExplorerClient tracks metrics for ledger explorer calls.
type ExplorerClient struct{}

// NewExplorerClient creates an ExplorerClient metrics collector.
func NewExplorerClient() *ExplorerClient {
	return &ExplorerClient{}
}

// Observe records duration and status of an explorer call.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	explorerRequestsTotal.WithLabelValues(operation, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	correlatorLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "correlator",
		Name:      "lookups_total",
		Help:      "Count of task lookups by outcome and the window that resolved them.",
	}, []string{"status", "window", "cached"})
	correlatorLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "correlator",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of task lookups.",
		Buckets:   []float64{.001, .01, .1, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"status"})
	correlatorMultipleLogsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "correlator",
		Name:      "multiple_logs_total",
		Help:      "Count of task ids that matched more than one submission log.",
	})
)

// Correlator tracks task correlation metrics.
type Correlator struct{}

// NewCorrelator creates a Correlator metrics collector.
func NewCorrelator() *Correlator {
	return &Correlator{}
}

// ObserveLookup records one FindTask call. window is 0 for cache hits and misses.
func (m Correlator) ObserveLookup(status model.TaskStatus, window int, cached bool, started time.Time) {
	correlatorLookupsTotal.WithLabelValues(string(status), strconv.Itoa(window), strconv.FormatBool(cached)).Inc()
	correlatorLookupDuration.WithLabelValues(string(status)).Observe(time.Since(started).Seconds())
}

// IncMultipleLogs counts a task id with competing submission logs.
func (m Correlator) IncMultipleLogs() {
	correlatorMultipleLogsTotal.Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "flush_total",
		Help:      "Count of scan event batch flushes.",
	}, []string{"status"})
	eventsFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "flush_size",
		Help:      "Number of events per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
	eventsFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "flush_duration_seconds",
		Help:      "Duration of scan event batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	eventsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "dropped_total",
		Help:      "Count of scan events dropped because the queue was full or stopped.",
	})
)

// Events tracks the analytics event sink.
type Events struct{}

// NewEvents creates an Events metrics collector.
func NewEvents() *Events {
	return &Events{}
}

// ObserveFlush records a batch flush.
func (m Events) ObserveFlush(size int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	eventsFlushTotal.WithLabelValues(status).Inc()
	eventsFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	eventsFlushSize.Observe(float64(size))
}

// IncDropped counts a dropped event.
func (m Events) IncDropped() {
	eventsDroppedTotal.Inc()
}

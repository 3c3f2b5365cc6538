package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	proberProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "prober",
		Name:      "probes_total",
		Help:      "Count of CID probes by deciding gateway and outcome.",
	}, []string{"gateway", "result"})
	proberProbeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "prober",
		Name:      "probe_duration_seconds",
		Help:      "Duration of CID probes across all gateways tried.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

// Prober tracks gateway probe metrics.
type Prober struct{}

// NewProber creates a Prober metrics collector.
func NewProber() *Prober {
	return &Prober{}
}

// ObserveProbe records a probe outcome. gateway is empty when no gateway answered.
func (m Prober) ObserveProbe(gateway string, accessible, image bool, started time.Time) {
	result := "unreachable"
	switch {
	case accessible && image:
		result = "image"
	case accessible:
		result = "not_image"
	}
	if gateway == "" {
		gateway = "none"
	}
	proberProbesTotal.WithLabelValues(gateway, result).Inc()
	proberProbeDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}

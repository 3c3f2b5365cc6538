package metrics

import (
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recheckPassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recheck",
		Name:      "passes_total",
		Help:      "Count of candidate recheck passes.",
	}, []string{"status"})
	recheckPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "recheck",
		Name:      "pass_duration_seconds",
		Help:      "Duration of candidate recheck passes.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300},
	}, []string{"status"})
	recheckCandidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recheck",
		Name:      "candidates_total",
		Help:      "Count of rechecked candidates by outcome.",
	}, []string{"kind"})
	recheckPromotedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recheck",
		Name:      "promoted_total",
		Help:      "Count of candidates promoted to artifacts.",
	})
)

// Recheck tracks the candidate maintenance pass.
type Recheck struct{}

// NewRecheck creates a Recheck metrics collector.
func NewRecheck() *Recheck {
	return &Recheck{}
}

// ObserveRecheck records one pass.
func (m Recheck) ObserveRecheck(_, promoted int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	recheckPassesTotal.WithLabelValues(status).Inc()
	recheckPassDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	recheckPromotedTotal.Add(float64(promoted))
}

// IncOutcome counts a rechecked candidate outcome.
func (m Recheck) IncOutcome(kind model.ScanEventKind) {
	recheckCandidatesTotal.WithLabelValues(string(kind)).Inc()
}

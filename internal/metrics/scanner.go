package metrics

import (
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of scan passes by mode and status (success, partial, skipped, error).",
	}, []string{"mode", "status"})
	scannerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of scan passes.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
	}, []string{"mode", "status"})
	scannerChunksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "chunks_total",
		Help:      "Count of scanned block chunks.",
	}, []string{"status"})
	scannerChunkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "chunk_duration_seconds",
		Help:      "Duration of scanning one block chunk.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	scannerChunkTransactions = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "chunk_transactions",
		Help:      "Number of transactions fetched per chunk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	})
	scannerOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "outcomes_total",
		Help:      "Count of per-CID scan outcomes.",
	}, []string{"kind"})
	scannerLastScannedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "last_scanned_block",
		Help:      "Checkpoint block of the last completed chunk.",
	})
	scannerTotalArtifacts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "total_artifacts",
		Help:      "Persisted artifact count recorded on the checkpoint.",
	})
)

// Scanner tracks scan orchestration metrics.
type Scanner struct{}

// NewScanner creates a Scanner metrics collector.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ObserveScan records a finished scan pass.
func (m Scanner) ObserveScan(res model.ScanResult, err error, started time.Time) {
	status := "success"
	switch {
	case err != nil:
		status = "error"
	case res.Skipped:
		status = "skipped"
	case res.PartialFailure:
		status = "partial"
	}
	scannerScansTotal.WithLabelValues(string(res.Mode), status).Inc()
	scannerScanDuration.WithLabelValues(string(res.Mode), status).Observe(time.Since(started).Seconds())
}

// ObserveChunk records one block chunk.
func (m Scanner) ObserveChunk(err error, transactions int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerChunksTotal.WithLabelValues(status).Inc()
	scannerChunkDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	scannerChunkTransactions.Observe(float64(transactions))
}

// IncOutcome counts a per-CID outcome.
func (m Scanner) IncOutcome(kind model.ScanEventKind) {
	scannerOutcomesTotal.WithLabelValues(string(kind)).Inc()
}

// SetCheckpoint exports the persisted checkpoint.
func (m Scanner) SetCheckpoint(cp model.ScanCheckpoint) {
	scannerLastScannedBlock.Set(float64(cp.LastScannedBlock))
	scannerTotalArtifacts.Set(float64(cp.TotalArtifacts))
}

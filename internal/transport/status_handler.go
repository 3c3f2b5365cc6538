// Package transport exposes the read-only HTTP surface of the scanner.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"go.uber.org/zap"
)

const (
	statusTimeout = 5 * time.Second
	eventWindow   = 24 * time.Hour
)

// StatusResponse is the /status payload read by the downstream gallery.
type StatusResponse struct {
	LastScannedBlock  uint64     `json:"last_scanned_block"`
	LastScanTime      *time.Time `json:"last_scan_time,omitempty"`
	TotalArtifacts    uint64     `json:"total_artifacts"`
	PendingCandidates uint64     `json:"pending_candidates"`
	InProgress        bool       `json:"in_progress"`
	LockOwner         string     `json:"lock_owner,omitempty"`
	LockedAt          *time.Time `json:"locked_at,omitempty"`
	// Events counts scan events of the last day by kind; absent without an analytics mirror.
	Events map[model.ScanEventKind]uint64 `json:"events_24h,omitempty"`
}

// StatusHandler serves /healthz and /status.
type StatusHandler struct {
	source StatusSource
	events EventCounter
	logger *zap.Logger
	now    func() time.Time
}

// NewStatusHandler returns a StatusHandler reading from source. events may be nil.
func NewStatusHandler(source StatusSource, events EventCounter, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{source: source, events: events, logger: logger, now: time.Now}
}

// Register mounts the handler routes on mux.
func (h *StatusHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /status", h.Status)
}

// Health reports process liveness.
func (h *StatusHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Status reports the checkpoint row and the candidate backlog.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), statusTimeout)
	defer cancel()

	cp, err := h.source.Checkpoint(ctx)
	if err != nil {
		h.logger.Warn("status checkpoint failed", zap.Error(err))
		http.Error(w, "checkpoint unavailable", http.StatusServiceUnavailable)
		return
	}
	pending, err := h.source.CountCandidates(ctx)
	if err != nil {
		h.logger.Warn("status candidate count failed", zap.Error(err))
		http.Error(w, "checkpoint unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := StatusResponse{
		LastScannedBlock:  cp.LastScannedBlock,
		LastScanTime:      timePtr(cp.LastScanTime),
		TotalArtifacts:    cp.TotalArtifacts,
		PendingCandidates: pending,
		InProgress:        cp.InProgress,
		LockOwner:         cp.LockOwner,
		LockedAt:          timePtr(cp.LockedAt),
	}
	if h.events != nil {
		counts, err := h.events.ScanEventCounts(ctx, h.now().Add(-eventWindow))
		if err != nil {
			h.logger.Warn("status event counts failed", zap.Error(err))
		} else {
			resp.Events = counts
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Debug("write status response", zap.Error(err))
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}

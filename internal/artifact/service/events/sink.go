// Package events buffers scan outcomes and mirrors them to the analytics store.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultFlushSize     = 500
	defaultFlushInterval = 5 * time.Second
	defaultFlushRPS      = 5
	defaultQueueSize     = 10_000
)

// Config tunes batching toward the analytics store.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
	QueueSize     int
}

// Sink batches events in the background. Emit never blocks the scan: events that do
// not fit in the queue are dropped and counted.
type Sink struct {
	batcher *batcher.Batcher[model.ScanEvent]
	metrics Metrics
	logger  *zap.Logger
}

// NewSink builds a Sink writing to writer.
func NewSink(cfg Config, writer Writer, metrics Metrics, logger *zap.Logger) (*Sink, error) {
	if writer == nil {
		return nil, errors.New("events writer is required")
	}
	if metrics == nil {
		return nil, errors.New("events metrics is required")
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.FlushRPS <= 0 {
		cfg.FlushRPS = defaultFlushRPS
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	b, err := batcher.New(logger, writer.InsertScanEvents, batcher.Options{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.FlushRPS,
		QueueSize:     cfg.QueueSize,
		OnFlush:       metrics.ObserveFlush,
	})
	if err != nil {
		return nil, err
	}
	return &Sink{batcher: b, metrics: metrics, logger: logger}, nil
}

// Start runs the flush loop until ctx ends or Stop is called.
func (s *Sink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes pending events and stops the loop.
func (s *Sink) Stop() {
	s.batcher.Stop()
}

// Emit queues e.
func (s *Sink) Emit(_ context.Context, e model.ScanEvent) {
	if err := s.batcher.TryAdd(e); err != nil {
		s.metrics.IncDropped()
		s.logger.Debug("scan event dropped",
			zap.String("kind", string(e.Kind)),
			zap.String("cid", e.CID),
			zap.Error(err),
		)
	}
}

// Discard drops every event. Used when no analytics store is configured.
type Discard struct{}

// Emit does nothing.
func (Discard) Emit(context.Context, model.ScanEvent) {}

// Package recheck re-probes candidates whose content was not yet reachable or not yet
// recognizable as an image, promoting them to artifacts once they pass.
package recheck

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/internal/clock"
	"github.com/goodnatureofminers/artifactscan-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes the maintenance pass.
type Config struct {
	BatchSize   int
	Workers     int
	MaxAttempts uint32
	// BaseDelay is the wait after the first failed recheck; it doubles per attempt up to MaxDelay.
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Interval  time.Duration
}

// Result counts one pass.
type Result struct {
	Checked     int
	Promoted    int
	Duplicates  int
	Rescheduled int
}

// Service runs recheck passes.
type Service struct {
	logger  *zap.Logger
	cfg     Config
	store   CandidateStore
	prober  Prober
	events  EventSink
	metrics Metrics
	sleep   func(context.Context, time.Duration) error
	now     func() time.Time
}

// NewService builds a Service with dependencies.
func NewService(cfg Config, store CandidateStore, prober Prober, events EventSink, metrics Metrics, logger *zap.Logger) (*Service, error) {
	switch {
	case store == nil:
		return nil, errors.New("recheck store is required")
	case prober == nil:
		return nil, errors.New("recheck prober is required")
	case events == nil:
		return nil, errors.New("recheck event sink is required")
	case metrics == nil:
		return nil, errors.New("recheck metrics is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = max(defaultMaxDelay, cfg.BaseDelay)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	return &Service{
		logger:  logger,
		cfg:     cfg,
		store:   store,
		prober:  prober,
		events:  events,
		metrics: metrics,
		sleep:   clock.SleepWithContext,
		now:     time.Now,
	}, nil
}

// Run rechecks due candidates every Interval until ctx ends.
func (s *Service) Run(ctx context.Context) error {
	for {
		res, err := s.RecheckOnce(ctx)
		if err != nil {
			s.logger.Warn("recheck pass failed", zap.Error(err))
		} else if res.Checked > 0 {
			s.logger.Info("recheck pass finished",
				zap.Int("checked", res.Checked),
				zap.Int("promoted", res.Promoted),
				zap.Int("duplicates", res.Duplicates),
				zap.Int("rescheduled", res.Rescheduled),
			)
		}
		if err := s.sleep(ctx, s.cfg.Interval); err != nil {
			return err
		}
	}
}

// RecheckOnce probes one batch of due candidates.
func (s *Service) RecheckOnce(ctx context.Context) (res Result, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRecheck(res.Checked, res.Promoted, err, started)
	}()

	due, err := s.store.DueCandidates(ctx, s.now(), s.cfg.BatchSize, s.cfg.MaxAttempts)
	if err != nil {
		return res, fmt.Errorf("load due candidates: %w", err)
	}

	var checked, promoted, duplicates, rescheduled atomic.Int64
	err = workerpool.Process(ctx, s.cfg.Workers, due, func(ctx context.Context, c model.Candidate) error {
		outcome, err := s.recheck(ctx, c)
		if err != nil {
			return err
		}
		checked.Add(1)
		switch outcome {
		case model.EventDiscovered:
			promoted.Add(1)
		case model.EventDuplicate:
			duplicates.Add(1)
		default:
			rescheduled.Add(1)
		}
		return nil
	})
	res = Result{
		Checked:     int(checked.Load()),
		Promoted:    int(promoted.Load()),
		Duplicates:  int(duplicates.Load()),
		Rescheduled: int(rescheduled.Load()),
	}
	return res, err
}

func (s *Service) recheck(ctx context.Context, c model.Candidate) (model.ScanEventKind, error) {
	probe := s.prober.Probe(ctx, c.CID)
	event := model.ScanEvent{
		CID:         c.CID,
		TxHash:      c.TxHash,
		TaskID:      c.TaskID,
		BlockNumber: c.BlockNumber,
		Gateway:     probe.Gateway,
		EventTime:   s.now(),
	}

	if !probe.Admissible() {
		next := probe.CheckedAt.Add(s.backoff(c.Attempts))
		if err := s.store.RescheduleCandidate(ctx, c.CID, probe.Reason, probe.CheckedAt, next); err != nil {
			return "", fmt.Errorf("reschedule %s: %w", c.CID, err)
		}
		s.logger.Debug("candidate still not admissible",
			zap.String("cid", c.CID),
			zap.String("reason", probe.Reason),
			zap.Uint32("attempts", c.Attempts+1),
			zap.Time("next_check_at", next),
		)
		event.Kind, event.Reason = model.EventInaccessible, probe.Reason
		s.emit(ctx, event)
		return event.Kind, nil
	}

	a := c.Artifact
	a.Accessible = probe.Accessible
	a.Gateway = probe.Gateway
	a.GatewayURL = probe.URL
	a.LastCheckedAt = probe.CheckedAt
	a.DiscoveredAt = s.now()

	created, err := s.store.CreateArtifact(ctx, a)
	if err != nil {
		return "", fmt.Errorf("promote %s: %w", c.CID, err)
	}
	event.Kind = model.EventDuplicate
	if created {
		event.Kind = model.EventDiscovered
		s.logger.Info("candidate promoted", zap.String("cid", c.CID), zap.String("gateway", probe.Gateway))
	}
	s.emit(ctx, event)
	return event.Kind, nil
}

// backoff doubles BaseDelay per previous attempt, capped at MaxDelay.
func (s *Service) backoff(attempts uint32) time.Duration {
	d := s.cfg.BaseDelay
	for i := uint32(1); i < attempts && d < s.cfg.MaxDelay; i++ {
		d *= 2
	}
	return min(d, s.cfg.MaxDelay)
}

func (s *Service) emit(ctx context.Context, e model.ScanEvent) {
	s.metrics.IncOutcome(e.Kind)
	s.events.Emit(ctx, e)
}

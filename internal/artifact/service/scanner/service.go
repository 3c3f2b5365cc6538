// Package scanner orchestrates checkpointed scans of engine transactions into artifacts.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/internal/clock"
	"go.uber.org/zap"
)

type (
	// Store is everything the scanner persists.
	Store interface {
		LockStore
		CheckpointStore
		ArtifactStore
	}

	// bounds maps the checkpoint and head to the range a mode scans.
	bounds func(cp model.ScanCheckpoint, head uint64) (from, to uint64)
)

// Service runs incremental, historical and resume scans under the store-backed lock.
type Service struct {
	logger     *zap.Logger
	cfg        Config
	explorer   Explorer
	checkpoint CheckpointStore
	processor  TransactionProcessor
	metrics    Metrics
	lock       *Lock
	sleep      func(context.Context, time.Duration) error
}

// NewService builds a Service with dependencies.
func NewService(
	cfg Config,
	explorer Explorer,
	store Store,
	correlator Correlator,
	prober Prober,
	admission Admission,
	events EventSink,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	switch {
	case explorer == nil:
		return nil, errors.New("scanner explorer is required")
	case store == nil:
		return nil, errors.New("scanner store is required")
	case correlator == nil:
		return nil, errors.New("scanner correlator is required")
	case prober == nil:
		return nil, errors.New("scanner prober is required")
	case admission == nil:
		return nil, errors.New("scanner admission policy is required")
	case events == nil:
		return nil, errors.New("scanner event sink is required")
	case metrics == nil:
		return nil, errors.New("scanner metrics is required")
	}
	logger = logger.With(zap.String("owner", cfg.Owner))

	return &Service{
		logger:     logger,
		cfg:        cfg,
		explorer:   explorer,
		checkpoint: store,
		metrics:    metrics,
		lock:       NewLock(store, cfg.Owner, cfg.StaleLockAfter, logger.Named("lock")),
		sleep:      clock.SleepWithContext,
		processor: &solutionProcessor{
			store:        store,
			correlator:   correlator,
			prober:       prober,
			admission:    admission,
			events:       events,
			metrics:      metrics,
			logger:       logger.Named("processor"),
			maxBatch:     cfg.MaxBatch,
			recheckDelay: cfg.RecheckDelay,
			now:          time.Now,
		},
	}, nil
}

// ScanIncremental scans from the block after the checkpoint to head. An empty checkpoint
// starts InitialLookback blocks behind head.
func (s *Service) ScanIncremental(ctx context.Context) (model.ScanResult, error) {
	return s.scan(ctx, model.ScanIncremental, func(cp model.ScanCheckpoint, head uint64) (uint64, uint64) {
		if cp.LastScannedBlock == 0 {
			return behind(head, s.cfg.InitialLookback), head
		}
		return cp.LastScannedBlock + 1, head
	})
}

// ScanResume re-scans ResumeOverlap blocks behind the checkpoint before continuing to head.
func (s *Service) ScanResume(ctx context.Context) (model.ScanResult, error) {
	return s.scan(ctx, model.ScanResume, func(cp model.ScanCheckpoint, head uint64) (uint64, uint64) {
		if cp.LastScannedBlock == 0 {
			return behind(head, s.cfg.InitialLookback), head
		}
		return behind(cp.LastScannedBlock, s.cfg.ResumeOverlap), head
	})
}

// ScanHistorical scans [from, to], clamped to head.
func (s *Service) ScanHistorical(ctx context.Context, from, to uint64) (model.ScanResult, error) {
	if from > to {
		return model.ScanResult{Mode: model.ScanHistorical}, fmt.Errorf("invalid historical range [%d, %d]", from, to)
	}
	return s.scan(ctx, model.ScanHistorical, func(_ model.ScanCheckpoint, head uint64) (uint64, uint64) {
		return from, min(to, head)
	})
}

// HistoricalRangeForDays converts a look-back in days into a block range ending at head,
// using the configured average block time.
func (s *Service) HistoricalRangeForDays(ctx context.Context, days int) (from, to uint64, err error) {
	if days <= 0 {
		return 0, 0, fmt.Errorf("days must be positive, got %d", days)
	}
	head, err := s.explorer.LatestBlock(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("latest block: %w", err)
	}
	span := uint64(time.Duration(days) * 24 * time.Hour / s.cfg.AvgBlockTime)
	return behind(head, span), head, nil
}

// Run performs a resume pass and then an incremental pass every ScanInterval until ctx ends.
func (s *Service) Run(ctx context.Context) error {
	s.run(ctx, s.ScanResume)
	for {
		if err := s.sleep(ctx, s.cfg.ScanInterval); err != nil {
			return err
		}
		s.run(ctx, s.ScanIncremental)
	}
}

func (s *Service) run(ctx context.Context, pass func(context.Context) (model.ScanResult, error)) {
	res, err := pass(ctx)
	if err != nil {
		s.logger.Warn("scan pass failed, retrying next interval", zap.String("mode", string(res.Mode)), zap.Error(err))
		return
	}
	if res.Skipped {
		return
	}
	s.logger.Info("scan pass finished",
		zap.String("mode", string(res.Mode)),
		zap.Uint64("from_block", res.FromBlock),
		zap.Uint64("to_block", res.ToBlock),
		zap.Uint64("last_block", res.LastBlock),
		zap.Int("transactions", res.Transactions),
		zap.Int("solutions", res.Solutions),
		zap.Int("artifacts", res.Artifacts),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("candidates", res.Candidates),
		zap.Int("rejected", res.Rejected),
		zap.Bool("partial", res.PartialFailure),
		zap.Uint64("total_artifacts", res.TotalArtifacts),
	)
}

func (s *Service) scan(ctx context.Context, mode model.ScanMode, rangeOf bounds) (res model.ScanResult, err error) {
	started := time.Now()
	res.Mode = mode
	defer func() {
		s.metrics.ObserveScan(res, err, started)
	}()

	guard, err := s.lock.Acquire(ctx)
	if errors.Is(err, ErrBusy) {
		s.logger.Info("scan already in progress, skipping", zap.String("mode", string(mode)))
		return model.ScanResult{Mode: mode, Skipped: true}, nil
	}
	if err != nil {
		return res, err
	}
	defer guard.Release(ctx)

	cp, err := s.checkpoint.Checkpoint(ctx)
	if err != nil {
		return res, fmt.Errorf("load checkpoint: %w", err)
	}
	res.LastBlock = cp.LastScannedBlock
	res.TotalArtifacts = cp.TotalArtifacts

	head, err := s.explorer.LatestBlock(ctx)
	if err != nil {
		return res, fmt.Errorf("latest block: %w", err)
	}

	from, to := rangeOf(cp, head)
	res.FromBlock, res.ToBlock = from, to
	if from > to {
		s.logger.Debug("nothing to scan", zap.String("mode", string(mode)), zap.Uint64("head", head))
		return res, nil
	}
	s.scanRange(ctx, guard, cp, &res)
	return res, nil
}

func behind(block, distance uint64) uint64 {
	if block < distance {
		return 0
	}
	return block - distance
}

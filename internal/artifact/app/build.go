package app

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/admission"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/correlator"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/explorer"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/prober"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/repository/clickhouse"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/repository/postgres"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/service/events"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/service/scanner"
	"github.com/goodnatureofminers/artifactscan-backend/internal/metrics"
	"github.com/goodnatureofminers/artifactscan-backend/internal/transport"
	"go.uber.org/zap"
)

// ScannerOptions groups everything a scanner needs.
type ScannerOptions struct {
	Engine     EngineOptions     `group:"engine"`
	Explorer   ExplorerOptions   `group:"explorer"`
	Correlator CorrelatorOptions `group:"correlator"`
	Prober     ProberOptions     `group:"prober"`
	Admission  AdmissionOptions  `group:"admission"`
	Scan       ScanOptions       `group:"scan"`
	Postgres   PostgresOptions   `group:"postgres"`
	Events     EventsOptions     `group:"events"`
}

// Components is a wired scanner with the resources that must be released.
type Components struct {
	Scanner *scanner.Service
	Store   *postgres.Repository
	Prober  *prober.Prober
	Events  *EventSink

	closers []func()
}

// Close releases resources in reverse order.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// NewExplorer builds the shared throttled explorer client.
func NewExplorer(opts ExplorerOptions, logger *zap.Logger) (*explorer.Client, error) {
	return explorer.NewClient(explorer.Config{
		BaseURL:      opts.URL,
		APIKey:       opts.APIKey,
		ChainID:      opts.ChainID,
		RateInterval: opts.RateInterval,
		BlockTimeout: opts.BlockTimeout,
		ListTimeout:  opts.ListTimeout,
		LogTimeout:   opts.LogTimeout,
		TxTimeout:    opts.TxTimeout,
		PageSize:     opts.PageSize,
		MaxPages:     opts.MaxPages,
	}, metrics.NewExplorerClient(), logger.Named("explorer"))
}

// NewProber builds the gateway prober.
func NewProber(opts ProberOptions, logger *zap.Logger) (*prober.Prober, error) {
	return prober.New(prober.Config{
		Gateways: opts.Gateways,
		Filename: opts.Filename,
		Timeout:  opts.Timeout,
	}, metrics.NewProber(), logger.Named("prober"))
}

// NewPostgres connects the primary store.
func NewPostgres(ctx context.Context, opts PostgresOptions) (*postgres.Repository, error) {
	return postgres.NewRepository(ctx, opts.DSN, metrics.NewRepository("postgres"))
}

// EventSink is the scan event destination with its lifecycle.
type EventSink struct {
	scanner.EventSink
	// Counter reads recent event counts back; nil when events are discarded.
	Counter transport.EventCounter
	stop    func()
}

// Stop flushes and releases the sink.
func (s *EventSink) Stop() {
	if s.stop != nil {
		s.stop()
	}
}

// NewEventSink starts the ClickHouse event mirror, or discards events when no DSN is set.
func NewEventSink(ctx context.Context, opts EventsOptions, logger *zap.Logger) (*EventSink, error) {
	if opts.ClickhouseDSN == "" {
		logger.Info("clickhouse dsn not set, scan events are discarded")
		return &EventSink{EventSink: events.Discard{}}, nil
	}
	repo, err := clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewRepository("clickhouse"))
	if err != nil {
		return nil, fmt.Errorf("init clickhouse repository: %w", err)
	}
	sink, err := events.NewSink(events.Config{
		FlushSize:     opts.FlushSize,
		FlushInterval: opts.FlushInterval,
	}, repo, metrics.NewEvents(), logger.Named("events"))
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	sink.Start(ctx)
	return &EventSink{
		EventSink: sink,
		Counter:   repo,
		stop: func() {
			sink.Stop()
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse repository", zap.Error(err))
			}
		},
	}, nil
}

// NewScanner wires the full scan pipeline.
func NewScanner(ctx context.Context, opts ScannerOptions, logger *zap.Logger) (c *Components, err error) {
	contract, err := opts.Engine.Address()
	if err != nil {
		return nil, err
	}

	c = &Components{}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	if c.Store, err = NewPostgres(ctx, opts.Postgres); err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	c.closers = append(c.closers, c.Store.Close)

	client, err := NewExplorer(opts.Explorer, logger)
	if err != nil {
		return nil, fmt.Errorf("init explorer: %w", err)
	}
	tasks, err := correlator.New(correlator.Config{
		Contract:   contract,
		NearWindow: opts.Correlator.NearWindow,
		MidWindow:  opts.Correlator.MidWindow,
		MaxWindow:  opts.Correlator.MaxWindow,
		CacheSize:  opts.Correlator.CacheSize,
	}, client, metrics.NewCorrelator(), logger.Named("correlator"), correlator.WithStore(c.Store))
	if err != nil {
		return nil, fmt.Errorf("init correlator: %w", err)
	}
	if c.Prober, err = NewProber(opts.Prober, logger); err != nil {
		return nil, fmt.Errorf("init prober: %w", err)
	}

	if c.Events, err = NewEventSink(ctx, opts.Events, logger); err != nil {
		return nil, err
	}
	c.closers = append(c.closers, c.Events.Stop)

	sentinels := opts.Admission.Sentinels
	if len(sentinels) == 0 {
		sentinels = admission.DefaultSentinels
	}

	c.Scanner, err = scanner.NewService(scanner.Config{
		Contract:        contract,
		Owner:           opts.Scan.Owner,
		ChunkSize:       opts.Scan.ChunkSize,
		ChunkDelay:      opts.Scan.ChunkDelay,
		StaleLockAfter:  opts.Scan.StaleLockAfter,
		ResumeOverlap:   opts.Scan.ResumeOverlap,
		InitialLookback: opts.Scan.InitialLookback,
		MaxBatch:        opts.Scan.MaxBatch,
		ScanInterval:    opts.Scan.ScanInterval,
		AvgBlockTime:    opts.Scan.AvgBlockTime,
		RecheckDelay:    opts.Scan.RecheckDelay,
	},
		client,
		c.Store,
		tasks,
		c.Prober,
		admission.NewPolicy(sentinels, opts.Admission.MaxPromptLength),
		c.Events,
		metrics.NewScanner(),
		logger.Named("scanner"),
	)
	if err != nil {
		return nil, fmt.Errorf("init scanner: %w", err)
	}
	return c, nil
}

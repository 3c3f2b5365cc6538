// Command artifact-recheck re-probes candidates that failed accessibility or image checks.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/app"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/service/recheck"
	"github.com/goodnatureofminers/artifactscan-backend/internal/metrics"
	"go.uber.org/zap"
)

type config struct {
	Prober      app.ProberOptions   `group:"prober"`
	Postgres    app.PostgresOptions `group:"postgres"`
	Events      app.EventsOptions   `group:"events"`
	BatchSize   int                 `long:"batch-size" env:"ARTIFACTSCAN_RECHECK_BATCH_SIZE" description:"candidates per pass" default:"100"`
	Workers     int                 `long:"workers" env:"ARTIFACTSCAN_RECHECK_WORKERS" description:"concurrent probes" default:"4"`
	MaxAttempts uint32              `long:"max-attempts" env:"ARTIFACTSCAN_RECHECK_MAX_ATTEMPTS" description:"attempts after which a candidate is no longer rechecked" default:"48"`
	BaseDelay   time.Duration       `long:"base-delay" env:"ARTIFACTSCAN_RECHECK_BASE_DELAY" description:"first backoff, doubled per attempt" default:"15m"`
	MaxDelay    time.Duration       `long:"max-delay" env:"ARTIFACTSCAN_RECHECK_MAX_DELAY" description:"backoff cap" default:"24h"`
	Interval    time.Duration       `long:"interval" env:"ARTIFACTSCAN_RECHECK_INTERVAL" description:"pause between passes" default:"15m"`
	Once        bool                `long:"once" description:"run a single pass and exit"`
	MetricsAddr string              `long:"metrics-addr" env:"ARTIFACTSCAN_RECHECK_METRICS_ADDR" description:"address for metrics server" default:":2113"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ok, err := app.ParseFlags(&cfg, os.Args[1:])
	if err != nil {
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if !ok {
		return
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("artifact recheck failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if !cfg.Once {
		app.StartHTTPServer(ctx, cfg.MetricsAddr, app.NewHTTPHandler(nil), logger)
	}

	store, err := app.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	defer store.Close()

	probe, err := app.NewProber(cfg.Prober, logger)
	if err != nil {
		return fmt.Errorf("init prober: %w", err)
	}
	sink, err := app.NewEventSink(ctx, cfg.Events, logger)
	if err != nil {
		return err
	}
	defer sink.Stop()

	svc, err := recheck.NewService(recheck.Config{
		BatchSize:   cfg.BatchSize,
		Workers:     cfg.Workers,
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.BaseDelay,
		MaxDelay:    cfg.MaxDelay,
		Interval:    cfg.Interval,
	}, store, probe, sink, metrics.NewRecheck(), logger.Named("recheck"))
	if err != nil {
		return err
	}

	if !cfg.Once {
		return svc.Run(ctx)
	}
	res, err := svc.RecheckOnce(ctx)
	if err != nil {
		return err
	}
	logger.Info("recheck pass finished",
		zap.Int("checked", res.Checked),
		zap.Int("promoted", res.Promoted),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("rescheduled", res.Rescheduled),
	)
	return nil
}

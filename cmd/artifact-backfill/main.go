// Command artifact-backfill runs a single scan pass: a bounded historical range, a resume
// pass or an incremental pass.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/app"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/service/scanner"
	"go.uber.org/zap"
)

type config struct {
	app.ScannerOptions
	Mode        string `long:"mode" env:"ARTIFACTSCAN_BACKFILL_MODE" description:"scan mode" choice:"historical" choice:"resume" choice:"incremental" default:"historical"`
	FromBlock   uint64 `long:"from" description:"first block of a historical range"`
	ToBlock     uint64 `long:"to" description:"last block of a historical range (defaults to head)"`
	Days        int    `long:"days" description:"scan this many days back from head instead of --from/--to"`
	MetricsAddr string `long:"metrics-addr" env:"ARTIFACTSCAN_BACKFILL_METRICS_ADDR" description:"address for metrics server; empty disables it"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("artifact backfill failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		app.StartHTTPServer(ctx, cfg.MetricsAddr, app.NewHTTPHandler(nil), logger)
	}

	c, err := app.NewScanner(ctx, cfg.ScannerOptions, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := scan(ctx, c.Scanner, cfg)
	if err != nil {
		return err
	}
	if res.Skipped {
		logger.Warn("another scan holds the lock, nothing done")
		return nil
	}
	logger.Info("backfill finished",
		zap.String("mode", string(res.Mode)),
		zap.Uint64("from_block", res.FromBlock),
		zap.Uint64("to_block", res.ToBlock),
		zap.Uint64("last_block", res.LastBlock),
		zap.Int("solutions", res.Solutions),
		zap.Int("artifacts", res.Artifacts),
		zap.Int("candidates", res.Candidates),
		zap.Int("rejected", res.Rejected),
		zap.Uint64("total_artifacts", res.TotalArtifacts),
	)
	if res.PartialFailure {
		return errors.New("scan stopped before the end of the range, rerun to continue")
	}
	return nil
}

func scan(ctx context.Context, svc *scanner.Service, cfg config) (model.ScanResult, error) {
	switch cfg.Mode {
	case "resume":
		return svc.ScanResume(ctx)
	case "incremental":
		return svc.ScanIncremental(ctx)
	}

	from, to := cfg.FromBlock, cfg.ToBlock
	switch {
	case cfg.Days > 0:
		var err error
		if from, to, err = svc.HistoricalRangeForDays(ctx, cfg.Days); err != nil {
			return model.ScanResult{}, err
		}
	case to == 0:
		to = ^uint64(0)
	}
	if from > to {
		return model.ScanResult{}, fmt.Errorf("--from %d is after --to %d", from, to)
	}
	return svc.ScanHistorical(ctx, from, to)
}

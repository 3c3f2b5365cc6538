// Command artifact-scanner runs the periodic scan loop and serves metrics and status.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/app"
	"github.com/goodnatureofminers/artifactscan-backend/internal/transport"
	"go.uber.org/zap"
)

type config struct {
	app.ScannerOptions
	HTTPAddr string `long:"http-addr" env:"ARTIFACTSCAN_HTTP_ADDR" description:"address for metrics, health and status" default:":2112"`
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
		logger.Fatal("artifact scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	c, err := app.NewScanner(ctx, cfg.ScannerOptions, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	status := transport.NewStatusHandler(c.Store, c.Events.Counter, logger.Named("status"))
	app.StartHTTPServer(ctx, cfg.HTTPAddr, app.NewHTTPHandler(status), logger)

	return c.Scanner.Run(ctx)
}

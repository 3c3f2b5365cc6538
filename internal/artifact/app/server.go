package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/transport"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewHTTPHandler mounts /metrics and, when status is set, /healthz and /status behind CORS.
func NewHTTPHandler(status *transport.StatusHandler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if status != nil {
		status.Register(mux)
	}
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(mux)
}

// StartHTTPServer serves handler on addr until ctx ends.
func StartHTTPServer(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
}

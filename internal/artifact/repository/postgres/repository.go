// Package postgres is the primary store for artifacts, tasks, candidates and the scan checkpoint.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrNotFound reports a missing row.
var ErrNotFound = errors.New("not found")

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	pool    *pgxpool.Pool
	metrics Metrics
}

// NewRepository connects to dsn and verifies the connection.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("postgres metrics is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Repository{pool: pool, metrics: metrics}, nil
}

// Close releases the pool.
func (r *Repository) Close() {
	r.pool.Close()
}

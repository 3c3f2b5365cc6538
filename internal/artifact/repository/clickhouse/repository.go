// Package clickhouse mirrors scan events into ClickHouse for analytics.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// BatchPreparer opens insert batches.
	BatchPreparer interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
	}
	// Batch is the part of a driver batch the repository uses.
	Batch interface {
		Append(v ...any) error
		Send() error
	}
)

type Repository struct {
	conn    clickhouse.Conn
	batches BatchPreparer
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, batches: connBatches{conn: conn}, metrics: metrics}, nil
}

// Close closes the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

type connBatches struct {
	conn clickhouse.Conn
}

func (c connBatches) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

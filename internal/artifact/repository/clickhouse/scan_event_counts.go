package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

// ScanEventCounts counts events per kind since the given time.
func (r *Repository) ScanEventCounts(ctx context.Context, since time.Time) (map[model.ScanEventKind]uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("scan_event_counts", err, start)
	}()

	const query = `
SELECT kind, count()
FROM artifact_scan_events
WHERE event_time >= ?
GROUP BY kind`

	rows, err := r.conn.Query(ctx, query, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("query scan event counts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make(map[model.ScanEventKind]uint64)
	for rows.Next() {
		var (
			kind  string
			count uint64
		)
		if err = rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[model.ScanEventKind(kind)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scan event counts: %w", err)
	}
	return counts, nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

// InsertScanEvents stores scan event rows in ClickHouse.
func (r *Repository) InsertScanEvents(ctx context.Context, events []model.ScanEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_scan_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO artifact_scan_events (
	kind,
	cid,
	tx_hash,
	task_id,
	block_number,
	gateway,
	reason,
	event_time
) VALUES`

	batch, err := r.batches.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare scan events batch: %w", err)
	}

	for _, e := range events {
		if err = batch.Append(
			string(e.Kind),
			e.CID,
			e.TxHash.Hex(),
			e.TaskID.Hex(),
			e.BlockNumber,
			e.Gateway,
			e.Reason,
			e.EventTime,
		); err != nil {
			return fmt.Errorf("append scan event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert scan events: %w", err)
	}
	return nil
}

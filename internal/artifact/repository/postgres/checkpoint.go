package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/pkg/safe"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const checkpointColumns = `last_scanned_block, last_scan_time, total_artifacts, scan_in_progress, lock_owner, locked_at`

// AcquireScanLock sets the in-progress flag for owner in one conditional update. A flag held
// longer than staleAfter is treated as abandoned and taken over.
func (r *Repository) AcquireScanLock(ctx context.Context, owner string, staleAfter time.Duration) (acquired bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("acquire_scan_lock", err, started)
	}()

	if owner == "" {
		return false, errors.New("scan lock owner is required")
	}

	const query = `
UPDATE scan_checkpoint
SET scan_in_progress = true, lock_owner = $1, locked_at = now()
WHERE id = 1
  AND (scan_in_progress = false OR locked_at IS NULL OR locked_at < now() - make_interval(secs => $2::double precision))`

	tag, err := r.pool.Exec(ctx, query, owner, staleAfter.Seconds())
	if err != nil {
		return false, fmt.Errorf("acquire scan lock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// TouchScanLock renews the lease of owner. It reports false when owner no longer holds it.
func (r *Repository) TouchScanLock(ctx context.Context, owner string) (held bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("touch_scan_lock", err, started)
	}()

	tag, err := r.pool.Exec(ctx, `
UPDATE scan_checkpoint
SET locked_at = now()
WHERE id = 1 AND scan_in_progress = true AND lock_owner = $1`, owner)
	if err != nil {
		return false, fmt.Errorf("touch scan lock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseScanLock clears the flag if owner still holds it.
func (r *Repository) ReleaseScanLock(ctx context.Context, owner string) (released bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("release_scan_lock", err, started)
	}()

	tag, err := r.pool.Exec(ctx, `
UPDATE scan_checkpoint
SET scan_in_progress = false, lock_owner = NULL, locked_at = NULL
WHERE id = 1 AND lock_owner = $1`, owner)
	if err != nil {
		return false, fmt.Errorf("release scan lock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Checkpoint loads the checkpoint row.
func (r *Repository) Checkpoint(ctx context.Context) (cp model.ScanCheckpoint, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("checkpoint", err, started)
	}()

	row := r.pool.QueryRow(ctx, `SELECT `+checkpointColumns+` FROM scan_checkpoint WHERE id = 1`)
	cp, err = scanCheckpoint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ScanCheckpoint{}, ErrNotFound
	}
	return cp, err
}

// AdvanceCheckpoint moves last_scanned_block forward to block, never backwards, and
// recomputes total_artifacts from the artifacts table.
func (r *Repository) AdvanceCheckpoint(ctx context.Context, block uint64) (cp model.ScanCheckpoint, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("advance_checkpoint", err, started)
	}()

	b, err := safe.Int64(block)
	if err != nil {
		return model.ScanCheckpoint{}, fmt.Errorf("checkpoint block: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
UPDATE scan_checkpoint
SET last_scanned_block = GREATEST(last_scanned_block, $1),
    last_scan_time = now(),
    total_artifacts = (SELECT count(*) FROM artifacts)
WHERE id = 1
RETURNING `+checkpointColumns, b)
	cp, err = scanCheckpoint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ScanCheckpoint{}, ErrNotFound
	}
	return cp, err
}

func scanCheckpoint(row pgx.Row) (model.ScanCheckpoint, error) {
	var (
		cp               model.ScanCheckpoint
		block, total     int64
		scanTime, locked pgtype.Timestamptz
		owner            pgtype.Text
	)
	if err := row.Scan(&block, &scanTime, &total, &cp.InProgress, &owner, &locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cp, err
		}
		return cp, fmt.Errorf("scan checkpoint: %w", err)
	}
	var err error
	if cp.LastScannedBlock, err = safe.Uint64(block); err != nil {
		return cp, fmt.Errorf("checkpoint block: %w", err)
	}
	if cp.TotalArtifacts, err = safe.Uint64(total); err != nil {
		return cp, fmt.Errorf("checkpoint total: %w", err)
	}
	cp.LastScanTime = timeOrZero(scanTime)
	cp.LockedAt = timeOrZero(locked)
	cp.LockOwner = owner.String
	return cp, nil
}

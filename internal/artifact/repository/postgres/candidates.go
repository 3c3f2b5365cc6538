package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/pkg/safe"
	"github.com/jackc/pgx/v5/pgtype"
)

// SaveCandidate stores an artifact that failed probing. A known candidate gets its attempt
// counter bumped and its schedule replaced. created reports a first sighting.
func (r *Repository) SaveCandidate(ctx context.Context, c model.Candidate) (created bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_candidate", err, started)
	}()

	block, err := safe.Int64(c.BlockNumber)
	if err != nil {
		return false, fmt.Errorf("candidate block number: %w", err)
	}

	const query = `
INSERT INTO artifact_candidates (
	cid,
	tx_hash,
	batch_index,
	task_id,
	block_number,
	block_time,
	gateway_url,
	provider,
	task_submitter,
	model_id,
	prompt,
	params,
	attempts,
	last_reason,
	last_checked_at,
	next_check_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $14, $15)
ON CONFLICT (cid) DO UPDATE SET
	attempts = artifact_candidates.attempts + 1,
	last_reason = EXCLUDED.last_reason,
	last_checked_at = EXCLUDED.last_checked_at,
	next_check_at = EXCLUDED.next_check_at
RETURNING (xmax = 0)`

	err = r.pool.QueryRow(ctx, query,
		c.CID,
		c.TxHash.Hex(),
		int64(c.BatchIndex),
		c.TaskID.Hex(),
		block,
		nullableTime(c.Timestamp),
		c.GatewayURL,
		c.Provider.Hex(),
		nullableAddress(c.TaskSubmitter),
		nullableHash(c.ModelID),
		c.Prompt,
		nullableJSON(c.Params),
		c.LastReason,
		nullableTime(c.LastCheckedAt),
		c.NextCheckAt.UTC(),
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert candidate %s: %w", c.CID, err)
	}
	return created, nil
}

// DueCandidates returns up to limit candidates scheduled at or before now with fewer than
// maxAttempts attempts, oldest schedule first.
func (r *Repository) DueCandidates(ctx context.Context, now time.Time, limit int, maxAttempts uint32) (out []model.Candidate, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("due_candidates", err, started)
	}()

	const query = `
SELECT
	cid,
	tx_hash,
	batch_index,
	task_id,
	block_number,
	block_time,
	gateway_url,
	provider,
	task_submitter,
	model_id,
	prompt,
	params,
	attempts,
	last_reason,
	last_checked_at,
	next_check_at
FROM artifact_candidates
WHERE next_check_at <= $1 AND attempts < $2
ORDER BY next_check_at, cid
LIMIT $3`

	rows, err := r.pool.Query(ctx, query, now.UTC(), int64(maxAttempts), limit)
	if err != nil {
		return nil, fmt.Errorf("select due candidates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c                              model.Candidate
			txHash, taskID, provider       string
			batchIndex, block, attempts    int64
			blockTime, lastChecked, nextAt pgtype.Timestamptz
			submitter, modelID             pgtype.Text
			params                         []byte
		)
		if err = rows.Scan(
			&c.CID,
			&txHash,
			&batchIndex,
			&taskID,
			&block,
			&blockTime,
			&c.GatewayURL,
			&provider,
			&submitter,
			&modelID,
			&c.Prompt,
			&params,
			&attempts,
			&c.LastReason,
			&lastChecked,
			&nextAt,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		if c.BlockNumber, err = safe.Uint64(block); err != nil {
			return nil, fmt.Errorf("candidate %s block number: %w", c.CID, err)
		}
		if c.BatchIndex, err = safe.Uint32(batchIndex); err != nil {
			return nil, fmt.Errorf("candidate %s batch index: %w", c.CID, err)
		}
		if c.Attempts, err = safe.Uint32(attempts); err != nil {
			return nil, fmt.Errorf("candidate %s attempts: %w", c.CID, err)
		}
		c.TxHash = common.HexToHash(txHash)
		c.TaskID = common.HexToHash(taskID)
		c.Provider = common.HexToAddress(provider)
		c.TaskSubmitter = addressPtr(submitter)
		c.ModelID = hashPtr(modelID)
		c.Params = params
		c.Timestamp = timeOrZero(blockTime)
		c.LastCheckedAt = timeOrZero(lastChecked)
		c.NextCheckAt = timeOrZero(nextAt)
		out = append(out, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return out, nil
}

// RescheduleCandidate records another failed probe of cid.
func (r *Repository) RescheduleCandidate(ctx context.Context, cid, reason string, checkedAt, next time.Time) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("reschedule_candidate", err, started)
	}()

	const query = `
UPDATE artifact_candidates
SET attempts = attempts + 1, last_reason = $2, last_checked_at = $3, next_check_at = $4
WHERE cid = $1`

	tag, err := r.pool.Exec(ctx, query, cid, reason, checkedAt.UTC(), next.UTC())
	if err != nil {
		return fmt.Errorf("reschedule candidate %s: %w", cid, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reschedule candidate %s: %w", cid, ErrNotFound)
	}
	return nil
}

// CountCandidates counts candidates awaiting recheck.
func (r *Repository) CountCandidates(ctx context.Context) (count uint64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("count_candidates", err, started)
	}()

	var n int64
	if err = r.pool.QueryRow(ctx, `SELECT count(*) FROM artifact_candidates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	return safe.Uint64(n)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/pkg/safe"
)

// CreateArtifact inserts a if neither its CID nor its (tx hash, batch index) exists yet and
// drops the matching candidate. created is false for duplicates.
func (r *Repository) CreateArtifact(ctx context.Context, a model.Artifact) (created bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("create_artifact", err, started)
	}()

	block, err := safe.Int64(a.BlockNumber)
	if err != nil {
		return false, fmt.Errorf("artifact block number: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin create artifact: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const insert = `
INSERT INTO artifacts (
	tx_hash,
	batch_index,
	cid,
	task_id,
	block_number,
	block_time,
	gateway_url,
	accessible,
	gateway,
	last_checked_at,
	provider,
	task_submitter,
	model_id,
	prompt,
	params,
	discovered_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, COALESCE($16, now()))
ON CONFLICT DO NOTHING`

	tag, err := tx.Exec(ctx, insert,
		a.TxHash.Hex(),
		int64(a.BatchIndex),
		a.CID,
		a.TaskID.Hex(),
		block,
		nullableTime(a.Timestamp),
		a.GatewayURL,
		a.Accessible,
		a.Gateway,
		nullableTime(a.LastCheckedAt),
		a.Provider.Hex(),
		nullableAddress(a.TaskSubmitter),
		nullableHash(a.ModelID),
		a.Prompt,
		nullableJSON(a.Params),
		nullableTime(a.DiscoveredAt),
	)
	if err != nil {
		return false, fmt.Errorf("insert artifact %s: %w", a.CID, err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if _, err = tx.Exec(ctx, `DELETE FROM artifact_candidates WHERE cid = $1`, a.CID); err != nil {
		return false, fmt.Errorf("drop promoted candidate %s: %w", a.CID, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit artifact %s: %w", a.CID, err)
	}
	return true, nil
}

// HasArtifact reports whether an artifact with this CID is already persisted.
func (r *Repository) HasArtifact(ctx context.Context, cid string) (exists bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("has_artifact", err, started)
	}()

	err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM artifacts WHERE cid = $1)`, cid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("lookup artifact %s: %w", cid, err)
	}
	return exists, nil
}

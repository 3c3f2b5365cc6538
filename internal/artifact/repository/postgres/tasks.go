package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/pkg/safe"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SaveTask stores t unless a task with the same id exists. The first stored task wins.
func (r *Repository) SaveTask(ctx context.Context, t *model.Task) (created bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_task", err, started)
	}()

	if t == nil {
		return false, errors.New("nil task")
	}
	block, err := safe.Int64(t.BlockNumber)
	if err != nil {
		return false, fmt.Errorf("task block number: %w", err)
	}

	const query = `
INSERT INTO tasks (task_id, submitter, model_id, fee, tx_hash, block_number, prompt, params, source)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (task_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		t.ID.Hex(),
		t.Submitter.Hex(),
		t.Model.Hex(),
		numeric(t.Fee),
		t.TxHash.Hex(),
		block,
		t.Prompt,
		nullableJSON(t.Params),
		string(t.Source),
	)
	if err != nil {
		return false, fmt.Errorf("insert task %s: %w", t.ID.Hex(), err)
	}
	return tag.RowsAffected() == 1, nil
}

// Task loads a stored task by id.
func (r *Repository) Task(ctx context.Context, id common.Hash) (t *model.Task, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("task", err, started)
	}()

	const query = `
SELECT submitter, model_id, fee, tx_hash, block_number, prompt, params, source
FROM tasks
WHERE task_id = $1`

	var (
		submitter, modelID, txHash, source string
		fee                                pgtype.Numeric
		block                              int64
		prompt                             string
		params                             []byte
	)
	err = r.pool.QueryRow(ctx, query, id.Hex()).Scan(&submitter, &modelID, &fee, &txHash, &block, &prompt, &params, &source)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select task %s: %w", id.Hex(), err)
	}
	height, err := safe.Uint64(block)
	if err != nil {
		return nil, fmt.Errorf("task %s block number: %w", id.Hex(), err)
	}

	t = &model.Task{
		ID:          id,
		Submitter:   common.HexToAddress(submitter),
		Model:       common.HexToHash(modelID),
		TxHash:      common.HexToHash(txHash),
		BlockNumber: height,
		Prompt:      prompt,
		Params:      params,
		Source:      model.TaskSource(source),
	}
	t.Fee = bigFromNumeric(fee)
	return t, nil
}

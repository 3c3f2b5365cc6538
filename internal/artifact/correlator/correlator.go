// Package correlator recovers the task submission a solution answers.
package correlator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/abi"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/explorer"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Config bounds the backward log search. Windows are distances in blocks from the
// solution block: [0,Near], (Near,Mid], (Mid,Max].
type Config struct {
	Contract   common.Address
	NearWindow uint64
	MidWindow  uint64
	MaxWindow  uint64
	CacheSize  int
}

// Correlator looks up tasks by id through TaskSubmitted logs.
type Correlator struct {
	explorer Explorer
	metrics  Metrics
	logger   *zap.Logger
	contract common.Address
	windows  []uint64
	cache    *lru.Cache[common.Hash, *model.Task]
	store    TaskStore
}

// Option customizes a Correlator.
type Option func(*Correlator)

// WithStore consults previously persisted tasks before searching explorer logs.
func WithStore(store TaskStore) Option {
	return func(c *Correlator) {
		c.store = store
	}
}

// New validates cfg and constructs a Correlator.
func New(cfg Config, client Explorer, metrics Metrics, logger *zap.Logger, opts ...Option) (*Correlator, error) {
	if client == nil {
		return nil, errors.New("correlator explorer is required")
	}
	if metrics == nil {
		return nil, errors.New("correlator metrics is required")
	}
	if cfg.Contract == (common.Address{}) {
		return nil, errors.New("correlator contract address is required")
	}
	if cfg.NearWindow == 0 {
		cfg.NearWindow = defaultNearWindow
	}
	if cfg.MidWindow == 0 {
		cfg.MidWindow = defaultMidWindow
	}
	if cfg.MaxWindow == 0 {
		cfg.MaxWindow = defaultMaxWindow
	}
	if cfg.NearWindow >= cfg.MidWindow || cfg.MidWindow >= cfg.MaxWindow {
		return nil, fmt.Errorf("search windows must increase: %d < %d < %d", cfg.NearWindow, cfg.MidWindow, cfg.MaxWindow)
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	cache, err := lru.New[common.Hash, *model.Task](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("task cache: %w", err)
	}
	c := &Correlator{
		explorer: client,
		metrics:  metrics,
		logger:   logger,
		contract: cfg.Contract,
		windows:  []uint64{cfg.NearWindow, cfg.MidWindow, cfg.MaxWindow},
		cache:    cache,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type blockRange struct {
	from, to uint64
}

// searchRanges returns the non-empty backward windows for solutionBlock, nearest first.
func (c *Correlator) searchRanges(solutionBlock uint64) []blockRange {
	ranges := make([]blockRange, 0, len(c.windows))
	upper := solutionBlock
	for i, w := range c.windows {
		var from uint64
		if solutionBlock > w {
			from = solutionBlock - w
		}
		if i > 0 {
			if upper == 0 || from > upper-1 {
				break
			}
			upper--
		}
		ranges = append(ranges, blockRange{from: from, to: upper})
		if from == 0 {
			break
		}
		upper = from
	}
	return ranges
}

// FindTask searches the windows nearest first and stops at the first hit. A failed window
// query does not stop the search, but a lookup without a hit after any failure reports
// Unavailable instead of NotFound.
func (c *Correlator) FindTask(ctx context.Context, taskID common.Hash, solutionBlock uint64) (res model.TaskResult) {
	started := time.Now()
	cached := false
	defer func() {
		c.metrics.ObserveLookup(res.Status, res.Window, cached, started)
	}()

	if task, ok := c.cache.Get(taskID); ok {
		cached = true
		return model.TaskResult{Status: model.TaskFound, Task: task}
	}
	if task := c.stored(ctx, taskID); task != nil {
		cached = true
		c.cache.Add(taskID, task)
		return model.TaskResult{Status: model.TaskFound, Task: task}
	}

	failed := false
	for i, r := range c.searchRanges(solutionBlock) {
		if ctx.Err() != nil {
			failed = true
			break
		}
		logs, err := c.explorer.Logs(ctx, explorer.LogQuery{
			Address:   c.contract,
			Topic0:    abi.TaskSubmittedTopic,
			Topic1:    &taskID,
			FromBlock: r.from,
			ToBlock:   r.to,
		})
		if err != nil {
			c.logger.Warn("task window query failed",
				zap.String("task_id", taskID.Hex()),
				zap.Int("window", i+1),
				zap.Error(err),
			)
			failed = true
			continue
		}
		if len(logs) == 0 {
			continue
		}
		hit := c.earliest(taskID, logs)
		task := c.resolve(ctx, taskID, hit)
		if task.Cacheable() {
			c.cache.Add(taskID, task)
		}
		return model.TaskResult{Status: model.TaskFound, Task: task, Window: i + 1}
	}
	if failed {
		return model.UnavailableResult()
	}
	return model.NotFoundResult()
}

// stored returns the persisted task, or nil on a miss. Store errors are misses too.
func (c *Correlator) stored(ctx context.Context, taskID common.Hash) *model.Task {
	if c.store == nil {
		return nil
	}
	task, err := c.store.Task(ctx, taskID)
	if err != nil {
		c.logger.Debug("stored task lookup missed", zap.String("task_id", taskID.Hex()), zap.Error(err))
		return nil
	}
	if !task.Cacheable() {
		return nil
	}
	return task
}

func (c *Correlator) earliest(taskID common.Hash, logs []model.Log) model.Log {
	if len(logs) > 1 {
		sort.SliceStable(logs, func(i, j int) bool {
			if logs[i].BlockNumber != logs[j].BlockNumber {
				return logs[i].BlockNumber < logs[j].BlockNumber
			}
			return logs[i].LogIndex < logs[j].LogIndex
		})
		c.metrics.IncMultipleLogs()
		c.logger.Warn("multiple task submissions for one id, using earliest",
			zap.String("task_id", taskID.Hex()),
			zap.Int("logs", len(logs)),
			zap.String("chosen_tx", logs[0].TxHash.Hex()),
		)
	}
	return logs[0]
}

// resolve decodes the submission calldata, falling back to indexed topics only when the
// transaction cannot be fetched or is not a direct submitTask call.
func (c *Correlator) resolve(ctx context.Context, taskID common.Hash, hit model.Log) *model.Task {
	tx, err := c.explorer.Transaction(ctx, hit.TxHash)
	if err == nil && tx != nil && abi.Classify(tx.Input) == abi.MethodSubmitTask {
		sub, warnings := abi.DecodeTaskSubmission(tx.Input)
		for _, w := range warnings {
			c.logger.Debug("task decode warning", zap.String("task_id", taskID.Hex()), zap.Error(w))
		}
		task := abi.TaskFromSubmission(taskID, sub, hit.TxHash, hit.BlockNumber)
		if task.Submitter == (common.Address{}) {
			task.Submitter = tx.From
		}
		return task
	}

	fields := []zap.Field{zap.String("task_id", taskID.Hex()), zap.String("tx_hash", hit.TxHash.Hex())}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	c.logger.Info("falling back to log topics for task", fields...)

	task, topicErr := abi.TaskFromLog(hit)
	if topicErr != nil {
		return &model.Task{ID: taskID, TxHash: hit.TxHash, BlockNumber: hit.BlockNumber, Source: model.TaskSourceTopics}
	}
	task.ID = taskID
	return task
}

// Package explorer is a throttled client for Etherscan-compatible ledger explorer APIs.
package explorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrUnavailable wraps every transient explorer failure: transport errors, non-2xx
// responses, explorer-reported errors and malformed payloads.
var ErrUnavailable = errors.New("explorer unavailable")

// ErrTruncated reports a transaction listing that still had full pages at MaxPages. It is
// returned together with ErrUnavailable and no transactions; callers narrow the range.
var ErrTruncated = errors.New("transaction listing truncated")

type (
	// Metrics records explorer call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config holds explorer connection settings.
type Config struct {
	BaseURL      string
	APIKey       string
	ChainID      string
	RateInterval time.Duration
	BlockTimeout time.Duration
	ListTimeout  time.Duration
	LogTimeout   time.Duration
	TxTimeout    time.Duration
	PageSize     int
	MaxPages     int
}

// LogQuery filters event logs by emitting address, topic0 and an optional exact topic1.
type LogQuery struct {
	Address   common.Address
	Topic0    common.Hash
	Topic1    *common.Hash
	FromBlock uint64
	ToBlock   uint64
}

// Client is an explorer API client. Every call of every kind waits on one shared limiter.
type Client struct {
	baseURL    string
	apiKey     string
	chainID    string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	cfg        Config
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient validates cfg and constructs a Client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("explorer base url is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse explorer url %q: %w", base, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("explorer url must be http(s), got %q", base)
	}
	if metrics == nil {
		return nil, errors.New("explorer metrics is required")
	}
	if cfg.RateInterval <= 0 {
		cfg.RateInterval = defaultRateInterval
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}
	cfg.BlockTimeout = orDefault(cfg.BlockTimeout, defaultBlockTimeout)
	cfg.ListTimeout = orDefault(cfg.ListTimeout, defaultListTimeout)
	cfg.LogTimeout = orDefault(cfg.LogTimeout, defaultLogTimeout)
	cfg.TxTimeout = orDefault(cfg.TxTimeout, defaultTxTimeout)

	return &Client{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		chainID:    cfg.ChainID,
		httpClient: &http.Client{},
		limiter:    ratelimit.New(1, ratelimit.Per(cfg.RateInterval), ratelimit.WithoutSlack),
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// LatestBlock returns the current head block number.
func (c *Client) LatestBlock(ctx context.Context) (block uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("latest_block", err, started)
	}()

	q := url.Values{}
	q.Set("module", "proxy")
	q.Set("action", "eth_blockNumber")

	raw, err := c.call(ctx, "latest_block", c.cfg.BlockTimeout, q)
	if err != nil {
		return 0, err
	}
	var s string
	if err = json.Unmarshal(raw, &s); err != nil {
		return 0, c.malformed("latest_block", err)
	}
	block, err = ParseQuantity(s)
	if err != nil {
		return 0, c.malformed("latest_block", err)
	}
	return block, nil
}

// Transactions lists transactions of address within [fromBlock, toBlock], following pages
// until a short page. A range needing more than MaxPages pages fails with ErrTruncated.
func (c *Client) Transactions(ctx context.Context, address common.Address, fromBlock, toBlock uint64) (txs []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transactions", err, started)
	}()

	for page := 1; page <= c.cfg.MaxPages; page++ {
		q := url.Values{}
		q.Set("module", "account")
		q.Set("action", "txlist")
		q.Set("address", address.Hex())
		q.Set("startblock", strconv.FormatUint(fromBlock, 10))
		q.Set("endblock", strconv.FormatUint(toBlock, 10))
		q.Set("page", strconv.Itoa(page))
		q.Set("offset", strconv.Itoa(c.cfg.PageSize))
		q.Set("sort", "asc")

		raw, callErr := c.call(ctx, "transactions", c.cfg.ListTimeout, q)
		if callErr != nil {
			return nil, callErr
		}
		var records []txListRecord
		if err = json.Unmarshal(raw, &records); err != nil {
			return nil, c.malformed("transactions", err)
		}
		for _, rec := range records {
			tx, convErr := rec.toModel()
			if convErr != nil {
				c.logger.Warn("skip malformed transaction record", zap.String("hash", rec.Hash), zap.Error(convErr))
				continue
			}
			txs = append(txs, tx)
		}
		if len(records) < c.cfg.PageSize {
			return txs, nil
		}
	}
	c.logger.Warn("transaction listing truncated at page limit",
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", toBlock),
		zap.Int("max_pages", c.cfg.MaxPages),
	)
	return nil, fmt.Errorf("%w: %w: [%d, %d] exceeds %d pages of %d", ErrUnavailable, ErrTruncated, fromBlock, toBlock, c.cfg.MaxPages, c.cfg.PageSize)
}

// Logs returns event logs matching q.
func (c *Client) Logs(ctx context.Context, lq LogQuery) (logs []model.Log, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("logs", err, started)
	}()

	q := url.Values{}
	q.Set("module", "logs")
	q.Set("action", "getLogs")
	q.Set("address", lq.Address.Hex())
	q.Set("fromBlock", strconv.FormatUint(lq.FromBlock, 10))
	q.Set("toBlock", strconv.FormatUint(lq.ToBlock, 10))
	q.Set("topic0", lq.Topic0.Hex())
	if lq.Topic1 != nil {
		q.Set("topic1", lq.Topic1.Hex())
		q.Set("topic0_1_opr", "and")
	}

	raw, err := c.call(ctx, "logs", c.cfg.LogTimeout, q)
	if err != nil {
		return nil, err
	}
	var records []logRecord
	if err = json.Unmarshal(raw, &records); err != nil {
		return nil, c.malformed("logs", err)
	}
	logs = make([]model.Log, 0, len(records))
	for _, rec := range records {
		l, convErr := rec.toModel()
		if convErr != nil {
			c.logger.Warn("skip malformed log record", zap.String("tx_hash", rec.TransactionHash), zap.Error(convErr))
			continue
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// Transaction fetches a transaction with its raw calldata. A null result yields (nil, nil).
func (c *Client) Transaction(ctx context.Context, hash common.Hash) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transaction", err, started)
	}()

	q := url.Values{}
	q.Set("module", "proxy")
	q.Set("action", "eth_getTransactionByHash")
	q.Set("txhash", hash.Hex())

	raw, err := c.call(ctx, "transaction", c.cfg.TxTimeout, q)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var rec proxyTxRecord
	if err = json.Unmarshal(raw, &rec); err != nil {
		return nil, c.malformed("transaction", err)
	}
	out, err := rec.toModel()
	if err != nil {
		return nil, c.malformed("transaction", err)
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, op string, timeout time.Duration, q url.Values) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	if c.chainID != "" {
		q.Set("chainid", c.chainID)
	}
	endpoint := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, c.unavailable(op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.unavailable(op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyLimit(resp.Body, 4<<10)
		return nil, c.unavailable(op, fmt.Errorf("status=%d body=%q", resp.StatusCode, body))
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env); err != nil {
		return nil, c.malformed(op, err)
	}
	if env.Error != nil {
		return nil, c.unavailable(op, fmt.Errorf("rpc error %d: %s", env.Error.Code, env.Error.Message))
	}
	if env.Status == "0" {
		if isEmptyResult(env.Message) {
			return json.RawMessage("[]"), nil
		}
		return nil, c.unavailable(op, fmt.Errorf("explorer error: %s: %s", env.Message, strings.Trim(string(env.Result), `"`)))
	}
	return env.Result, nil
}

func (c *Client) unavailable(op string, err error) error {
	c.logger.Warn("explorer call failed", zap.String("operation", op), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}

func (c *Client) malformed(op string, err error) error {
	return c.unavailable(op, fmt.Errorf("malformed response: %w", err))
}

func isEmptyResult(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "no transactions found") || strings.Contains(m, "no records found")
}

func readBodyLimit(r io.Reader, limit int64) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, limit))
	return string(b)
}

func orDefault(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

package explorer

import "time"

const (
	defaultRateInterval = 250 * time.Millisecond

	defaultBlockTimeout = 10 * time.Second
	defaultListTimeout  = 30 * time.Second
	defaultLogTimeout   = 30 * time.Second
	defaultTxTimeout    = 15 * time.Second

	defaultPageSize = 1000
	defaultMaxPages = 10

	maxResponseBytes = 32 << 20
)

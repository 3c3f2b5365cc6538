package recheck

import "time"

const (
	defaultBatchSize   = 100
	defaultWorkers     = 4
	defaultMaxAttempts = 48
	defaultBaseDelay   = 15 * time.Minute
	defaultMaxDelay    = 24 * time.Hour
	defaultInterval    = 15 * time.Minute
)

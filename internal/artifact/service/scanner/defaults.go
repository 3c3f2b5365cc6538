package scanner

import "time"

const (
	defaultChunkSize       uint64 = 2_000
	defaultChunkDelay             = 2 * time.Second
	defaultStaleLockAfter         = 30 * time.Minute
	defaultResumeOverlap   uint64 = 100
	defaultInitialLookback uint64 = 10_000
	defaultMaxBatch               = 25
	defaultScanInterval           = 5 * time.Minute
	defaultAvgBlockTime           = 250 * time.Millisecond
	defaultRecheckDelay           = 15 * time.Minute

	releaseTimeout = 10 * time.Second
)

package scanner

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Config tunes scan ranges, pacing and the scan lock.
type Config struct {
	Contract common.Address
	// Owner identifies this process in the scan lock. Defaults to host and pid.
	Owner          string
	ChunkSize      uint64
	ChunkDelay     time.Duration
	StaleLockAfter time.Duration
	// ResumeOverlap is how far behind the checkpoint a resume pass restarts.
	ResumeOverlap uint64
	// InitialLookback bounds the first incremental pass on an empty checkpoint.
	InitialLookback uint64
	MaxBatch        int
	ScanInterval    time.Duration
	AvgBlockTime    time.Duration
	RecheckDelay    time.Duration
}

func (c Config) withDefaults() (Config, error) {
	if c.Contract == (common.Address{}) {
		return c, errors.New("scanner contract address is required")
	}
	if c.Owner == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "scanner"
		}
		c.Owner = fmt.Sprintf("%s-%d", host, os.Getpid())
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = defaultChunkSize
	}
	if c.ChunkDelay < 0 {
		c.ChunkDelay = 0
	} else if c.ChunkDelay == 0 {
		c.ChunkDelay = defaultChunkDelay
	}
	if c.StaleLockAfter <= 0 {
		c.StaleLockAfter = defaultStaleLockAfter
	}
	if c.ResumeOverlap == 0 {
		c.ResumeOverlap = defaultResumeOverlap
	}
	if c.InitialLookback == 0 {
		c.InitialLookback = defaultInitialLookback
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = defaultMaxBatch
	}
	if c.ScanInterval <= 0 {
		c.ScanInterval = defaultScanInterval
	}
	if c.AvgBlockTime <= 0 {
		c.AvgBlockTime = defaultAvgBlockTime
	}
	if c.RecheckDelay <= 0 {
		c.RecheckDelay = defaultRecheckDelay
	}
	return c, nil
}

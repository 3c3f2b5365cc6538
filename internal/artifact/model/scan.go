package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ScanMode names the orchestrator entry point that produced a scan.
type ScanMode string

var (
	ScanIncremental ScanMode = "incremental"
	ScanHistorical  ScanMode = "historical"
	ScanResume      ScanMode = "resume"
)

// ScanCheckpoint is the single persisted scan-progress row.
type ScanCheckpoint struct {
	LastScannedBlock uint64
	LastScanTime     time.Time
	TotalArtifacts   uint64
	InProgress       bool
	LockOwner        string
	LockedAt         time.Time
}

// ScanResult summarizes one orchestrator pass.
type ScanResult struct {
	Mode           ScanMode
	Skipped        bool
	FromBlock      uint64
	ToBlock        uint64
	LastBlock      uint64
	Transactions   int
	Solutions      int
	Artifacts      int
	Duplicates     int
	Candidates     int
	Rejected       int
	PartialFailure bool
	TotalArtifacts uint64
}

// ScanEventKind classifies analytics events emitted during scans.
type ScanEventKind string

var (
	EventDiscovered   ScanEventKind = "discovered"
	EventDuplicate    ScanEventKind = "duplicate"
	EventRejected     ScanEventKind = "rejected"
	EventInaccessible ScanEventKind = "inaccessible"
	EventIntegrity    ScanEventKind = "integrity"
)

// ScanEvent is an append-only analytics row mirrored to ClickHouse.
type ScanEvent struct {
	Kind        ScanEventKind
	CID         string
	TxHash      common.Hash
	TaskID      common.Hash
	BlockNumber uint64
	Gateway     string
	Reason      string
	EventTime   time.Time
}

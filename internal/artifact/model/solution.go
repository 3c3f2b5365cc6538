package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// SolutionKind distinguishes single and batch solution submissions.
type SolutionKind string

var (
	SolutionSingle SolutionKind = "single"
	SolutionBatch  SolutionKind = "batch"
)

// SolutionPair binds one result CID to the task it answers.
type SolutionPair struct {
	CID    string
	TaskID common.Hash
}

// Solution is a ledger-recorded submission claiming to fulfil one or more tasks.
type Solution struct {
	TxHash      common.Hash
	Provider    common.Address
	BlockNumber uint64
	Timestamp   time.Time
	GasUsed     uint64
	Pairs       []SolutionPair
	Kind        SolutionKind
}

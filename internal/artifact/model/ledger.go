package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Transaction is a normalized explorer transaction record.
type Transaction struct {
	Hash        common.Hash
	From        common.Address
	To          common.Address
	BlockNumber uint64
	Timestamp   time.Time
	GasUsed     uint64
	Input       []byte
	Failed      bool
}

// Log is a normalized explorer event log record.
type Log struct {
	Address     common.Address
	Topics      []common.Hash
	Data        []byte
	BlockNumber uint64
	LogIndex    uint64
	TxHash      common.Hash
	Timestamp   time.Time
}

package model

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Artifact is the persisted merged record of one accessible image output.
type Artifact struct {
	TxHash        common.Hash
	BatchIndex    uint32
	CID           string
	TaskID        common.Hash
	BlockNumber   uint64
	Timestamp     time.Time
	GatewayURL    string
	Accessible    bool
	Gateway       string
	LastCheckedAt time.Time
	Provider      common.Address
	TaskSubmitter *common.Address
	ModelID       *common.Hash
	Prompt        string
	Params        json.RawMessage
	DiscoveredAt  time.Time
}

// Candidate is an artifact-shaped record whose probe has not passed yet.
type Candidate struct {
	Artifact
	Attempts    uint32
	LastReason  string
	NextCheckAt time.Time
}

// ProbeResult describes gateway reachability and content classification of a CID.
type ProbeResult struct {
	CID         string
	Accessible  bool
	IsImage     bool
	Gateway     string
	URL         string
	ContentType string
	Reason      string
	CheckedAt   time.Time
}

// Admissible reports whether the probed content may become an Artifact.
func (r ProbeResult) Admissible() bool {
	return r.Accessible && r.IsImage
}

// Package model defines domain models for artifact ingestion.
package model

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TaskSource tells where task fields were decoded from.
type TaskSource string

var (
	// TaskSourceCalldata marks a task decoded from its submission calldata.
	TaskSourceCalldata TaskSource = "calldata"
	// TaskSourceTopics marks a task reconstructed from indexed log topics only.
	TaskSourceTopics TaskSource = "topics"
)

// Task is a unit-of-work submission discovered through a solution referencing its id.
type Task struct {
	ID          common.Hash
	Submitter   common.Address
	Model       common.Hash
	Fee         *big.Int
	TxHash      common.Hash
	BlockNumber uint64
	Prompt      string
	Params      json.RawMessage
	Source      TaskSource
}

// TaskStatus is the tag of a TaskResult.
type TaskStatus string

var (
	TaskFound    TaskStatus = "found"
	TaskNotFound TaskStatus = "not_found"
	// TaskUnavailable means no window hit but at least one window could not be searched,
	// so a miss cannot be told apart from an outage.
	TaskUnavailable TaskStatus = "unavailable"
)

// TaskResult is the outcome of a task lookup. Task is set only when Status is TaskFound.
type TaskResult struct {
	Status TaskStatus
	Task   *Task
	// Window is the 1-based search window that produced the hit, 0 when not found.
	Window int
}

// Found reports whether the lookup resolved a task.
func (r TaskResult) Found() bool {
	return r.Status == TaskFound && r.Task != nil
}

// NotFoundResult returns the NotFound variant.
func NotFoundResult() TaskResult {
	return TaskResult{Status: TaskNotFound}
}

// UnavailableResult returns the Unavailable variant.
func UnavailableResult() TaskResult {
	return TaskResult{Status: TaskUnavailable}
}

// Cacheable reports whether the task was decoded from calldata and may be reused by later
// lookups. Topic-only reconstructions are retried until calldata can be fetched.
func (t *Task) Cacheable() bool {
	return t != nil && t.Source == TaskSourceCalldata
}

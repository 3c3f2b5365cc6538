// Package abi decodes engine contract calldata and event logs without relying on a full ABI,
// tolerating truncated or garbled payloads.
package abi

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Method identifies the engine function a calldata payload invokes.
type Method string

var (
	MethodUnknown            Method = "unknown"
	MethodSubmitTask         Method = "submitTask"
	MethodSubmitSolution     Method = "submitSolution"
	MethodBulkSubmitSolution Method = "bulkSubmitSolution"
)

const (
	submitTaskSignature         = "submitTask(uint8,address,bytes32,uint256,bytes)"
	submitSolutionSignature     = "submitSolution(bytes32,bytes)"
	bulkSubmitSolutionSignature = "bulkSubmitSolution(bytes32[],bytes[])"
	taskSubmittedSignature      = "TaskSubmitted(bytes32,bytes32,uint256,address)"
)

var (
	SubmitTaskSelector         = selector(submitTaskSignature)
	SubmitSolutionSelector     = selector(submitSolutionSignature)
	BulkSubmitSolutionSelector = selector(bulkSubmitSolutionSignature)

	// TaskSubmittedTopic is topic0 of TaskSubmitted(bytes32 indexed id, bytes32 indexed model, uint256 fee, address indexed sender).
	TaskSubmittedTopic = crypto.Keccak256Hash([]byte(taskSubmittedSignature))
)

func selector(signature string) [4]byte {
	var out [4]byte
	copy(out[:], crypto.Keccak256([]byte(signature))[:4])
	return out
}

// Classify returns the engine method invoked by calldata.
func Classify(calldata []byte) Method {
	if len(calldata) < 4 {
		return MethodUnknown
	}
	sel := calldata[:4]
	switch {
	case bytes.Equal(sel, SubmitTaskSelector[:]):
		return MethodSubmitTask
	case bytes.Equal(sel, SubmitSolutionSelector[:]):
		return MethodSubmitSolution
	case bytes.Equal(sel, BulkSubmitSolutionSelector[:]):
		return MethodBulkSubmitSolution
	default:
		return MethodUnknown
	}
}

// IsSolution reports whether calldata is solution-shaped.
func IsSolution(calldata []byte) bool {
	m := Classify(calldata)
	return m == MethodSubmitSolution || m == MethodBulkSubmitSolution
}

// SelectorHex renders a selector the way explorers show method ids.
func SelectorHex(sel [4]byte) string {
	return common.Bytes2Hex(sel[:])
}

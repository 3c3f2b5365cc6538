package abi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

// ErrNotTaskSubmission reports calldata that does not invoke submitTask.
var ErrNotTaskSubmission = errors.New("not a task submission")

// TaskInput is the decoded dynamic input blob of a task submission.
type TaskInput struct {
	Prompt string
	// Params holds the whole input object when the blob is valid JSON.
	Params json.RawMessage
	Raw    []byte
}

// TaskSubmission is submitTask(version, owner, model, fee, input) decoded positionally.
type TaskSubmission struct {
	Version uint8
	Owner   common.Address
	Model   common.Hash
	Fee     *big.Int
	Input   TaskInput
}

// DecodeTaskSubmission decodes submitTask calldata. Problems in individual fields are
// returned as warnings and the remaining fields are still decoded; the only hard error
// is calldata that is not a task submission at all.
func DecodeTaskSubmission(calldata []byte) (TaskSubmission, []error) {
	var out TaskSubmission
	if Classify(calldata) != MethodSubmitTask {
		return out, []error{ErrNotTaskSubmission}
	}
	w := words(calldata[4:])
	var warnings []error
	warn := func(field string, err error) {
		warnings = append(warnings, fmt.Errorf("%s: %w", field, err))
	}

	if s, err := w.slot(0); err != nil {
		warn("version", err)
	} else {
		out.Version = s[wordSize-1]
	}
	if s, err := w.slot(1); err != nil {
		warn("owner", err)
	} else {
		out.Owner = common.BytesToAddress(s)
	}
	if s, err := w.slot(2); err != nil {
		warn("model", err)
	} else {
		out.Model = common.BytesToHash(s)
	}
	if fee, err := w.bigInt(3); err != nil {
		warn("fee", err)
	} else {
		out.Fee = fee
	}

	off, err := w.offset(4)
	if err != nil {
		warn("input offset", err)
		return out, warnings
	}
	blob, err := w.dynamicBytes(off)
	if err != nil {
		warn("input", err)
		return out, warnings
	}
	input, err := ParseTaskInput(blob)
	if err != nil {
		warn("input", err)
	}
	out.Input = input
	return out, warnings
}

// ParseTaskInput parses the task input blob as UTF-8 JSON carrying at least a prompt.
// A blob that is not JSON yields an empty prompt and an error describing why.
func ParseTaskInput(blob []byte) (TaskInput, error) {
	in := TaskInput{Raw: blob}
	if len(blob) == 0 {
		return in, errors.New("empty input")
	}
	if !utf8.Valid(blob) {
		return in, errors.New("input is not valid utf-8")
	}
	if !json.Valid(blob) {
		return in, errors.New("input is not json")
	}
	in.Params = json.RawMessage(blob)

	var fields struct {
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.Unmarshal(blob, &fields); err != nil {
		return in, fmt.Errorf("input is not a json object: %w", err)
	}
	if len(fields.Prompt) == 0 {
		return in, errors.New("input has no prompt")
	}
	var prompt string
	if err := json.Unmarshal(fields.Prompt, &prompt); err != nil {
		return in, fmt.Errorf("prompt is not a string: %w", err)
	}
	in.Prompt = prompt
	return in, nil
}

// TaskFromSubmission merges a decoded submission with the log that located it.
func TaskFromSubmission(id common.Hash, sub TaskSubmission, txHash common.Hash, block uint64) *model.Task {
	return &model.Task{
		ID:          id,
		Submitter:   sub.Owner,
		Model:       sub.Model,
		Fee:         sub.Fee,
		TxHash:      txHash,
		BlockNumber: block,
		Prompt:      sub.Input.Prompt,
		Params:      sub.Input.Params,
		Source:      model.TaskSourceCalldata,
	}
}

// TaskFromLog reconstructs what it can of a task from indexed TaskSubmitted topics.
// Topics are padded words, so only fixed-size fields are recovered.
func TaskFromLog(l model.Log) (*model.Task, error) {
	if len(l.Topics) < 2 || l.Topics[0] != TaskSubmittedTopic {
		return nil, fmt.Errorf("log %s is not TaskSubmitted", l.TxHash.Hex())
	}
	t := &model.Task{
		ID:          l.Topics[1],
		TxHash:      l.TxHash,
		BlockNumber: l.BlockNumber,
		Source:      model.TaskSourceTopics,
	}
	if len(l.Topics) > 2 {
		t.Model = l.Topics[2]
	}
	if len(l.Topics) > 3 {
		t.Submitter = common.BytesToAddress(l.Topics[3].Bytes())
	}
	if len(l.Data) >= wordSize {
		t.Fee = new(big.Int).SetBytes(l.Data[:wordSize])
	}
	return t, nil
}

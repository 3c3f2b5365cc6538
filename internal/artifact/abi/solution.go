package abi

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/cid"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

var (
	// ErrNotSolution reports calldata that is not solution-shaped.
	ErrNotSolution = errors.New("not a solution submission")
	// ErrNoCID reports a solution without any valid embedded multihash.
	ErrNoCID = errors.New("no cid in solution")
	// ErrBatchTooLarge reports a batch with more task ids than the configured cap.
	ErrBatchTooLarge = errors.New("batch exceeds cap")
	// ErrPairMismatch reports a batch whose task id and cid counts differ.
	ErrPairMismatch = cid.ErrPairMismatch
)

// SolutionSubmission is a decoded single or batch solution payload.
type SolutionSubmission struct {
	Kind  model.SolutionKind
	Pairs []model.SolutionPair
}

// DecodeSolutionSubmission decodes submitSolution or bulkSubmitSolution calldata into
// (cid, task id) pairs. maxBatch caps the number of task ids of a batch.
func DecodeSolutionSubmission(calldata []byte, maxBatch int) (SolutionSubmission, error) {
	switch Classify(calldata) {
	case MethodSubmitSolution:
		return decodeSingle(words(calldata[4:]))
	case MethodBulkSubmitSolution:
		return decodeBatch(words(calldata[4:]), maxBatch)
	default:
		return SolutionSubmission{}, ErrNotSolution
	}
}

func decodeSingle(w words) (SolutionSubmission, error) {
	s, err := w.slot(0)
	if err != nil {
		return SolutionSubmission{}, fmt.Errorf("task id: %w", err)
	}
	taskID := common.BytesToHash(s)

	cids := cid.Extract(w[wordSize:])
	if len(cids) == 0 {
		return SolutionSubmission{}, ErrNoCID
	}
	return SolutionSubmission{
		Kind:  model.SolutionSingle,
		Pairs: []model.SolutionPair{{CID: cids[0], TaskID: taskID}},
	}, nil
}

func decodeBatch(w words, maxBatch int) (SolutionSubmission, error) {
	idsOff, err := w.offset(0)
	if err != nil {
		return SolutionSubmission{}, fmt.Errorf("task ids offset: %w", err)
	}
	rawIDs, err := w.wordArray(idsOff, maxBatch)
	if err != nil {
		return SolutionSubmission{}, fmt.Errorf("task ids: %w", err)
	}
	ids := make([]common.Hash, len(rawIDs))
	for i, raw := range rawIDs {
		ids[i] = common.Hash(raw)
	}

	// The cid section normally follows the id array; fall back to it when the
	// second head offset is unusable.
	cidsOff, err := w.offset(1)
	if err != nil || cidsOff < wordSize*2 {
		cidsOff = idsOff + wordSize*(1+len(ids))
	}
	cids := cid.Extract(w[cidsOff:])

	pairs, err := cid.Pair(cids, ids)
	if err != nil {
		return SolutionSubmission{}, err
	}
	if len(pairs) == 0 {
		return SolutionSubmission{}, ErrNoCID
	}
	return SolutionSubmission{Kind: model.SolutionBatch, Pairs: pairs}, nil
}

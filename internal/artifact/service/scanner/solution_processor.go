package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/abi"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/admission"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/prober"
	"github.com/goodnatureofminers/artifactscan-backend/pkg/safe"
	"go.uber.org/zap"
)

// Rejection reasons for solutions that never reach the prober.
const (
	reasonBatchTooLarge = "batch_too_large"
	reasonNoCID         = "no_cid"
	reasonMalformed     = "malformed_calldata"
	reasonPairMismatch  = "pair_mismatch"
)

// errTaskUnavailable stops a chunk whose task lookup failed on the explorer side, so the
// checkpoint stays put and the next scan retries the solution.
var errTaskUnavailable = errors.New("task lookup unavailable")

// solutionProcessor turns one solution transaction into artifacts, candidates and events.
type solutionProcessor struct {
	store        ArtifactStore
	correlator   Correlator
	prober       Prober
	admission    Admission
	events       EventSink
	metrics      Metrics
	logger       *zap.Logger
	maxBatch     int
	recheckDelay time.Duration
	now          func() time.Time
}

// Process handles tx. Store failures and unavailable task lookups are returned; everything
// else is recorded as an outcome so the chunk carries on.
func (p *solutionProcessor) Process(ctx context.Context, tx model.Transaction, res *model.ScanResult) error {
	if tx.Failed || !abi.IsSolution(tx.Input) {
		return nil
	}
	res.Solutions++

	sub, err := abi.DecodeSolutionSubmission(tx.Input, p.maxBatch)
	if err != nil {
		p.rejectSubmission(ctx, tx, err, res)
		return nil
	}

	for i, pair := range sub.Pairs {
		index, err := safe.Uint32(i)
		if err != nil {
			return fmt.Errorf("batch index %d: %w", i, err)
		}
		if err := p.processPair(ctx, tx, index, pair, res); err != nil {
			return fmt.Errorf("pair %d cid %s: %w", i, pair.CID, err)
		}
	}
	return nil
}

func (p *solutionProcessor) rejectSubmission(ctx context.Context, tx model.Transaction, err error, res *model.ScanResult) {
	kind, reason := model.EventRejected, reasonMalformed
	switch {
	case errors.Is(err, abi.ErrPairMismatch):
		kind, reason = model.EventIntegrity, reasonPairMismatch
	case errors.Is(err, abi.ErrBatchTooLarge):
		reason = reasonBatchTooLarge
	case errors.Is(err, abi.ErrNoCID):
		reason = reasonNoCID
	}
	if kind == model.EventRejected {
		res.Rejected++
	}
	p.logger.Warn("solution not decodable",
		zap.String("tx_hash", tx.Hash.Hex()),
		zap.Uint64("block", tx.BlockNumber),
		zap.String("reason", reason),
		zap.Error(err),
	)
	p.emit(ctx, model.ScanEvent{
		Kind:        kind,
		TxHash:      tx.Hash,
		BlockNumber: tx.BlockNumber,
		Reason:      reason,
	})
}

func (p *solutionProcessor) processPair(ctx context.Context, tx model.Transaction, index uint32, pair model.SolutionPair, res *model.ScanResult) error {
	event := model.ScanEvent{
		CID:         pair.CID,
		TxHash:      tx.Hash,
		TaskID:      pair.TaskID,
		BlockNumber: tx.BlockNumber,
	}

	exists, err := p.store.HasArtifact(ctx, pair.CID)
	if err != nil {
		return fmt.Errorf("check artifact: %w", err)
	}
	if exists {
		res.Duplicates++
		event.Kind = model.EventDuplicate
		p.emit(ctx, event)
		return nil
	}

	a := model.Artifact{
		TxHash:      tx.Hash,
		BatchIndex:  index,
		CID:         pair.CID,
		TaskID:      pair.TaskID,
		BlockNumber: tx.BlockNumber,
		Timestamp:   tx.Timestamp,
		Provider:    tx.From,
	}

	found := p.correlator.FindTask(ctx, pair.TaskID, tx.BlockNumber)
	if found.Status == model.TaskUnavailable {
		return fmt.Errorf("task %s: %w", pair.TaskID.Hex(), errTaskUnavailable)
	}
	if found.Found() {
		task := found.Task
		if task.Cacheable() {
			if _, err := p.store.SaveTask(ctx, task); err != nil {
				p.logger.Warn("save task failed", zap.String("task_id", task.ID.Hex()), zap.Error(err))
			}
		}
		if reason := p.admission.Check(task.Prompt); reason != admission.Admitted {
			res.Rejected++
			event.Kind, event.Reason = model.EventRejected, string(reason)
			p.emit(ctx, event)
			return nil
		}
		submitter, modelID := task.Submitter, task.Model
		a.TaskSubmitter = &submitter
		a.ModelID = &modelID
		a.Prompt = task.Prompt
		a.Params = task.Params
	} else {
		p.logger.Debug("task not found, ingesting without task fields",
			zap.String("task_id", pair.TaskID.Hex()),
			zap.Uint64("block", tx.BlockNumber),
		)
	}

	probe := p.prober.Probe(ctx, pair.CID)
	a.Accessible = probe.Accessible
	a.Gateway = probe.Gateway
	a.GatewayURL = probe.URL
	a.LastCheckedAt = probe.CheckedAt
	event.Gateway = probe.Gateway

	if !probe.Admissible() {
		event.Reason = probe.Reason
		if probe.Reason == prober.ReasonInvalidCID {
			res.Rejected++
			event.Kind = model.EventRejected
			p.emit(ctx, event)
			return nil
		}
		if _, err := p.store.SaveCandidate(ctx, model.Candidate{
			Artifact:    a,
			LastReason:  probe.Reason,
			NextCheckAt: probe.CheckedAt.Add(p.recheckDelay),
		}); err != nil {
			return fmt.Errorf("save candidate: %w", err)
		}
		res.Candidates++
		event.Kind = model.EventInaccessible
		p.emit(ctx, event)
		return nil
	}

	a.DiscoveredAt = p.now()
	created, err := p.store.CreateArtifact(ctx, a)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	if created {
		res.Artifacts++
		event.Kind = model.EventDiscovered
	} else {
		res.Duplicates++
		event.Kind = model.EventDuplicate
	}
	p.emit(ctx, event)
	return nil
}

func (p *solutionProcessor) emit(ctx context.Context, e model.ScanEvent) {
	if e.EventTime.IsZero() {
		e.EventTime = p.now()
	}
	p.metrics.IncOutcome(e.Kind)
	p.events.Emit(ctx, e)
}

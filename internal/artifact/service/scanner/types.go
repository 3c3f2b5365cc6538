package scanner

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/admission"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Explorer interface {
		LatestBlock(ctx context.Context) (uint64, error)
		Transactions(ctx context.Context, address common.Address, fromBlock, toBlock uint64) ([]model.Transaction, error)
	}
	Correlator interface {
		FindTask(ctx context.Context, taskID common.Hash, solutionBlock uint64) model.TaskResult
	}
	Prober interface {
		Probe(ctx context.Context, cid string) model.ProbeResult
	}
	Admission interface {
		Check(prompt string) admission.Reason
	}
	LockStore interface {
		AcquireScanLock(ctx context.Context, owner string, staleAfter time.Duration) (bool, error)
		TouchScanLock(ctx context.Context, owner string) (bool, error)
		ReleaseScanLock(ctx context.Context, owner string) (bool, error)
	}
	CheckpointStore interface {
		Checkpoint(ctx context.Context) (model.ScanCheckpoint, error)
		AdvanceCheckpoint(ctx context.Context, block uint64) (model.ScanCheckpoint, error)
	}
	ArtifactStore interface {
		HasArtifact(ctx context.Context, cid string) (bool, error)
		CreateArtifact(ctx context.Context, a model.Artifact) (bool, error)
		SaveTask(ctx context.Context, t *model.Task) (bool, error)
		SaveCandidate(ctx context.Context, c model.Candidate) (bool, error)
	}
	EventSink interface {
		Emit(ctx context.Context, e model.ScanEvent)
	}
	TransactionProcessor interface {
		Process(ctx context.Context, tx model.Transaction, res *model.ScanResult) error
	}
	Metrics interface {
		ObserveScan(res model.ScanResult, err error, started time.Time)
		ObserveChunk(err error, transactions int, started time.Time)
		IncOutcome(kind model.ScanEventKind)
		SetCheckpoint(cp model.ScanCheckpoint)
	}
)

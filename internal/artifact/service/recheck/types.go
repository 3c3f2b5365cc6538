package recheck

import (
	"context"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	CandidateStore interface {
		DueCandidates(ctx context.Context, now time.Time, limit int, maxAttempts uint32) ([]model.Candidate, error)
		CreateArtifact(ctx context.Context, a model.Artifact) (bool, error)
		RescheduleCandidate(ctx context.Context, cid, reason string, checkedAt, next time.Time) error
	}
	Prober interface {
		Probe(ctx context.Context, cid string) model.ProbeResult
	}
	EventSink interface {
		Emit(ctx context.Context, e model.ScanEvent)
	}
	Metrics interface {
		ObserveRecheck(checked, promoted int, err error, started time.Time)
		IncOutcome(kind model.ScanEventKind)
	}
)

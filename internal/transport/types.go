package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusSource interface {
		Checkpoint(ctx context.Context) (model.ScanCheckpoint, error)
		CountCandidates(ctx context.Context) (uint64, error)
	}
	EventCounter interface {
		ScanEventCounts(ctx context.Context, since time.Time) (map[model.ScanEventKind]uint64, error)
	}
)

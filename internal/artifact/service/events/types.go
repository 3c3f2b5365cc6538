package events

import (
	"context"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Writer interface {
		InsertScanEvents(ctx context.Context, events []model.ScanEvent) error
	}
	Metrics interface {
		ObserveFlush(size int, err error, started time.Time)
		IncDropped()
	}
)

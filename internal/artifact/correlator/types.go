package correlator

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/explorer"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Explorer interface {
		Logs(ctx context.Context, q explorer.LogQuery) ([]model.Log, error)
		Transaction(ctx context.Context, hash common.Hash) (*model.Transaction, error)
	}
	TaskStore interface {
		Task(ctx context.Context, id common.Hash) (*model.Task, error)
	}
	Metrics interface {
		ObserveLookup(status model.TaskStatus, window int, cached bool, started time.Time)
		IncMultipleLogs()
	}
)

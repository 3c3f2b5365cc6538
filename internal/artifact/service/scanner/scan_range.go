package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/explorer"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"go.uber.org/zap"
)

// scanRange walks [res.FromBlock, res.ToBlock] in chunks. The checkpoint advances after each
// fully processed chunk, but only when the range connects to it; a range starting beyond the
// checkpoint would otherwise skip the gap. Incremental and resume ranges are derived from the
// checkpoint and always connect. A chunk whose listing is truncated is halved until it fits.
// Cancellation is observed between chunks only.
func (s *Service) scanRange(ctx context.Context, guard *Guard, cp model.ScanCheckpoint, res *model.ScanResult) {
	advance := res.Mode != model.ScanHistorical || res.FromBlock <= cp.LastScannedBlock+1
	chunkCtx := context.WithoutCancel(ctx)

	s.logger.Info("scan started",
		zap.String("mode", string(res.Mode)),
		zap.Uint64("from_block", res.FromBlock),
		zap.Uint64("to_block", res.ToBlock),
		zap.Bool("advances_checkpoint", advance),
	)

	for start := res.FromBlock; ; {
		if err := ctx.Err(); err != nil {
			s.stop(res, start, err)
			break
		}
		end := res.ToBlock
		if end-start >= s.cfg.ChunkSize {
			end = start + s.cfg.ChunkSize - 1
		}

		err := s.scanChunk(chunkCtx, guard, start, end, res)
		for errors.Is(err, explorer.ErrTruncated) && end > start {
			end = start + (end-start)/2
			s.logger.Info("transaction listing truncated, narrowing chunk",
				zap.Uint64("from_block", start),
				zap.Uint64("to_block", end),
			)
			err = s.scanChunk(chunkCtx, guard, start, end, res)
		}
		if err != nil {
			s.stop(res, start, err)
			break
		}
		if advance {
			updated, err := s.checkpoint.AdvanceCheckpoint(chunkCtx, end)
			if err != nil {
				s.stop(res, start, fmt.Errorf("advance checkpoint: %w", err))
				break
			}
			res.LastBlock = updated.LastScannedBlock
			res.TotalArtifacts = updated.TotalArtifacts
			s.metrics.SetCheckpoint(updated)
		}

		if end >= res.ToBlock {
			break
		}
		start = end + 1
		if err := s.sleep(ctx, s.cfg.ChunkDelay); err != nil {
			s.stop(res, start, err)
			break
		}
	}

	if !advance {
		updated, err := s.checkpoint.AdvanceCheckpoint(chunkCtx, 0)
		if err != nil {
			s.logger.Warn("refresh artifact total failed", zap.Error(err))
			return
		}
		res.TotalArtifacts = updated.TotalArtifacts
		s.metrics.SetCheckpoint(updated)
	}
}

func (s *Service) stop(res *model.ScanResult, at uint64, err error) {
	res.PartialFailure = true
	s.logger.Warn("scan stopped before range end",
		zap.String("mode", string(res.Mode)),
		zap.Uint64("at_block", at),
		zap.Uint64("last_block", res.LastBlock),
		zap.Error(err),
	)
}

func (s *Service) scanChunk(ctx context.Context, guard *Guard, from, to uint64, res *model.ScanResult) (err error) {
	started := time.Now()
	transactions := 0
	defer func() {
		s.metrics.ObserveChunk(err, transactions, started)
	}()

	if err = guard.Touch(ctx); err != nil {
		return err
	}
	txs, err := s.explorer.Transactions(ctx, s.cfg.Contract, from, to)
	if err != nil {
		return fmt.Errorf("fetch transactions [%d, %d]: %w", from, to, err)
	}
	transactions = len(txs)
	res.Transactions += len(txs)

	for _, tx := range txs {
		if err = s.processor.Process(ctx, tx, res); err != nil {
			return fmt.Errorf("process transaction %s: %w", tx.Hash.Hex(), err)
		}
	}
	return nil
}

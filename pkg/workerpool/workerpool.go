// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Process runs process over items with at most workerCount in flight. The first error
// cancels the shared context and is returned once running workers finish.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if workerCount <= 0 {
		return errors.New("worker count must be positive")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			return process(gctx, item)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

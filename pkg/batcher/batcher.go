// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned when adding to a stopped Batcher.
	ErrStopped = errors.New("batcher stopped")
	// ErrFull is returned by TryAdd when the queue has no room.
	ErrFull = errors.New("batcher queue full")
)

// Options configures a Batcher.
type Options struct {
	// FlushSize flushes once this many items are buffered.
	FlushSize int
	// FlushInterval flushes whatever is buffered on this period.
	FlushInterval time.Duration
	// RPS caps flushes per second.
	RPS int
	// QueueSize bounds pending items. Defaults to twice FlushSize.
	QueueSize int
	// OnFlush, when set, observes every flush attempt.
	OnFlush func(size int, err error, started time.Time)
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	opts          Options
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, opts Options) (*Batcher[T], error) {
	if flushCallback == nil {
		return nil, errors.New("batcher flush callback is required")
	}
	if opts.FlushSize <= 0 {
		return nil, errors.New("batcher flush size must be positive")
	}
	if opts.FlushInterval <= 0 {
		return nil, errors.New("batcher flush interval must be positive")
	}
	if opts.RPS <= 0 {
		return nil, errors.New("batcher rps must be positive")
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = opts.FlushSize * 2
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, opts.QueueSize),
		opts:          opts,
		rl:            ratelimit.New(opts.RPS),
		stop:          make(chan struct{}),
	}, nil
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes queued items and stops the loop. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without blocking.
func (b *Batcher[T]) TryAdd(item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case b.itemsCh <- item:
		return nil
	default:
		return ErrFull
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.opts.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.FlushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		started := time.Now()
		err := b.flushCallback(ctx, buf)
		if b.opts.OnFlush != nil {
			b.opts.OnFlush(len(buf), err, started)
		}
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// drain flushes everything still queued on a context that outlives ctx.
	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.opts.FlushSize {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.opts.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}

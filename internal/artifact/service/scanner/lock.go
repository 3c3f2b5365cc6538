package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrBusy reports that another scan holds the lock.
	ErrBusy = errors.New("scan already in progress")
	// ErrLockLost reports that the lease was taken over while scanning.
	ErrLockLost = errors.New("scan lock lost")
)

// Lock is the store-backed exclusive scan flag.
type Lock struct {
	store      LockStore
	owner      string
	staleAfter time.Duration
	logger     *zap.Logger
}

// NewLock builds a Lock for owner.
func NewLock(store LockStore, owner string, staleAfter time.Duration, logger *zap.Logger) *Lock {
	return &Lock{store: store, owner: owner, staleAfter: staleAfter, logger: logger}
}

// Acquire sets the flag or returns ErrBusy.
func (l *Lock) Acquire(ctx context.Context) (*Guard, error) {
	ok, err := l.store.AcquireScanLock(ctx, l.owner, l.staleAfter)
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !ok {
		return nil, ErrBusy
	}
	return &Guard{lock: l}, nil
}

// Guard is a held lock. Release must be deferred right after a successful Acquire.
type Guard struct {
	lock *Lock
	once sync.Once
}

// Touch renews the lease and fails with ErrLockLost if another owner took it over.
func (g *Guard) Touch(ctx context.Context) error {
	held, err := g.lock.store.TouchScanLock(ctx, g.lock.owner)
	if err != nil {
		return fmt.Errorf("renew scan lock: %w", err)
	}
	if !held {
		return ErrLockLost
	}
	return nil
}

// Release clears the flag once. It runs on a context detached from ctx so a cancelled
// scan still releases.
func (g *Guard) Release(ctx context.Context) {
	g.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()

		released, err := g.lock.store.ReleaseScanLock(ctx, g.lock.owner)
		switch {
		case err != nil:
			g.lock.logger.Error("release scan lock failed; lease will expire",
				zap.String("owner", g.lock.owner),
				zap.Duration("stale_after", g.lock.staleAfter),
				zap.Error(err),
			)
		case !released:
			g.lock.logger.Warn("scan lock was no longer held at release", zap.String("owner", g.lock.owner))
		}
	})
}

package adapters

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
)

// localUserLocker implements adapter.UserLocker for a single process.
type localUserLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]chan struct{}
	wait  time.Duration
}

// NewLocalUserLocker creates an in-process locker. Writes wait at most wait for the lock.
func NewLocalUserLocker(wait time.Duration) adapter.UserLocker {
	return &localUserLocker{
		locks: make(map[uuid.UUID]chan struct{}),
		wait:  wait,
	}
}

// Lock acquires the user's lock.
func (l *localUserLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	l.mu.Lock()
	slot, ok := l.locks[userID]
	if !ok {
		slot = make(chan struct{}, 1)
		l.locks[userID] = slot
	}
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, domainerror.ErrStateBusy
	}
}

// redisUserLocker implements adapter.UserLocker with Redis so every API instance shares the lock.
type redisUserLocker struct {
	client *redislock.Client
	prefix string
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisUserLocker creates a distributed locker. Lock keys are prefix + user id.
func NewRedisUserLocker(client *redis.Client, prefix string, ttl, wait time.Duration) adapter.UserLocker {
	return &redisUserLocker{
		client: redislock.New(client),
		prefix: prefix,
		ttl:    ttl,
		wait:   wait,
	}
}

// Lock acquires the user's lock, retrying until the wait budget runs out.
func (l *redisUserLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	key := l.prefix + userID.String()
	lock, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(25 * time.Millisecond),
	})
	if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
		return nil, domainerror.ErrStateBusy
	}
	if err != nil {
		return nil, err
	}

	return func() {
		if err := lock.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			slog.Warn("failed to release state lock", "key", key, "error", err)
		}
	}, nil
}

// Package slotlock serializes booking writes for one capacity pool across service instances.
// The lock only narrows the race window; the database transaction remains the enforcement point.
package slotlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL           = 10 * time.Second
	defaultWait          = 3 * time.Second
	defaultRetryInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the lock could not be taken within the wait period
var ErrLockTimeout = errors.New("slotlock: timed out waiting for lock")

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ReleaseFunc frees a held lock. It is safe to call more than once.
type ReleaseFunc func()

// Locker is a redis SET NX PX lock with owner tokens.
type Locker struct {
	rdb           *redis.Client
	ttl           time.Duration
	wait          time.Duration
	retryInterval time.Duration
}

// New creates a redis-backed locker. Zero durations fall back to defaults.
func New(rdb *redis.Client, ttl, wait time.Duration) *Locker {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if wait <= 0 {
		wait = defaultWait
	}
	return &Locker{rdb: rdb, ttl: ttl, wait: wait, retryInterval: defaultRetryInterval}
}

// Acquire blocks until the key is locked, the wait period elapses or ctx is done.
func (l *Locker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("slotlock: setnx %s: %w", key, err)
		}
		if ok {
			return l.releaser(key, token), nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryInterval):
		}
	}
}

func (l *Locker) releaser(key, token string) ReleaseFunc {
	released := false
	return func() {
		if released {
			return
		}
		released = true
		// отдельный контекст: запрос мог быть уже отменен, а ключ нужно освободить
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.rdb, []string{key}, token).Err()
	}
}

// NopLocker is used when redis is disabled.
type NopLocker struct{}

func (NopLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	return func() {}, nil
}

// Key builds the lock key for a (workspace, service type, date) capacity pool.
func Key(workspaceID, serviceTypeID int64, date time.Time) string {
	return fmt.Sprintf("slotlock:ws:%d:st:%d:%s", workspaceID, serviceTypeID, date.Format("2006-01-02"))
}

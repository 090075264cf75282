// Package lock provides the run-level advisory lock that keeps concurrent
// sync runs from interleaving writes against the same tickets.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RunLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRunLock(client *redis.Client, ttl time.Duration) *RunLock {
	return &RunLock{
		client: client,
		ttl:    ttl,
	}
}

// Acquire takes the named lock for the configured TTL and reports whether
// it succeeded. The token must be unique per run; Release only deletes the
// lock when the token still matches, so an expired lock taken over by
// another run is never released by the original holder.
func (l *RunLock) Acquire(ctx context.Context, name, token string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(name), token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	return ok, nil
}

func (l *RunLock) Release(ctx context.Context, name, token string) error {
	script := redis.NewScript(`
		if redis.call("get", KEYS[1]) == ARGV[1] then
			return redis.call("del", KEYS[1])
		end
		return 0
	`)
	if err := script.Run(ctx, l.client, []string{l.key(name)}, token).Err(); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}
	return nil
}

func (l *RunLock) key(name string) string {
	return "repairsync:lock:" + name
}

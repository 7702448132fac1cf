// Package cache keeps converted words in Redis so repeated amounts skip conversion.
// A cache failure is never fatal to a conversion: callers log it and convert anyway.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rahack95/OSSRH-63090/nepaliword"
)

const keyPrefix = "NEPALIWORD_V1"

// Cache stores the words of an amount under a key built by Key.
type Cache interface {
	// Get returns the cached words and true, or "" and false on a miss.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, words string) error
}

// Key identifies the words of a in the given spacing mode. Amounts that read
// the same share a key: 100, 100.0 and 100.009 all map to "100.00".
func Key(a nepaliword.Amount, legacy bool) string {
	mode := "STD"
	if legacy {
		mode = "LEGACY"
	}
	return fmt.Sprintf("%s_%s_%s.%02d", keyPrefix, mode, a.Integer.String(), a.Fraction)
}

// Redis is a Cache backed by a go-redis client.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client; entries expire after ttl, or never if ttl is zero.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Dial connects to the Redis server at addr and pings it.
func Dial(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedis(client, ttl), nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	words, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return words, true, nil
}

func (r *Redis) Set(ctx context.Context, key, words string) error {
	if err := r.client.Set(ctx, key, words, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Noop is used when no Redis address is configured; every lookup misses.
type Noop struct{}

func (Noop) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (Noop) Set(context.Context, string, string) error         { return nil }

// Package ratelimit limits anonymous survey submissions per client.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

//go:generate mockgen -source=ratelimit.go -destination=../mocks/ratelimit_mocks.go -package=mocks

// Limiter decides whether key may perform one more request
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter shared by every replica
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewRedisLimiter creates a limiter allowing limit requests per window
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "psicomapa:ratelimit:",
		now:    time.Now,
	}
}

// Allow increments the key's counter for the current window
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, bucket)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}
	return incr.Val() <= l.limit, nil
}

type memoryEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter is a per-process token bucket per key
type MemoryLimiter struct {
	mu       sync.Mutex
	entries  map[string]*memoryEntry
	limit    rate.Limit
	burst    int
	maxIdle  time.Duration
	lastScan time.Time
}

// NewMemoryLimiter allows perMinute requests per key, refilled continuously
func NewMemoryLimiter(perMinute int) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*memoryEntry),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   perMinute,
		maxIdle: 10 * time.Minute,
	}
}

// Allow consumes one token for key
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastScan) > l.maxIdle {
		for k, e := range l.entries {
			if now.Sub(e.lastSeen) > l.maxIdle {
				delete(l.entries, k)
			}
		}
		l.lastScan = now
	}

	e, ok := l.entries[key]
	if !ok {
		e = &memoryEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1), nil
}

// Unlimited allows everything; used when the limit is disabled
type Unlimited struct{}

// Allow always returns true
func (Unlimited) Allow(context.Context, string) (bool, error) { return true, nil }

// New picks the Redis limiter when redisURL is set and reachable, the
// in-memory one otherwise. A non-positive limit disables limiting.
func New(ctx context.Context, redisURL string, perMinute int) (Limiter, *redis.Client, error) {
	if perMinute <= 0 {
		return Unlimited{}, nil, nil
	}
	if redisURL == "" {
		return NewMemoryLimiter(perMinute), nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return NewMemoryLimiter(perMinute), nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return NewMemoryLimiter(perMinute), nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisLimiter(client, perMinute, time.Minute), client, nil
}

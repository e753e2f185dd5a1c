package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// DefaultMaxKeys bounds the number of buckets kept in memory.
const DefaultMaxKeys = 100_000

// TokenBucket implements a token bucket rate limiter.
// It allows bursts of traffic while maintaining an average rate. Buckets live
// in an LRU, so idle keys are forgotten once MaxKeys is reached.
type TokenBucket struct {
	rate     int           // tokens added per interval
	interval time.Duration // refill interval
	burst    int           // bucket capacity
	maxKeys  int
	now      func() time.Time

	buckets *cache.LRUCache[string, *bucket]
}

type bucket struct {
	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// TokenBucketOption configures a TokenBucket.
type TokenBucketOption func(*TokenBucket)

// WithBurst sets the maximum burst size (bucket capacity).
func WithBurst(burst int) TokenBucketOption {
	return func(tb *TokenBucket) {
		if burst > 0 {
			tb.burst = burst
		}
	}
}

// WithMaxKeys sets how many keys are tracked at most.
func WithMaxKeys(n int) TokenBucketOption {
	return func(tb *TokenBucket) {
		if n > 0 {
			tb.maxKeys = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TokenBucketOption {
	return func(tb *TokenBucket) {
		if now != nil {
			tb.now = now
		}
	}
}

// NewTokenBucket creates a limiter refilling rate tokens every interval.
// The burst defaults to rate and is never lower.
func NewTokenBucket(rate int, interval time.Duration, opts ...TokenBucketOption) (*TokenBucket, error) {
	if rate <= 0 {
		return nil, ErrInvalidLimit
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	tb := &TokenBucket{
		rate:     rate,
		interval: interval,
		burst:    rate,
		maxKeys:  DefaultMaxKeys,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.burst = max(tb.burst, tb.rate)
	tb.buckets = cache.NewLRUCache[string, *bucket](tb.maxKeys)

	return tb, nil
}

// Allow consumes one token for key.
func (tb *TokenBucket) Allow(_ context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := tb.now()
	b := tb.buckets.GetOrCreate(key, func() *bucket {
		return &bucket{tokens: float64(tb.burst), last: now}
	})

	b.mu.Lock()
	defer b.mu.Unlock()

	perToken := tb.interval / time.Duration(tb.rate)
	if elapsed := now.Sub(b.last); elapsed > 0 {
		b.tokens = min(float64(tb.burst), b.tokens+float64(elapsed)/float64(perToken))
		b.last = now
	}

	res := &Result{Limit: tb.burst}
	if b.tokens >= 1 {
		b.tokens--
		res.Allowed = true
	}
	res.Remaining = int(b.tokens)

	res.ResetAt = now
	if b.tokens < 1 {
		res.ResetAt = now.Add(time.Duration((1 - b.tokens) * float64(perToken)))
	}

	return res, nil
}

// Reset drops the bucket of key.
func (tb *TokenBucket) Reset(_ context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	tb.buckets.Remove(key)
	return nil
}

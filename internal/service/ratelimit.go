package service

import (
	"sync"
	"time"
)

// TokenBucket is an in-memory per-key rate limiter. It is safe for concurrent
// use. Stale buckets are dropped lazily during Allow calls.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64 // maximum tokens
	swept    time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a rate limiter allowing bursts of up to capacity
// calls per key, refilling at rate tokens per second.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	return &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		swept:    time.Now(),
	}
}

// Allow reports whether the given key may proceed, consuming one token.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.sweep(now)

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: now}
		tb.buckets[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*tb.rate, tb.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// sweep removes buckets idle long enough to have refilled completely. Runs at
// most once per minute.
func (tb *TokenBucket) sweep(now time.Time) {
	if now.Sub(tb.swept) < time.Minute {
		return
	}
	tb.swept = now

	idle := time.Duration(tb.capacity/tb.rate)*time.Second + time.Minute
	for key, b := range tb.buckets {
		if now.Sub(b.last) > idle {
			delete(tb.buckets, key)
		}
	}
}

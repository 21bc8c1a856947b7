// Package ratelimit counts requests per client in fixed time windows.
package ratelimit

import (
	"sync"
	"time"
)

const unknownKey = "unknown"

type bucket struct {
	count       int
	windowStart time.Time
}

// FixedWindow allows up to limit requests per key in each window. A key's
// window starts with its first request and restarts with the first request
// after it elapsed.
//
// Example:
//
//	limiter := ratelimit.NewFixedWindow(60, time.Minute)
//	if !limiter.Allow(clientIP, time.Now()) {
//	    return errTooManyRequests
//	}
type FixedWindow struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes one request of key at now and reports whether it fits in
// the current window. An empty key is counted as "unknown".
func (l *FixedWindow) Allow(key string, now time.Time) bool {
	if key == "" {
		key = unknownKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		l.buckets[key] = &bucket{count: 1, windowStart: now}
		return true
	}

	if now.Sub(b.windowStart) >= l.window {
		b.count = 1
		b.windowStart = now
		return true
	}

	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// Prune forgets keys whose window elapsed before now.
func (l *FixedWindow) Prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	pruned := 0
	for key, b := range l.buckets {
		if now.Sub(b.windowStart) >= l.window {
			delete(l.buckets, key)
			pruned++
		}
	}
	return pruned
}

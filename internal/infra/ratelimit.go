// Package infra holds hosting-side infrastructure shared by the transports.
package infra

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultCleanupInterval = 5 * time.Minute  // How often idle clients are swept
	DefaultIdleTimeout     = 10 * time.Minute // Minimum idle time before a client is forgotten
)

// visitor is one client's token bucket and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per client key (usually the remote IP).
// Each bucket holds up to rate tokens and refills rate tokens per interval.
type RateLimiter struct {
	rate     int
	interval time.Duration
	idle     time.Duration

	mu       sync.Mutex
	visitors map[string]*visitor

	// Graceful shutdown
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing rate requests per interval per client.
// A non-positive rate disables limiting.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	if interval <= 0 {
		interval = time.Minute
	}
	idle := 2 * interval
	if idle < DefaultIdleTimeout {
		idle = DefaultIdleTimeout
	}
	rl := &RateLimiter{
		rate:     rate,
		interval: interval,
		idle:     idle,
		visitors: make(map[string]*visitor),
		stopCh:   make(chan struct{}),
	}
	if rate > 0 {
		go rl.cleanupLoop()
	}
	return rl
}

// Allow reports whether a request from key may proceed, consuming one token.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.rate <= 0 {
		return true
	}
	now := time.Now()

	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		every := rl.interval / time.Duration(rl.rate)
		v = &visitor{limiter: rate.NewLimiter(rate.Every(every), rl.rate)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Close stops the background cleanup goroutine
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(DefaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case now := <-ticker.C:
			rl.cleanup(now)
		}
	}
}

// cleanup forgets clients idle longer than the idle timeout
func (rl *RateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, key)
		}
	}
}

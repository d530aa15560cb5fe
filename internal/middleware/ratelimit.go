package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter tracks request times per client inside a sliding window
type RateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether a request from ip fits inside the window
func (rl *RateLimiter) Allow(ip string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := rl.prune(ip, now)
	if len(recent) >= rl.limit {
		rl.seen[ip] = recent
		return false
	}
	rl.seen[ip] = append(recent, now)
	return true
}

// prune drops request times older than the window. Caller holds the lock.
func (rl *RateLimiter) prune(ip string, now time.Time) []time.Time {
	recent := rl.seen[ip][:0]
	for _, t := range rl.seen[ip] {
		if now.Sub(t) < rl.window {
			recent = append(recent, t)
		}
	}
	return recent
}

// cleanup drops idle clients so the map does not grow unbounded
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for ip := range rl.seen {
			if recent := rl.prune(ip, now); len(recent) == 0 {
				delete(rl.seen, ip)
			} else {
				rl.seen[ip] = recent
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit middleware limits requests per client IP
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(limit, window)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Store counts requests per key within fixed windows. Implementations must be
// safe for concurrent use. The in-memory MemoryStore is the only shipped
// implementation; a shared store can be dropped in without touching the
// middleware.
type Store interface {
	// Increment bumps the counter for key in the window containing now and
	// returns the new count plus the instant the window resets.
	Increment(key string, window time.Duration, now time.Time) (count int, reset time.Time)
}

type windowEntry struct {
	count int
	reset time.Time
}

// MemoryStore is a process-local fixed-window counter store
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

// NewMemoryStore creates a MemoryStore and starts a background sweep that
// drops stale windows every sweepInterval
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{entries: make(map[string]*windowEntry)}
	if sweepInterval > 0 {
		go s.sweep(sweepInterval)
	}
	return s
}

// Increment implements Store
func (s *MemoryStore) Increment(key string, window time.Duration, now time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.reset) {
		entry = &windowEntry{reset: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.reset
}

// sweep drops entries whose window has already ended. Live windows are never
// touched, even when they outlast the sweep interval.
func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for now := range ticker.C {
		s.mu.Lock()
		for key, entry := range s.entries {
			if !now.Before(entry.reset) {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}

// RateLimit returns gin middleware enforcing limit requests per window per
// client IP against the given store. Exceeding the limit yields 429 with
// Retry-After; every response carries X-RateLimit-* headers.
func RateLimit(store Store, limit int, window time.Duration, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		key := scope + ":" + clientIP(c)

		count, reset := store.Increment(key, window, now)
		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if count > limit {
			retryAfter := int64(reset.Sub(now).Seconds()) + 1
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

// clientIP resolves the caller's address, preferring proxy headers
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx > 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip := c.Request.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx > 0 {
		return ip[:idx]
	}
	return ip
}

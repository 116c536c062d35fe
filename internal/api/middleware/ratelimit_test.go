package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(store Store, limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(store, limit, window, "test"))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitAllowsWithinLimit(t *testing.T) {
	router := newRateLimitedRouter(NewMemoryStore(0), 3, time.Minute)

	for i := 0; i < 3; i++ {
		w := doRequest(router, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	router := newRateLimitedRouter(NewMemoryStore(0), 2, time.Minute)

	doRequest(router, nil)
	doRequest(router, nil)
	w := doRequest(router, nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimitKeysByClientIP(t *testing.T) {
	router := newRateLimitedRouter(NewMemoryStore(0), 1, time.Minute)

	w := doRequest(router, map[string]string{"X-Forwarded-For": "198.51.100.1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, map[string]string{"X-Forwarded-For": "198.51.100.1"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different caller has its own window
	w = doRequest(router, map[string]string{"X-Forwarded-For": "198.51.100.2"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitNewWindowAdmits(t *testing.T) {
	store := NewMemoryStore(0)
	window := 10 * time.Millisecond
	router := newRateLimitedRouter(store, 1, window)

	w := doRequest(router, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(window + 5*time.Millisecond)

	w = doRequest(router, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMemoryStoreFixedWindow(t *testing.T) {
	store := NewMemoryStore(0)
	base := time.Now()
	window := time.Minute

	count, reset := store.Increment("k", window, base)
	assert.Equal(t, 1, count)
	assert.Equal(t, base.Add(window), reset)

	count, _ = store.Increment("k", window, base.Add(time.Second))
	assert.Equal(t, 2, count)

	// After the window passes the counter starts over
	count, reset = store.Increment("k", window, base.Add(window))
	assert.Equal(t, 1, count)
	assert.Equal(t, base.Add(2*window), reset)
}

func TestMemoryStoreSweepKeepsLiveWindows(t *testing.T) {
	sweepInterval := 5 * time.Millisecond
	window := 250 * time.Millisecond
	store := NewMemoryStore(sweepInterval)
	router := newRateLimitedRouter(store, 2, window)

	doRequest(router, nil)
	doRequest(router, nil)
	w := doRequest(router, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Let several sweeps run inside the still-open window
	time.Sleep(4 * sweepInterval)

	w = doRequest(router, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestMemoryStoreSweepDropsExpiredWindows(t *testing.T) {
	sweepInterval := 5 * time.Millisecond
	store := NewMemoryStore(sweepInterval)

	store.Increment("stale", time.Millisecond, time.Now())
	time.Sleep(4 * sweepInterval)

	store.mu.Lock()
	_, ok := store.entries["stale"]
	store.mu.Unlock()
	assert.False(t, ok)
}

func TestClientIPResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "prefers first forwarded address",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"},
			remoteAddr: "127.0.0.1:1234",
			want:       "198.51.100.1",
		},
		{
			name:       "falls back to real ip",
			headers:    map[string]string{"X-Real-IP": "198.51.100.2"},
			remoteAddr: "127.0.0.1:1234",
			want:       "198.51.100.2",
		},
		{
			name:       "strips the port from remote addr",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(c))
		})
	}
}

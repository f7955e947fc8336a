package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter    *rate.Limiter
	lastActive time.Time
}

// LoginRateLimit applies a per-IP token bucket to credential endpoints.
// Stale limiters are dropped periodically.
func LoginRateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*ipLimiter)
	)

	go func() {
		for {
			time.Sleep(time.Hour)
			mu.Lock()
			now := time.Now()
			for ip, l := range limiters {
				if now.Sub(l.lastActive) > 2*time.Hour {
					delete(limiters, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{limiter: rate.NewLimiter(r, burst)}
			limiters[ip] = l
		}
		l.lastActive = time.Now()
		mu.Unlock()

		if !l.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

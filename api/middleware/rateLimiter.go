package middleware

import (
	"movie_catalog/pkg/response"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiters    = map[string]*ipLimiter{}
	limitersMux sync.Mutex
)

// RateLimiter keeps one token bucket per client ip. Stale entries get
// dropped on the way through, no background sweeper needed.
func RateLimiter(perSec int, burst int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()

		limitersMux.Lock()
		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{
				limiter: rate.NewLimiter(rate.Limit(perSec), burst),
			}
			limiters[ip] = l
		}
		l.lastSeen = time.Now()

		if len(limiters) > 10000 {
			for key, v := range limiters {
				if time.Since(v.lastSeen) > 10*time.Minute {
					delete(limiters, key)
				}
			}
		}
		limitersMux.Unlock()

		if !l.limiter.Allow() {
			return response.ResponseError(c, "Too many requests", fiber.StatusTooManyRequests)
		}
		return c.Next()
	}
}

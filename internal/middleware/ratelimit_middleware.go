package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/response"
)

var errTooManyRequests = apperror.New(
	"TOO_MANY_REQUESTS",
	"Too many requests, slow down",
	http.StatusTooManyRequests,
)

type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.limiters[key]
	if !ok {
		l = rate.NewLimiter(p.rps, p.burst)
		p.limiters[key] = l
	}
	return l
}

// RateLimitByUser throttles mutating endpoints per authenticated user,
// falling back to client IP for anonymous callers.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	pool := &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		if !pool.get(key).Allow() {
			response.FromError(c, errTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/portfolio-space/core/internal/pkg/response"
)

const (
	publicRateLimitMax    = 50
	publicRateLimitWindow = time.Second
)

// RateLimit throttles anonymous traffic on the public API with a Redis
// fixed-window counter per IP. Authenticated requests bypass it; the admin
// API carries its own per-operation budget.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("pf:rate_limit:%s:%d", ip, time.Now().Unix())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// fail open so a Redis outage does not take the site down
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, publicRateLimitWindow+time.Second)
		}

		if count > publicRateLimitMax {
			response.TooManyRequests(c, "1")
			return
		}

		c.Next()
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	anonRequestsPerSecond = 50
	rateLimitKeyPrefix    = "im:rate_limit"
)

// RateLimit throttles unauthenticated callers to a per-IP request budget per
// one-second bucket. Authenticated requests pass through, and any redis
// failure fails open rather than blocking traffic.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if CurrentUserID(c) != 0 || ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		bucket := time.Now().Unix()
		key := fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, ip, bucket)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			// Keep the key a bit past its bucket so late arrivals still count.
			rdb.PExpire(ctx, key, 2*time.Second)
		}

		if count > anonRequestsPerSecond {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":      0,
				"code":    http.StatusTooManyRequests,
				"message": "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}

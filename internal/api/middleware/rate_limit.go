package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roster-backend/internal/cache"
)

// RateLimit enforces a fixed-window per-client limit backed by Redis.
// A nil client or a Redis failure degrades to pass-through.
func RateLimit(cacheClient *cache.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := cacheClient.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "Too many requests, slow down",
				"data":    nil,
			})
			return
		}

		c.Next()
	}
}

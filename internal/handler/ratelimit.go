package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RateCounter counts hits per key within a fixed window.
type RateCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit caps requests per client IP for one route group. A
// counter failure lets the request through; limiting is protection,
// not a dependency.
func RateLimit(counter RateCounter, name string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()

		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			slog.Warn("rate limit counter unavailable, allowing request", "route", name, "error", err)
			c.Next()
			return
		}

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": fmt.Sprintf("You've reached your limit of %d requests per hour. Please try again later.", limit),
			})
			return
		}

		c.Next()
	}
}

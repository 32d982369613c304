package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell-blog-service/internal/metrics"
)

// Metrics records request counts and latency per route template, so
// /posts/42 and /posts/7 land in the same series.
func Metrics(provider metrics.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		provider.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
		provider.RecordHTTPRequestDuration(c.Request.Method, path, time.Since(start))
	}
}

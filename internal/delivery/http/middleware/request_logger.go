package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell-blog-service/internal/logger"
)

// RequestLogger logs one line per request after the handler chain finishes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("Handled request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

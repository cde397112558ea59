package middleware

import (
	"time"

	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with its status and latency.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if userID, ok := c.Get(UserIDKey); ok {
			fields = append(fields, "user_id", userID)
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("request failed", fields...)
		case c.Writer.Status() >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request", fields...)
		}
	}
}

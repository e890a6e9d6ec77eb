package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"treasury/internal/logger"
)

const requestIDKey = "requestID"

// RequestLogging logs one line per request with a request ID that is also
// echoed in the X-Request-ID header. The acting user is included once the
// session guard has resolved one.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if user, ok := CurrentUser(c); ok {
			fields = append(fields, "user_id", user.ID)
		}
		logger.Get().Infow("request", fields...)
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/pkg/logger"
)

// RequestLogger logs one line per request, tagged with the request id.
// Must run after RequestID.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

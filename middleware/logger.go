package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minseo-dev/event-marketing-backend/utils"
)

// RequestLogger logs every request with method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := utils.Logger.Info()
		if c.Writer.Status() >= 400 {
			event = utils.Logger.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger logs one line per request with method, path, status and
// latency, plus the screen-level error when a handler recorded one.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		if errMsg := c.GetString("error"); errMsg != "" {
			log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("latency", time.Since(start)),
				logger.String("request_id", c.GetString("request_id")),
				logger.String("error", errMsg),
			)
			return
		}

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString("request_id")),
		)
	}
}

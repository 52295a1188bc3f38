package middleware

import (
	"time"

	"github.com/code1iners/ce1pers/pkg/logger"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		// the query carries state and nonce values, so it is not logged
		fields := []logger.Field{
			{Key: "request_id", Value: c.GetString(RequestIDKey)},
			{Key: "path", Value: path},
			{Key: "route", Value: c.FullPath()},
			{Key: "method", Value: c.Request.Method},
			{Key: "status", Value: status},
			{Key: "latency", Value: latency},
		}
		if status >= 500 {
			l.Error(c.Request.Context(), "request completed", fields...)
			return
		}
		l.Info(c.Request.Context(), "request completed", fields...)
	}
}

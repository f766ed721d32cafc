package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// ZapLogger logs admin requests. Probe and scrape traffic is logged at debug.
func ZapLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}

		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			logger.Error("admin request failed", append(fields, zap.String("errors", errs.String()))...)
			return
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("admin request completed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("admin request completed", fields...)
		default:
			if _, quiet := quietPaths[path]; quiet {
				logger.Debug("admin request completed", fields...)
				return
			}
			logger.Info("admin request completed", fields...)
		}
	}
}

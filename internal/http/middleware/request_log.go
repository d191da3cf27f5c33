package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudadopt/cloudadopt-backend/internal/platform/ctxutil"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

// RequestLogger logs one line per request, leveled by status. Probe routes
// log at debug so they do not drown out real traffic.
func RequestLogger(log *logger.Logger, quietPaths ...string) gin.HandlerFunc {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		fields = append(fields, ctxutil.LogFields(c.Request.Context())...)
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		if _, ok := quiet[path]; ok && status < 400 {
			log.Debug("HTTP request", fields...)
			return
		}
		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

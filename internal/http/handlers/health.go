package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

// ReadinessCheck is one dependency probed by /readyz.
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthHandler struct {
	log     *logger.Logger
	checks  []ReadinessCheck
	timeout time.Duration
}

func NewHealthHandler(log *logger.Logger, checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{
		log:     log.With("handler", "HealthHandler"),
		checks:  checks,
		timeout: 2 * time.Second,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Ready pings every configured dependency. Any failure yields 503.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if check.Ping == nil {
			continue
		}
		if err := check.Ping(ctx); err != nil {
			h.log.Warn("readiness check failed", "check", check.Name, "error", err)
			results[check.Name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		results[check.Name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not_ready"
	}
	c.JSON(status, gin.H{"status": state, "checks": results})
}

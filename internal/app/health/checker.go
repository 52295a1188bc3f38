package health

import (
	"context"
	"net/http"
	"time"

	"github.com/code1iners/ce1pers/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Checker struct {
	cache  CacheChecker
	logger logger.Logger
}

type CacheChecker interface {
	Ping(ctx context.Context) error
}

// NewChecker builds a checker. cache may be nil when state is kept in memory.
func NewChecker(cache CacheChecker, logger logger.Logger) *Checker {
	return &Checker{
		cache:  cache,
		logger: logger,
	}
}

type Status struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

func (h *Checker) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, Status{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Checker) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = "unhealthy: " + err.Error()
			healthy = false
			h.logger.Warn(ctx, "readiness check failed",
				logger.Field{Key: "check", Value: "cache"},
				logger.Field{Key: "error", Value: err.Error()},
			)
		} else {
			checks["cache"] = "healthy"
		}
	}

	if healthy {
		c.JSON(http.StatusOK, Status{
			Status:    "ready",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    checks,
		})
	} else {
		c.JSON(http.StatusServiceUnavailable, Status{
			Status:    "not_ready",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    checks,
		})
	}
}

package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultTimeout bounds a readiness probe when the caller passes none.
const DefaultTimeout = 5 * time.Second

// ReadinessHandler answers 200 when every registered check passes and 503
// otherwise, with the per-component report as the body.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		report := registry.CheckAll(ctx)

		status := http.StatusOK
		if report.Status == StatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	}
}

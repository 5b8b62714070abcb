package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/internal/service"
)

const unmatchedRoute = "unmatched"

// RequestMetrics observes every request under its gin route template.
// Requests no route matched share one label so raw paths never reach the
// registry.
func RequestMetrics(metrics *service.MetricsService) gin.HandlerFunc {
	if metrics == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, routeLabel(c), c.Writer.Status(), time.Since(start))
	}
}

func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

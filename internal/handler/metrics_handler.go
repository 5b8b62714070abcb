package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/internal/service"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	db      Pinger
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, db Pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, db: db}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Summary returns aggregated request, database and cache figures.
func (h *MetricsHandler) Summary(c *gin.Context) {
	response.OK(c, "metrics snapshot", h.metrics.Snapshot())
}

// Health responds with a generic OK payload for liveness probes.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the database answers a ping.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Routes returns the probe routes, plus the metrics routes when enabled.
func (h *MetricsHandler) Routes() []Route {
	routes := []Route{
		{Method: "GET", Path: "/health", Handler: h.Health},
		{Method: "GET", Path: "/ready", Handler: h.Ready},
	}
	if h.metrics != nil {
		routes = append(routes,
			Route{Method: "GET", Path: "/metrics", Handler: h.Prometheus},
			Route{Method: "GET", Path: "/metrics/summary", Handler: h.Summary},
		)
	}
	return routes
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wlsd/calendar-api/internal/service"
	"github.com/wlsd/calendar-api/pkg/response"
)

type systemService interface {
	Health(ctx context.Context) error
	Init(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

// SystemHandler exposes health, schema and observability endpoints.
type SystemHandler struct {
	service systemService
	metrics *service.MetricsService
}

// NewSystemHandler builds a new handler.
func NewSystemHandler(svc systemService, metrics *service.MetricsService) *SystemHandler {
	return &SystemHandler{service: svc, metrics: metrics}
}

// Health godoc
// @Summary Probe database reachability
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.service.Health(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
}

// Init godoc
// @Summary Create the schema if absent
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /init [post]
func (h *SystemHandler) Init(c *gin.Context) {
	if err := h.service.Init(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"initialized": true})
}

// ClearAll godoc
// @Summary Wipe every data table
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /clear-all [delete]
func (h *SystemHandler) ClearAll(c *gin.Context) {
	if err := h.service.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"cleared": true})
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *SystemHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// MetricsSnapshot godoc
// @Summary Summarize request and cache metrics
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/metrics [get]
func (h *SystemHandler) MetricsSnapshot(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	response.JSON(c, http.StatusOK, h.metrics.Snapshot())
}

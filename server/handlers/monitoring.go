package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/server/monitoring"
	"github.com/janm-comcon/stdtext/server/services"
)

// MonitoringHandler serves health and error metrics endpoints.
type MonitoringHandler struct {
	monitoringService *services.MonitoringService
}

// NewMonitoringHandler creates the handler.
func NewMonitoringHandler(monitoringService *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{monitoringService: monitoringService}
}

// HandleHealth runs all component checks.
// @Summary Service health
// @Description Checks every component: the artifact snapshot, the spell engine mode and the polish client. Degraded components keep the service at 200; only an unhealthy component yields 503.
// @Tags monitoring
// @Produce json
// @Success 200 {object} monitoring.HealthCheckResult "Health report"
// @Failure 503 {object} monitoring.HealthCheckResult "A component is unhealthy"
// @Router /health [get]
func (h *MonitoringHandler) HandleHealth(c *gin.Context) {
	result := h.monitoringService.Health(c.Request.Context())
	SendJSONResponse(c, monitoring.StatusCode(result.Status), result)
}

// HandleErrorMetrics returns the collected error metrics.
// @Summary Error metrics
// @Description Snapshot of the central error collector: totals by type, HTTP code and endpoint, plus the most recent errors.
// @Tags monitoring
// @Produce json
// @Success 200 {object} map[string]interface{} "Error metrics"
// @Router /monitoring/errors [get]
func (h *MonitoringHandler) HandleErrorMetrics(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, h.monitoringService.ErrorMetrics())
}

// HandleRequestMetrics returns the collected request metrics.
// @Summary Request metrics
// @Description Request totals, success rate, latency average and p95, and per-endpoint counters since start.
// @Tags monitoring
// @Produce json
// @Success 200 {object} map[string]interface{} "Request metrics"
// @Router /monitoring/requests [get]
func (h *MonitoringHandler) HandleRequestMetrics(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, h.monitoringService.RequestMetrics())
}

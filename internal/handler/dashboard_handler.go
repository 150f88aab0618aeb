package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/taxi-dashboard-go/internal/models"
	"github.com/jengzang/taxi-dashboard-go/internal/service"
	"github.com/jengzang/taxi-dashboard-go/pkg/response"
)

// DashboardHandler handles HTTP requests for dashboard metrics and charts
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// bindFilter binds the shared filter query parameters. Returns false after
// writing the error response if binding failed.
func (h *DashboardHandler) bindFilter(c *gin.Context) (models.TripFilter, bool) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters: "+err.Error())
		return filter, false
	}
	return filter, true
}

func (h *DashboardHandler) respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		if errors.Is(err, service.ErrBadFilter) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, data)
}

// GetMetrics handles GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	metrics, err := h.dashboardService.Metrics(filter)
	h.respond(c, metrics, err)
}

// GetTopZones handles GET /api/v1/dashboard/zones/top
func (h *DashboardHandler) GetTopZones(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	zones, err := h.dashboardService.TopZones(filter, limit)
	h.respond(c, gin.H{"data": zones, "count": len(zones)}, err)
}

// GetHourlyFares handles GET /api/v1/dashboard/fares/hourly
func (h *DashboardHandler) GetHourlyFares(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	hours, err := h.dashboardService.HourlyFares(filter)
	h.respond(c, gin.H{"data": hours, "count": len(hours)}, err)
}

// GetPayments handles GET /api/v1/dashboard/payments
func (h *DashboardHandler) GetPayments(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	counts, err := h.dashboardService.PaymentBreakdown(filter)
	h.respond(c, gin.H{"data": counts, "count": len(counts)}, err)
}

// GetHeatmap handles GET /api/v1/dashboard/heatmap
func (h *DashboardHandler) GetHeatmap(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	heat, err := h.dashboardService.Heatmap(filter)
	h.respond(c, heat, err)
}

// GetDistances handles GET /api/v1/dashboard/distances
func (h *DashboardHandler) GetDistances(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	maxMiles, err := strconv.ParseFloat(c.DefaultQuery("maxMiles", "30"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid maxMiles parameter")
		return
	}
	bins, err := strconv.Atoi(c.DefaultQuery("bins", "40"))
	if err != nil {
		response.BadRequest(c, "Invalid bins parameter")
		return
	}

	hist, err := h.dashboardService.Distances(filter, maxMiles, bins)
	h.respond(c, hist, err)
}

// GetCoverage handles GET /api/v1/dashboard/coverage
func (h *DashboardHandler) GetCoverage(c *gin.Context) {
	response.Success(c, h.dashboardService.Coverage())
}

// GetFilterOptions handles GET /api/v1/dashboard/filters
func (h *DashboardHandler) GetFilterOptions(c *gin.Context) {
	response.Success(c, h.dashboardService.FilterOptions())
}

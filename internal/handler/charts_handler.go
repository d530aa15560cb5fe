package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taxiscope/taxi-backend-go/internal/models"
	"github.com/taxiscope/taxi-backend-go/internal/service"
	"github.com/taxiscope/taxi-backend-go/pkg/response"
)

// maxDistanceBins caps the histogram resolution a client may request
const maxDistanceBins = 200

// ChartsHandler handles HTTP requests for chart aggregates
type ChartsHandler struct {
	service *service.AnalyticsService
}

// NewChartsHandler creates a new charts handler
func NewChartsHandler(service *service.AnalyticsService) *ChartsHandler {
	return &ChartsHandler{service: service}
}

// filter resolves the shared filter parameters, writing the HTTP error
// itself when resolution fails
func (h *ChartsHandler) filter(c *gin.Context) (models.TripFilter, bool) {
	domain, err := h.service.FilterDomain()
	if err != nil {
		respondDatasetError(c, "Failed to load dataset", err)
		return models.TripFilter{}, false
	}

	f, err := bindTripFilter(c, domain)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return models.TripFilter{}, false
	}
	return f, true
}

// GetTopZones handles GET /api/v1/charts/top-zones
func (h *ChartsHandler) GetTopZones(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		response.BadRequest(c, "Invalid limit parameter", err)
		return
	}

	zones, err := h.service.TopZones(filter, limit)
	if err != nil {
		respondDatasetError(c, "Failed to get top zones", err)
		return
	}

	response.Success(c, gin.H{
		"data":  zones,
		"count": len(zones),
	})
}

// GetFareByHour handles GET /api/v1/charts/fare-by-hour
func (h *ChartsHandler) GetFareByHour(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	fares, err := h.service.FareByHour(filter)
	if err != nil {
		respondDatasetError(c, "Failed to get fare by hour", err)
		return
	}

	response.Success(c, gin.H{
		"data":  fares,
		"count": len(fares),
	})
}

// GetDistanceDistribution handles GET /api/v1/charts/distance-distribution
func (h *ChartsHandler) GetDistanceDistribution(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	binsStr := c.DefaultQuery("bins", "30")
	bins, err := strconv.Atoi(binsStr)
	if err != nil || bins < 1 || bins > maxDistanceBins {
		response.BadRequest(c, "Invalid bins parameter", err)
		return
	}

	histogram, err := h.service.DistanceDistribution(filter, bins)
	if err != nil {
		respondDatasetError(c, "Failed to get distance distribution", err)
		return
	}

	response.Success(c, gin.H{
		"data":  histogram,
		"count": len(histogram),
	})
}

// GetPaymentBreakdown handles GET /api/v1/charts/payment-breakdown
func (h *ChartsHandler) GetPaymentBreakdown(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	payments, err := h.service.PaymentBreakdown(filter)
	if err != nil {
		respondDatasetError(c, "Failed to get payment breakdown", err)
		return
	}

	response.Success(c, gin.H{
		"data":  payments,
		"count": len(payments),
	})
}

// GetDayHourMatrix handles GET /api/v1/charts/day-hour-matrix
func (h *ChartsHandler) GetDayHourMatrix(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	matrix, err := h.service.DayHourMatrix(filter)
	if err != nil {
		respondDatasetError(c, "Failed to get day-hour matrix", err)
		return
	}

	response.Success(c, matrix)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/taxiscope/taxi-backend-go/internal/models"
	"github.com/taxiscope/taxi-backend-go/internal/service"
	"github.com/taxiscope/taxi-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for the trip dataset
type TripHandler struct {
	service *service.AnalyticsService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.AnalyticsService) *TripHandler {
	return &TripHandler{service: service}
}

// ListTrips handles GET /api/v1/trips
func (h *TripHandler) ListTrips(c *gin.Context) {
	domain, err := h.service.FilterDomain()
	if err != nil {
		respondDatasetError(c, "Failed to load dataset", err)
		return
	}

	filter, err := bindTripFilter(c, domain)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	var pq models.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	page, err := h.service.ListTrips(filter, pq.Page, pq.PageSize)
	if err != nil {
		respondDatasetError(c, "Failed to list trips", err)
		return
	}

	response.Success(c, page)
}

// GetSummaryMetrics handles GET /api/v1/trips/metrics
func (h *TripHandler) GetSummaryMetrics(c *gin.Context) {
	domain, err := h.service.FilterDomain()
	if err != nil {
		respondDatasetError(c, "Failed to load dataset", err)
		return
	}

	filter, err := bindTripFilter(c, domain)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	metrics, err := h.service.SummaryMetrics(filter)
	if err != nil {
		respondDatasetError(c, "Failed to get trip metrics", err)
		return
	}

	response.Success(c, metrics)
}

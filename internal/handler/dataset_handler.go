package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/taxiscope/taxi-backend-go/internal/service"
	"github.com/taxiscope/taxi-backend-go/pkg/response"
)

// DatasetHandler handles HTTP requests for dataset state
type DatasetHandler struct {
	service *service.AnalyticsService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service *service.AnalyticsService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// GetSummary handles GET /api/v1/dataset/summary
func (h *DatasetHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.DatasetSummary()
	if err != nil {
		respondDatasetError(c, "Failed to get dataset summary", err)
		return
	}

	response.Success(c, summary)
}

// GetFilterDomain handles GET /api/v1/dataset/filters
func (h *DatasetHandler) GetFilterDomain(c *gin.Context) {
	domain, err := h.service.FilterDomain()
	if err != nil {
		respondDatasetError(c, "Failed to get filter domain", err)
		return
	}

	response.Success(c, domain)
}

package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taxiscope/taxi-backend-go/internal/dataset"
	"github.com/taxiscope/taxi-backend-go/internal/models"
	"github.com/taxiscope/taxi-backend-go/pkg/response"
)

// bindTripFilter resolves the filter parameters shared by the trip,
// metrics and chart endpoints against the dataset's filter domain.
// Absent parameters default to the full domain. A payments parameter
// that is present but empty selects nothing; that distinction is why the
// raw query is inspected instead of bound into a struct.
func bindTripFilter(c *gin.Context, domain models.FilterDomain) (models.TripFilter, error) {
	f := models.TripFilter{
		StartDate: domain.MinDate,
		EndDate:   domain.MaxDate,
		StartHour: domain.MinHour,
		EndHour:   domain.MaxHour,
		Payments:  domain.Payments,
	}

	if v, ok := c.GetQuery("startDate"); ok {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return models.TripFilter{}, fmt.Errorf("invalid startDate %q, want YYYY-MM-DD", v)
		}
		f.StartDate = v
	}
	if v, ok := c.GetQuery("endDate"); ok {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return models.TripFilter{}, fmt.Errorf("invalid endDate %q, want YYYY-MM-DD", v)
		}
		f.EndDate = v
	}

	if v, ok := c.GetQuery("startHour"); ok {
		h, err := strconv.Atoi(v)
		if err != nil || h < 0 || h > 23 {
			return models.TripFilter{}, fmt.Errorf("invalid startHour %q, want 0-23", v)
		}
		f.StartHour = h
	}
	if v, ok := c.GetQuery("endHour"); ok {
		h, err := strconv.Atoi(v)
		if err != nil || h < 0 || h > 23 {
			return models.TripFilter{}, fmt.Errorf("invalid endHour %q, want 0-23", v)
		}
		f.EndHour = h
	}

	if values, ok := c.GetQueryArray("payments"); ok {
		names := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				names = append(names, v)
			}
		}
		f.Payments = names
	}

	return f, nil
}

// respondDatasetError maps pipeline failures to HTTP statuses. A missing
// input file is reported as 503 with the expected path in the message so
// operators can see what to restore.
func respondDatasetError(c *gin.Context, message string, err error) {
	var notFound *dataset.DatasetNotFoundError
	if errors.As(err, &notFound) {
		response.ServiceUnavailable(c, message, err)
		return
	}
	response.InternalError(c, message, err)
}

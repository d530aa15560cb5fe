package service

import (
	"time"

	"github.com/taxiscope/taxi-backend-go/internal/analysis"
	"github.com/taxiscope/taxi-backend-go/internal/dataset"
	"github.com/taxiscope/taxi-backend-go/internal/models"
)

// AnalyticsService handles business logic for trip analytics. Every
// operation works on the memoized snapshot of the clean dataset; the
// snapshot is rebuilt by the store when the input files change.
type AnalyticsService struct {
	store *dataset.Store
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(store *dataset.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// DatasetSummary describes the current dataset snapshot
func (s *AnalyticsService) DatasetSummary() (*models.DatasetSummary, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	return &models.DatasetSummary{
		TripDataPath:   s.store.TripPath(),
		ZoneLookupPath: s.store.ZonePath(),
		RawRows:        snap.RawCount,
		CleanRows:      len(snap.Trips),
		DroppedRows:    snap.RawCount - len(snap.Trips),
		ZoneCount:      len(snap.Zones),
		MinDate:        snap.Domain.MinDate,
		MaxDate:        snap.Domain.MaxDate,
		BuiltAt:        snap.BuiltAt.Format(time.RFC3339),
		BuildTimeMs:    snap.BuildTime.Milliseconds(),
	}, nil
}

// FilterDomain returns the selectable filter ranges for the display layer
func (s *AnalyticsService) FilterDomain() (models.FilterDomain, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return models.FilterDomain{}, err
	}
	return snap.Domain, nil
}

// subset resolves the snapshot and applies the filter
func (s *AnalyticsService) subset(f models.TripFilter) ([]models.Trip, *dataset.Snapshot, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, nil, err
	}
	return analysis.Filter(snap.Trips, f), snap, nil
}

// ListTrips returns one page of the filtered clean dataset
func (s *AnalyticsService) ListTrips(f models.TripFilter, page, pageSize int) (*models.TripsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 100
	}
	if pageSize > 1000 {
		pageSize = 1000
	}

	subset, _, err := s.subset(f)
	if err != nil {
		return nil, err
	}

	total := len(subset)
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &models.TripsResponse{
		Data:       subset[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// SummaryMetrics computes the headline metrics for a filtered subset
func (s *AnalyticsService) SummaryMetrics(f models.TripFilter) (models.SummaryMetrics, error) {
	subset, _, err := s.subset(f)
	if err != nil {
		return models.SummaryMetrics{}, err
	}
	return analysis.Summarize(subset), nil
}

// TopZones ranks pickup zones by trip count for a filtered subset
func (s *AnalyticsService) TopZones(f models.TripFilter, limit int) ([]models.ZoneCount, error) {
	subset, snap, err := s.subset(f)
	if err != nil {
		return nil, err
	}
	return analysis.TopPickupZones(subset, snap.ZoneIndex, limit), nil
}

// FareByHour computes the average fare per pickup hour for a filtered subset
func (s *AnalyticsService) FareByHour(f models.TripFilter) ([]models.HourFare, error) {
	subset, _, err := s.subset(f)
	if err != nil {
		return nil, err
	}
	return analysis.AvgFareByHour(subset), nil
}

// DistanceDistribution bins trip distances for a filtered subset
func (s *AnalyticsService) DistanceDistribution(f models.TripFilter, bins int) ([]models.DistanceBin, error) {
	subset, _, err := s.subset(f)
	if err != nil {
		return nil, err
	}
	return analysis.DistanceHistogram(subset, bins), nil
}

// PaymentBreakdown counts trips per payment type for a filtered subset
func (s *AnalyticsService) PaymentBreakdown(f models.TripFilter) ([]models.PaymentCount, error) {
	subset, _, err := s.subset(f)
	if err != nil {
		return nil, err
	}
	return analysis.PaymentBreakdown(subset), nil
}

// DayHourMatrix counts trips by hour and weekday for a filtered subset
func (s *AnalyticsService) DayHourMatrix(f models.TripFilter) (models.DayHourMatrix, error) {
	subset, _, err := s.subset(f)
	if err != nil {
		return models.DayHourMatrix{}, err
	}
	return analysis.TripsByDayHour(subset), nil
}

package models

// SummaryMetrics represents the headline metrics for a trip subset.
// An empty subset yields zero values, never an error.
type SummaryMetrics struct {
	TotalTrips     int     `json:"total_trips"`
	AvgFare        float64 `json:"avg_fare"`
	TotalRevenue   float64 `json:"total_revenue"` // Sum of total_amount
	AvgDistance    float64 `json:"avg_distance"`  // Miles
	AvgDurationMin float64 `json:"avg_duration_min"`

	// Display strings formatted for the dashboard header
	TotalTripsText   string `json:"total_trips_text"`   // "1,234,567"
	AvgFareText      string `json:"avg_fare_text"`      // "$12.34"
	TotalRevenueText string `json:"total_revenue_text"` // "$1,234,567.89"
	AvgDistanceText  string `json:"avg_distance_text"`  // "3.21 mi"
	AvgDurationText  string `json:"avg_duration_text"`  // "14.5 min"
}

// DatasetSummary describes the current dataset snapshot
type DatasetSummary struct {
	TripDataPath   string `json:"trip_data_path"`
	ZoneLookupPath string `json:"zone_lookup_path"`

	RawRows     int `json:"raw_rows"`
	CleanRows   int `json:"clean_rows"`
	DroppedRows int `json:"dropped_rows"`
	ZoneCount   int `json:"zone_count"`

	MinDate string `json:"min_date"` // YYYY-MM-DD
	MaxDate string `json:"max_date"` // YYYY-MM-DD

	BuiltAt     string `json:"built_at"` // RFC3339
	BuildTimeMs int64  `json:"build_time_ms"`
}

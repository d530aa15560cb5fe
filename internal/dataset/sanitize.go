package dataset

import "github.com/taxiscope/taxi-backend-go/internal/models"

// Bounds defines the plausible range for each checked trip field.
// All comparisons are strict on both ends.
type Bounds struct {
	MinFare     float64
	MaxFare     float64
	MinDistance float64 // Miles
	MaxDistance float64 // Miles
	MinDuration float64 // Minutes
	MaxDuration float64 // Minutes
}

// DefaultBounds provides the standard plausibility bounds
var DefaultBounds = Bounds{
	MinFare:     0,
	MaxFare:     200,
	MinDistance: 0,
	MaxDistance: 50,
	MinDuration: 1,
	MaxDuration: 180,
}

// Keep reports whether a trip falls inside every bound. A NaN field
// never passes.
func (b Bounds) Keep(t models.Trip) bool {
	return t.FareAmount > b.MinFare && t.FareAmount < b.MaxFare &&
		t.TripDistance > b.MinDistance && t.TripDistance < b.MaxDistance &&
		t.DurationMin > b.MinDuration && t.DurationMin < b.MaxDuration
}

// Sanitize drops implausible records using the default bounds and
// renumbers the survivors contiguously from zero. Applying it to an
// already clean slice returns the same records.
func Sanitize(trips []models.Trip) []models.Trip {
	return SanitizeWith(trips, DefaultBounds)
}

// SanitizeWith is Sanitize with custom bounds
func SanitizeWith(trips []models.Trip, b Bounds) []models.Trip {
	clean := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if !b.Keep(t) {
			continue
		}
		t.Row = len(clean)
		clean = append(clean, t)
	}
	return clean
}

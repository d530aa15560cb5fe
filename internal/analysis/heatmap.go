package analysis

import "github.com/taxiscope/taxi-backend-go/internal/models"

// TripsByDayHour counts trips for every hour and day-of-week pair. The
// matrix is always dense, 24 hour rows by 7 day columns with Monday
// first, zero-filled where the subset has no trips.
func TripsByDayHour(trips []models.Trip) models.DayHourMatrix {
	m := models.DayHourMatrix{Days: models.DayNames}
	for _, t := range trips {
		m.Counts[t.PickupHour][t.PickupDay]++
	}
	return m
}

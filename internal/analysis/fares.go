package analysis

import "github.com/taxiscope/taxi-backend-go/internal/models"

// AvgFareByHour computes the mean fare for every pickup hour present in
// the subset, ascending by hour. Hours with no trips are omitted rather
// than reported as zero.
func AvgFareByHour(trips []models.Trip) []models.HourFare {
	var sums [24]float64
	var counts [24]int
	for _, t := range trips {
		sums[t.PickupHour] += t.FareAmount
		counts[t.PickupHour]++
	}

	out := make([]models.HourFare, 0, 24)
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		out = append(out, models.HourFare{
			Hour:    h,
			AvgFare: sums[h] / float64(counts[h]),
		})
	}
	return out
}

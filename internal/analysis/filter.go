package analysis

import "github.com/taxiscope/taxi-backend-go/internal/models"

// Filter returns the trips matching every condition of the filter:
// pickup date and hour inside the inclusive bounds and payment name in
// the selected set. The input is never modified and record order is
// preserved. An inverted range or an empty payment set yields an empty
// subset, never an error.
func Filter(trips []models.Trip, f models.TripFilter) []models.Trip {
	out := make([]models.Trip, 0, len(trips))

	if len(f.Payments) == 0 {
		return out
	}
	allowed := make(map[string]bool, len(f.Payments))
	for _, p := range f.Payments {
		allowed[p] = true
	}

	for _, t := range trips {
		if t.PickupDate < f.StartDate || t.PickupDate > f.EndDate {
			continue
		}
		if t.PickupHour < f.StartHour || t.PickupHour > f.EndHour {
			continue
		}
		if !allowed[t.PaymentName] {
			continue
		}
		out = append(out, t)
	}
	return out
}

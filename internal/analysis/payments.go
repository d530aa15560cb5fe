package analysis

import (
	"sort"

	"github.com/taxiscope/taxi-backend-go/internal/models"
)

// PaymentBreakdown counts trips per decoded payment name, descending by
// count. Equal counts are ordered by name so the output is stable.
func PaymentBreakdown(trips []models.Trip) []models.PaymentCount {
	counts := make(map[string]int)
	for _, t := range trips {
		counts[t.PaymentName]++
	}

	out := make([]models.PaymentCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.PaymentCount{Payment: name, Trips: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Trips != out[j].Trips {
			return out[i].Trips > out[j].Trips
		}
		return out[i].Payment < out[j].Payment
	})
	return out
}

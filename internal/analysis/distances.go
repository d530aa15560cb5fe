package analysis

import (
	"github.com/taxiscope/taxi-backend-go/internal/models"
	"github.com/taxiscope/taxi-backend-go/internal/stats"
)

// DefaultDistanceBins is the histogram resolution served by default
const DefaultDistanceBins = 30

// DistanceHistogram bins trip distances into equal-width bins spanning
// the observed range. The maximum value counts into the last bin. When
// every distance is equal a single bin holds the whole subset, and an
// empty subset yields an empty table.
func DistanceHistogram(trips []models.Trip, bins int) []models.DistanceBin {
	if bins <= 0 {
		bins = DefaultDistanceBins
	}
	if len(trips) == 0 {
		return []models.DistanceBin{}
	}

	values := make([]float64, len(trips))
	for i, t := range trips {
		values[i] = t.TripDistance
	}

	lo := stats.Min(values)
	hi := stats.Max(values)
	if lo == hi {
		return []models.DistanceBin{{Low: lo, High: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]models.DistanceBin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

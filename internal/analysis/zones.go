package analysis

import (
	"sort"

	"github.com/taxiscope/taxi-backend-go/internal/models"
)

// DefaultTopZones is the ranking length served when none is requested
const DefaultTopZones = 10

// TopPickupZones counts trips per pickup location and returns the
// busiest zones in descending order, enriched from the zone reference.
// Locations missing from the reference are dropped from the ranking;
// equal counts are ordered by LocationID so the output is stable.
func TopPickupZones(trips []models.Trip, zoneIndex map[int64]models.Zone, limit int) []models.ZoneCount {
	if limit <= 0 {
		limit = DefaultTopZones
	}

	counts := make(map[int64]int)
	for _, t := range trips {
		counts[t.PULocationID]++
	}

	ranking := make([]models.ZoneCount, 0, len(counts))
	for id, n := range counts {
		zone, ok := zoneIndex[id]
		if !ok {
			continue
		}
		ranking = append(ranking, models.ZoneCount{
			LocationID: id,
			Zone:       zone.Zone,
			Borough:    zone.Borough,
			Trips:      n,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Trips != ranking[j].Trips {
			return ranking[i].Trips > ranking[j].Trips
		}
		return ranking[i].LocationID < ranking[j].LocationID
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

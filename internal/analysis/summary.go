package analysis

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/taxiscope/taxi-backend-go/internal/models"
	"github.com/taxiscope/taxi-backend-go/internal/stats"
)

// printer renders grouped numbers for the dashboard display strings
var printer = message.NewPrinter(language.English)

// Summarize computes the headline metrics for a trip subset. Means and
// the revenue sum of an empty subset report zero; the trip count lets
// consumers tell empty data from genuine zeros.
func Summarize(trips []models.Trip) models.SummaryMetrics {
	fares := make([]float64, len(trips))
	totals := make([]float64, len(trips))
	distances := make([]float64, len(trips))
	durations := make([]float64, len(trips))
	for i, t := range trips {
		fares[i] = t.FareAmount
		totals[i] = t.TotalAmount
		distances[i] = t.TripDistance
		durations[i] = t.DurationMin
	}

	m := models.SummaryMetrics{
		TotalTrips:     len(trips),
		AvgFare:        stats.Mean(fares),
		TotalRevenue:   stats.Sum(totals),
		AvgDistance:    stats.Mean(distances),
		AvgDurationMin: stats.Mean(durations),
	}

	m.TotalTripsText = printer.Sprintf("%d", m.TotalTrips)
	m.AvgFareText = printer.Sprintf("$%.2f", m.AvgFare)
	m.TotalRevenueText = printer.Sprintf("$%.2f", m.TotalRevenue)
	m.AvgDistanceText = printer.Sprintf("%.2f mi", m.AvgDistance)
	m.AvgDurationText = printer.Sprintf("%.1f min", m.AvgDurationMin)
	return m
}

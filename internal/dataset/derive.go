package dataset

import (
	"math"
	"time"

	"github.com/taxiscope/taxi-backend-go/internal/models"
)

// Derive computes the analysis fields for every raw record. Calendar
// components come from the pickup timestamp as stored, without timezone
// conversion. The result preserves record order; Row holds the source
// position until Sanitize renumbers the survivors.
func Derive(raw []models.RawTrip) []models.Trip {
	trips := make([]models.Trip, len(raw))
	for i, r := range raw {
		t := models.Trip{
			Row:          i,
			PickupTime:   r.PickupTime,
			DropoffTime:  r.DropoffTime,
			FareAmount:   r.FareAmount,
			TipAmount:    r.TipAmount,
			TotalAmount:  r.TotalAmount,
			TripDistance: r.TripDistance,
			PULocationID: r.PULocationID,
			PaymentType:  r.PaymentType,
		}

		t.PickupHour = r.PickupTime.Hour()
		t.PickupDay = mondayFirst(r.PickupTime.Weekday())
		t.PickupDate = r.PickupTime.Format("2006-01-02")
		t.DurationMin = r.DropoffTime.Sub(r.PickupTime).Minutes()
		if r.FareAmount > 0 {
			t.TipPct = r.TipAmount / r.FareAmount * 100
		}
		if math.IsNaN(t.TipPct) {
			t.TipPct = 0
		}
		t.PaymentName = models.PaymentNameFor(r.PaymentType)

		trips[i] = t
	}
	return trips
}

// mondayFirst converts Go's Sunday-first weekday to a Monday-first index
func mondayFirst(d time.Weekday) int {
	return (int(d) + 6) % 7
}

package models

import "time"

// RawTrip represents one record of the yellow taxi trip file.
// Tags follow the TLC column names used in the parquet source.
type RawTrip struct {
	// Temporal info
	PickupTime  time.Time `parquet:"tpep_pickup_datetime"`
	DropoffTime time.Time `parquet:"tpep_dropoff_datetime"`

	// Monetary amounts (USD)
	FareAmount  float64 `parquet:"fare_amount"`
	TipAmount   float64 `parquet:"tip_amount"`
	TotalAmount float64 `parquet:"total_amount"`

	// Trip characteristics
	TripDistance float64 `parquet:"trip_distance"` // Miles
	PULocationID int64   `parquet:"PULocationID"`  // Pickup zone ID
	PaymentType  int64   `parquet:"payment_type"`
}

// Trip represents a cleaned trip record with derived analysis fields
type Trip struct {
	Row int `json:"row"` // Dense index, renumbered after cleaning

	// Retained source fields
	PickupTime   time.Time `json:"pickup_time"`
	DropoffTime  time.Time `json:"dropoff_time"`
	FareAmount   float64   `json:"fare_amount"`
	TipAmount    float64   `json:"tip_amount"`
	TotalAmount  float64   `json:"total_amount"`
	TripDistance float64   `json:"trip_distance"`
	PULocationID int64     `json:"pu_location_id"`
	PaymentType  int64     `json:"payment_type"`

	// Derived fields
	PickupHour  int     `json:"pickup_hour"`  // 0-23
	PickupDay   int     `json:"pickup_day"`   // 0=Monday .. 6=Sunday
	PickupDate  string  `json:"pickup_date"`  // YYYY-MM-DD
	DurationMin float64 `json:"duration_min"` // Fractional minutes
	TipPct      float64 `json:"tip_pct"`      // tip/fare*100, 0 when fare is not positive or the ratio is NaN
	PaymentName string  `json:"payment_name"` // Decoded payment_type
}

// PaymentType constants
const (
	PaymentCreditCard int64 = 1
	PaymentCash       int64 = 2
	PaymentNoCharge   int64 = 3
	PaymentDispute    int64 = 4
)

// PaymentUnknown is the display name for unmapped payment codes
const PaymentUnknown = "Unknown"

// paymentNames maps payment type codes to display names
var paymentNames = map[int64]string{
	PaymentCreditCard: "Credit Card",
	PaymentCash:       "Cash",
	PaymentNoCharge:   "No Charge",
	PaymentDispute:    "Dispute",
}

// PaymentNameFor decodes a payment type code into its display name
func PaymentNameFor(code int64) string {
	if name, ok := paymentNames[code]; ok {
		return name
	}
	return PaymentUnknown
}

// TripsResponse represents a paginated response of trips
type TripsResponse struct {
	Data       []Trip `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

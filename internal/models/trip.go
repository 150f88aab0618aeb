package models

import "time"

// RawTrip is one row of the raw trip-records CSV before any validation.
// All fields are kept as strings; the cleaner decides what parses.
type RawTrip struct {
	PickupTime     string
	DropoffTime    string
	PassengerCount string
	TripDistance   string
	PickupZoneID   string
	DropoffZoneID  string
	PaymentType    string
	FareAmount     string
	TotalAmount    string
}

// Trip is one cleaned trip with all derived fields computed. Enrichment
// fields (borough, zone name, payment label) are filled by the enricher and
// stay empty until then.
type Trip struct {
	PickupTime      time.Time `json:"pickup_time" db:"pickup_time"`
	DropoffTime     time.Time `json:"dropoff_time" db:"dropoff_time"`
	PassengerCount  int       `json:"passenger_count" db:"passenger_count"`
	TripDistance    float64   `json:"trip_distance" db:"trip_distance"`
	PickupZoneID    int       `json:"pickup_zone_id" db:"pickup_zone_id"`
	DropoffZoneID   int       `json:"dropoff_zone_id" db:"dropoff_zone_id"`
	PaymentType     int       `json:"payment_type" db:"payment_type"`
	FareAmount      float64   `json:"fare_amount" db:"fare_amount"`
	TotalAmount     float64   `json:"total_amount" db:"total_amount"`
	DurationMinutes float64   `json:"duration_minutes" db:"duration_minutes"`
	SpeedMPH        float64   `json:"speed_mph" db:"speed_mph"`
	PickupHour      int       `json:"pickup_hour" db:"pickup_hour"`
	PickupWeekday   string    `json:"pickup_weekday" db:"pickup_weekday"`
	PickupDate      time.Time `json:"pickup_date" db:"pickup_date"`

	// Enrichment (left join, may be empty for unmatched zone ids)
	PickupBorough  string `json:"pickup_borough,omitempty"`
	PickupZoneName string `json:"pickup_zone_name,omitempty"`
	PaymentLabel   string `json:"payment_label,omitempty"`
}

// ZoneInfo is one entry of the zone lookup table.
type ZoneInfo struct {
	ZoneID  int    `json:"zone_id"`
	Borough string `json:"borough"`
	Zone    string `json:"zone"`
}

// WeekdayOrder is the fixed Monday-first ordering used for grouping and the
// heatmap rows.
var WeekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayIndex returns the Monday-first index of a weekday name, or -1 for an
// unknown name.
func WeekdayIndex(day string) int {
	for i, d := range WeekdayOrder {
		if d == day {
			return i
		}
	}
	return -1
}

// PaymentLabelOther is the label for payment codes outside the known set.
const PaymentLabelOther = "Other"

// paymentLabels maps the TLC payment_type codes to display labels.
var paymentLabels = map[int]string{
	0: "Flex Fare",
	1: "Credit Card",
	2: "Cash",
	3: "No Charge",
	4: "Dispute",
	5: "Unknown",
	6: "Voided Trip",
}

// PaymentLabelFor returns the display label for a payment code, "Other" for
// unknown codes.
func PaymentLabelFor(code int) string {
	if label, ok := paymentLabels[code]; ok {
		return label
	}
	return PaymentLabelOther
}

// AllPaymentLabels returns the known payment labels in code order.
func AllPaymentLabels() []string {
	labels := make([]string, 0, len(paymentLabels))
	for code := 0; code <= 6; code++ {
		labels = append(labels, paymentLabels[code])
	}
	return labels
}

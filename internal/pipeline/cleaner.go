package pipeline

import (
	"math"
	"strconv"
	"time"

	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

// TimeLayout is the timestamp format used by the raw trip records.
const TimeLayout = "2006-01-02 15:04:05"

// Clean validates raw rows against the target month window and the range
// rules, computes the derived fields, and returns the surviving trips in
// input order plus the number of rows dropped. An empty result is valid.
func Clean(raws []models.RawTrip, monthStart time.Time) ([]models.Trip, int) {
	monthEnd := monthStart.AddDate(0, 1, 0)

	trips := make([]models.Trip, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		trip, ok := cleanRow(raw, monthStart, monthEnd)
		if !ok {
			dropped++
			continue
		}
		trips = append(trips, trip)
	}

	return trips, dropped
}

// cleanRow applies steps 1-4 of the cleaning contract to a single row.
// Any malformed critical field drops the row silently.
func cleanRow(raw models.RawTrip, monthStart, monthEnd time.Time) (models.Trip, bool) {
	// Critical columns: unparseable or missing means drop.
	pickup, err := time.ParseInLocation(TimeLayout, raw.PickupTime, time.UTC)
	if err != nil {
		return models.Trip{}, false
	}
	dropoff, err := time.ParseInLocation(TimeLayout, raw.DropoffTime, time.UTC)
	if err != nil {
		return models.Trip{}, false
	}
	pickupZone, err := strconv.Atoi(raw.PickupZoneID)
	if err != nil {
		return models.Trip{}, false
	}
	dropoffZone, err := strconv.Atoi(raw.DropoffZoneID)
	if err != nil {
		return models.Trip{}, false
	}
	fare, err := strconv.ParseFloat(raw.FareAmount, 64)
	if err != nil {
		return models.Trip{}, false
	}

	// Month window: pickup in [monthStart, monthStart+1month)
	if pickup.Before(monthStart) || !pickup.Before(monthEnd) {
		return models.Trip{}, false
	}

	// Non-critical numerics: a missing value fails the range rules below
	// rather than dropping the row outright.
	distance := lenientFloat(raw.TripDistance)
	passengers := lenientInt(raw.PassengerCount)
	paymentType := lenientInt(raw.PaymentType)
	total := lenientFloat(raw.TotalAmount)

	// Range rules
	if distance <= 0 || distance >= 50 {
		return models.Trip{}, false
	}
	if fare < 0 || fare > 500 {
		return models.Trip{}, false
	}
	if dropoff.Before(pickup) {
		return models.Trip{}, false
	}
	if passengers <= 0 {
		return models.Trip{}, false
	}

	duration := dropoff.Sub(pickup).Minutes()

	// speed = distance / hours, clamped to 0 for zero-duration trips and any
	// non-finite result
	speed := 0.0
	if hours := duration / 60; hours > 0 {
		speed = distance / hours
	}
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < 0 {
		speed = 0
	}

	return models.Trip{
		PickupTime:      pickup,
		DropoffTime:     dropoff,
		PassengerCount:  passengers,
		TripDistance:    distance,
		PickupZoneID:    pickupZone,
		DropoffZoneID:   dropoffZone,
		PaymentType:     paymentType,
		FareAmount:      fare,
		TotalAmount:     total,
		DurationMinutes: duration,
		SpeedMPH:        speed,
		PickupHour:      pickup.Hour(),
		PickupWeekday:   pickup.Weekday().String(),
		PickupDate:      time.Date(pickup.Year(), pickup.Month(), pickup.Day(), 0, 0, 0, 0, time.UTC),
	}, true
}

func lenientFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func lenientInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		// passenger_count arrives as "1.0" in some months
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return v
}

package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

func date(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

func sampleTrip(day, hour int, payment, zone, borough string, fare float64) models.Trip {
	weekday := date(day).Weekday().String()
	return models.Trip{
		PickupDate:      date(day),
		PickupHour:      hour,
		PickupWeekday:   weekday,
		PaymentLabel:    payment,
		PickupZoneName:  zone,
		PickupBorough:   borough,
		FareAmount:      fare,
		TotalAmount:     fare + 4,
		TripDistance:    2.5,
		DurationMinutes: 12,
	}
}

func sampleDataset() []models.Trip {
	return []models.Trip{
		sampleTrip(1, 8, "Credit Card", "Midtown Center", "Manhattan", 10),
		sampleTrip(2, 9, "Cash", "Astoria", "Queens", 12),
		sampleTrip(5, 18, "Credit Card", "Midtown Center", "Manhattan", 20),
		sampleTrip(10, 23, "Cash", "LaGuardia Airport", "Queens", 45),
		sampleTrip(31, 0, "Credit Card", "Upper East Side South", "Manhattan", 8),
	}
}

func fullFilter() Filter {
	return Filter{
		StartDate: date(1),
		EndDate:   date(31),
		StartHour: 0,
		EndHour:   23,
		Payments:  []string{"Credit Card", "Cash"},
	}
}

func TestApplyFullRangeReturnsEverything(t *testing.T) {
	trips := sampleDataset()
	view := Apply(trips, fullFilter())
	assert.Equal(t, trips, view.Trips)
}

func TestApplyDateRangeInclusive(t *testing.T) {
	f := fullFilter()
	f.StartDate = date(2)
	f.EndDate = date(10)

	view := Apply(sampleDataset(), f)
	require.Len(t, view.Trips, 3)
	assert.Equal(t, date(2), view.Trips[0].PickupDate)
	assert.Equal(t, date(10), view.Trips[2].PickupDate)
}

func TestApplyHourRangeInclusive(t *testing.T) {
	f := fullFilter()
	f.StartHour = 9
	f.EndHour = 18

	view := Apply(sampleDataset(), f)
	require.Len(t, view.Trips, 2)
	assert.Equal(t, 9, view.Trips[0].PickupHour)
	assert.Equal(t, 18, view.Trips[1].PickupHour)
}

func TestApplyPaymentSet(t *testing.T) {
	f := fullFilter()
	f.Payments = []string{"Cash"}

	view := Apply(sampleDataset(), f)
	require.Len(t, view.Trips, 2)
	for _, trip := range view.Trips {
		assert.Equal(t, "Cash", trip.PaymentLabel)
	}
}

func TestApplyEmptyPaymentSetYieldsEmptyView(t *testing.T) {
	f := fullFilter()
	f.Payments = nil

	view := Apply(sampleDataset(), f)
	assert.Empty(t, view.Trips)
}

func TestApplyPreservesOrderAndSource(t *testing.T) {
	trips := sampleDataset()
	original := make([]models.Trip, len(trips))
	copy(original, trips)

	f := fullFilter()
	f.Payments = []string{"Credit Card"}
	view := Apply(trips, f)

	// Source untouched
	assert.Equal(t, original, trips)

	// Matches keep their relative order
	require.Len(t, view.Trips, 3)
	assert.True(t, view.Trips[0].PickupDate.Before(view.Trips[1].PickupDate))
	assert.True(t, view.Trips[1].PickupDate.Before(view.Trips[2].PickupDate))
}

func TestFilterKeyIgnoresPaymentOrder(t *testing.T) {
	a := fullFilter()
	b := fullFilter()
	b.Payments = []string{"Cash", "Credit Card"}

	assert.Equal(t, a.Key(), b.Key())
}

func TestFilterKeyDistinguishesParameters(t *testing.T) {
	a := fullFilter()
	b := fullFilter()
	b.EndHour = 12

	assert.NotEqual(t, a.Key(), b.Key())
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

func serviceTrip(day, hour int, payment, zone, borough string, fare float64) models.Trip {
	date := time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	return models.Trip{
		PickupDate:      date,
		PickupHour:      hour,
		PickupWeekday:   date.Weekday().String(),
		PaymentLabel:    payment,
		PickupZoneName:  zone,
		PickupBorough:   borough,
		FareAmount:      fare,
		TotalAmount:     fare + 5,
		TripDistance:    3,
		DurationMinutes: 10,
	}
}

func testService() *DashboardService {
	return NewDashboardService([]models.Trip{
		serviceTrip(1, 8, "Credit Card", "Midtown Center", "Manhattan", 10),
		serviceTrip(5, 18, "Cash", "Astoria", "Queens", 14),
		serviceTrip(31, 23, "Credit Card", "Midtown Center", "Manhattan", 30),
	})
}

func TestMetricsDefaultsCoverWholeDataset(t *testing.T) {
	s := testService()

	m, err := s.Metrics(models.TripFilter{StartHour: 0, EndHour: 23})
	require.NoError(t, err)

	assert.Equal(t, 3, m.TripCount)
	assert.False(t, m.Empty)
	assert.InDelta(t, 18.0, m.MeanFare, 1e-9)
	assert.InDelta(t, 69.0, m.TotalRevenue, 1e-9)
}

func TestMetricsEmptyPaymentSelection(t *testing.T) {
	s := testService()

	// Payments sent but empty: deliberate empty selection
	m, err := s.Metrics(models.TripFilter{StartHour: 0, EndHour: 23, Payments: []string{""}})
	require.NoError(t, err)

	assert.True(t, m.Empty)
	assert.Equal(t, 0, m.TripCount)
}

func TestResolveRejectsBadFilters(t *testing.T) {
	s := testService()

	_, err := s.Metrics(models.TripFilter{StartDate: "garbage", StartHour: 0, EndHour: 23})
	assert.ErrorIs(t, err, ErrBadFilter)

	_, err = s.Metrics(models.TripFilter{StartHour: 5, EndHour: 3})
	assert.ErrorIs(t, err, ErrBadFilter)

	_, err = s.Metrics(models.TripFilter{StartHour: 0, EndHour: 24})
	assert.ErrorIs(t, err, ErrBadFilter)

	_, err = s.Metrics(models.TripFilter{StartDate: "2024-01-20", EndDate: "2024-01-10", StartHour: 0, EndHour: 23})
	assert.ErrorIs(t, err, ErrBadFilter)
}

func TestCommaSeparatedPayments(t *testing.T) {
	s := testService()

	m, err := s.Metrics(models.TripFilter{StartHour: 0, EndHour: 23, Payments: []string{"Cash,Credit Card"}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.TripCount)
}

func TestAggregatesAreMemoized(t *testing.T) {
	s := testService()
	filter := models.TripFilter{StartHour: 0, EndHour: 23}

	first, err := s.TopZones(filter, 10)
	require.NoError(t, err)
	size := s.CacheSize()
	assert.Greater(t, size, 0)

	second, err := s.TopZones(filter, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, size, s.CacheSize())

	s.ClearCache()
	assert.Equal(t, 0, s.CacheSize())

	third, err := s.TopZones(filter, 10)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestHourlyFaresRespectsHourRange(t *testing.T) {
	s := testService()

	hours, err := s.HourlyFares(models.TripFilter{StartHour: 8, EndHour: 18})
	require.NoError(t, err)
	require.Len(t, hours, 11)
	assert.Equal(t, 8, hours[0].Hour)
	assert.Equal(t, 18, hours[10].Hour)
}

func TestHeatmapAlwaysFullGrid(t *testing.T) {
	s := testService()

	heat, err := s.Heatmap(models.TripFilter{StartHour: 0, EndHour: 23, Payments: []string{""}})
	require.NoError(t, err)
	require.Len(t, heat.Cells, 7)
	for _, row := range heat.Cells {
		assert.Len(t, row, 24)
	}
	assert.Equal(t, 0, heat.Total)
}

func TestDistancesValidation(t *testing.T) {
	s := testService()

	_, err := s.Distances(models.TripFilter{StartHour: 0, EndHour: 23}, 30, 500)
	assert.ErrorIs(t, err, ErrBadFilter)

	hist, err := s.Distances(models.TripFilter{StartHour: 0, EndHour: 23}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, hist.MaxMiles)
	assert.Len(t, hist.Bins, 40)
}

func TestCoverageAndFilterOptions(t *testing.T) {
	s := testService()

	c := s.Coverage()
	assert.Equal(t, "2024-01-01", c.StartDate)
	assert.Equal(t, "2024-01-31", c.EndDate)
	assert.Equal(t, 3, c.TripCount)

	o := s.FilterOptions()
	assert.Equal(t, 0, o.MinHour)
	assert.Equal(t, 23, o.MaxHour)
	assert.Equal(t, []string{"Cash", "Credit Card"}, o.Payments)
}

func TestEmptyDatasetService(t *testing.T) {
	s := NewDashboardService(nil)

	m, err := s.Metrics(models.TripFilter{StartHour: 0, EndHour: 23})
	require.NoError(t, err)
	assert.True(t, m.Empty)

	c := s.Coverage()
	assert.Equal(t, 0, c.TripCount)
	assert.Equal(t, "", c.StartDate)
}

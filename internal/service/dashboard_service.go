package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jengzang/taxi-dashboard-go/internal/analysis"
	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

const dateLayout = "2006-01-02"

// ErrBadFilter marks filter validation failures so handlers can answer 400
// instead of 500.
var ErrBadFilter = errors.New("invalid filter")

// DashboardService answers filtered dashboard queries over the in-memory
// enriched dataset. The dataset never changes after construction, so every
// view and aggregate is memoized by its filter parameters.
type DashboardService struct {
	trips   []models.Trip
	minDate time.Time
	maxDate time.Time
	labels  []string // distinct payment labels present, sorted
	cache   *analysis.Cache
}

// NewDashboardService creates a dashboard service over an enriched dataset.
func NewDashboardService(trips []models.Trip) *DashboardService {
	s := &DashboardService{
		trips: trips,
		cache: analysis.NewCache(),
	}

	seen := make(map[string]struct{})
	for _, t := range trips {
		if s.minDate.IsZero() || t.PickupDate.Before(s.minDate) {
			s.minDate = t.PickupDate
		}
		if t.PickupDate.After(s.maxDate) {
			s.maxDate = t.PickupDate
		}
		if _, ok := seen[t.PaymentLabel]; !ok {
			seen[t.PaymentLabel] = struct{}{}
			s.labels = append(s.labels, t.PaymentLabel)
		}
	}
	sort.Strings(s.labels)

	return s
}

// resolve turns request-level filter params into a validated analysis.Filter,
// filling defaults that cover the whole dataset.
func (s *DashboardService) resolve(f models.TripFilter) (analysis.Filter, error) {
	start, end := s.minDate, s.maxDate

	var err error
	if f.StartDate != "" {
		start, err = time.ParseInLocation(dateLayout, f.StartDate, time.UTC)
		if err != nil {
			return analysis.Filter{}, fmt.Errorf("%w: bad startDate %q", ErrBadFilter, f.StartDate)
		}
	}
	if f.EndDate != "" {
		end, err = time.ParseInLocation(dateLayout, f.EndDate, time.UTC)
		if err != nil {
			return analysis.Filter{}, fmt.Errorf("%w: bad endDate %q", ErrBadFilter, f.EndDate)
		}
	}
	if end.Before(start) {
		return analysis.Filter{}, fmt.Errorf("%w: endDate before startDate", ErrBadFilter)
	}

	if f.StartHour < 0 || f.EndHour > 23 || f.StartHour > f.EndHour {
		return analysis.Filter{}, fmt.Errorf("%w: hour range must satisfy 0 <= start <= end <= 23", ErrBadFilter)
	}

	// nil means the payments param was not sent: default to every label in
	// the dataset. A present-but-empty selection stays empty and yields an
	// empty view.
	payments := f.Payments
	if payments == nil {
		payments = s.labels
	} else {
		payments = splitPayments(payments)
	}

	return analysis.Filter{
		StartDate: start,
		EndDate:   end,
		StartHour: f.StartHour,
		EndHour:   f.EndHour,
		Payments:  payments,
	}, nil
}

// splitPayments expands comma-separated values and drops empty entries, so
// both ?payments=Cash&payments=Credit+Card and ?payments=Cash,Credit+Card
// work. The result is never nil.
func splitPayments(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// view returns the memoized filtered view for a resolved filter.
func (s *DashboardService) view(f analysis.Filter) analysis.View {
	key := "view|" + f.Key()
	if v, ok := s.cache.Get(key); ok {
		return v.(analysis.View)
	}
	v := analysis.Apply(s.trips, f)
	s.cache.Set(key, v)
	return v
}

// Metrics returns the headline metrics for the filtered view.
func (s *DashboardService) Metrics(tf models.TripFilter) (models.Metrics, error) {
	f, err := s.resolve(tf)
	if err != nil {
		return models.Metrics{}, err
	}

	key := "metrics|" + f.Key()
	if v, ok := s.cache.Get(key); ok {
		return v.(models.Metrics), nil
	}
	m := analysis.Metrics(s.view(f))
	s.cache.Set(key, m)
	return m, nil
}

// TopZones returns the limit busiest pickup zones for the filtered view.
func (s *DashboardService) TopZones(tf models.TripFilter, limit int) ([]models.ZoneCount, error) {
	if limit <= 0 {
		limit = 10
	}

	f, err := s.resolve(tf)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("topzones|%d|%s", limit, f.Key())
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.ZoneCount), nil
	}
	zones := analysis.TopZones(s.view(f), limit)
	s.cache.Set(key, zones)
	return zones, nil
}

// HourlyFares returns the mean fare per hour for the filtered view.
func (s *DashboardService) HourlyFares(tf models.TripFilter) ([]models.HourlyFare, error) {
	f, err := s.resolve(tf)
	if err != nil {
		return nil, err
	}

	key := "hourly|" + f.Key()
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.HourlyFare), nil
	}
	hours := analysis.HourlyMeanFare(s.view(f))
	s.cache.Set(key, hours)
	return hours, nil
}

// PaymentBreakdown returns trip counts per payment label for the filtered view.
func (s *DashboardService) PaymentBreakdown(tf models.TripFilter) ([]models.PaymentCount, error) {
	f, err := s.resolve(tf)
	if err != nil {
		return nil, err
	}

	key := "payments|" + f.Key()
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.PaymentCount), nil
	}
	counts := analysis.PaymentCounts(s.view(f))
	s.cache.Set(key, counts)
	return counts, nil
}

// Heatmap returns the weekday-by-hour trip count matrix for the filtered view.
func (s *DashboardService) Heatmap(tf models.TripFilter) (models.Heatmap, error) {
	f, err := s.resolve(tf)
	if err != nil {
		return models.Heatmap{}, err
	}

	key := "heatmap|" + f.Key()
	if v, ok := s.cache.Get(key); ok {
		return v.(models.Heatmap), nil
	}
	heat := analysis.WeekdayHourHeat(s.view(f))
	s.cache.Set(key, heat)
	return heat, nil
}

// Distances returns the binned distance distribution for the filtered view.
func (s *DashboardService) Distances(tf models.TripFilter, maxMiles float64, bins int) (models.DistanceHistogram, error) {
	if maxMiles <= 0 {
		maxMiles = 30
	}
	if bins <= 0 {
		bins = 40
	}
	if bins > 200 {
		return models.DistanceHistogram{}, fmt.Errorf("%w: bins must be at most 200", ErrBadFilter)
	}

	f, err := s.resolve(tf)
	if err != nil {
		return models.DistanceHistogram{}, err
	}

	key := fmt.Sprintf("distances|%v|%d|%s", maxMiles, bins, f.Key())
	if v, ok := s.cache.Get(key); ok {
		return v.(models.DistanceHistogram), nil
	}
	hist := analysis.DistanceHistogram(s.view(f), maxMiles, bins)
	s.cache.Set(key, hist)
	return hist, nil
}

// Coverage describes the loaded dataset.
func (s *DashboardService) Coverage() models.Coverage {
	c := models.Coverage{TripCount: len(s.trips)}
	if len(s.trips) > 0 {
		c.StartDate = s.minDate.Format(dateLayout)
		c.EndDate = s.maxDate.Format(dateLayout)
	}
	return c
}

// FilterOptions returns the bounds a frontend needs for its filter widgets.
func (s *DashboardService) FilterOptions() models.FilterOptions {
	o := models.FilterOptions{
		MinHour:  0,
		MaxHour:  23,
		Payments: s.labels,
	}
	if len(s.trips) > 0 {
		o.StartDate = s.minDate.Format(dateLayout)
		o.EndDate = s.maxDate.Format(dateLayout)
	}
	return o
}

// ClearCache drops all memoized views and aggregates.
func (s *DashboardService) ClearCache() {
	s.cache.Clear()
}

// CacheSize returns the number of memoized entries.
func (s *DashboardService) CacheSize() int {
	return s.cache.Len()
}

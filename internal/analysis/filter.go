package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jengzang/taxi-dashboard-go/internal/models"
)

// Filter is the resolved, validated filter state a view is built from.
// StartDate/EndDate are calendar dates (midnight UTC), both inclusive.
// Payments is the exact label set to match; empty means match nothing.
type Filter struct {
	StartDate time.Time
	EndDate   time.Time
	StartHour int
	EndHour   int
	Payments  []string
}

// Key returns a canonical string for the filter parameters, used as the
// memoization key. Payment order does not affect the key.
func (f Filter) Key() string {
	payments := make([]string, len(f.Payments))
	copy(payments, f.Payments)
	sort.Strings(payments)

	return fmt.Sprintf("%s|%s|%d|%d|%s",
		f.StartDate.Format("2006-01-02"),
		f.EndDate.Format("2006-01-02"),
		f.StartHour,
		f.EndHour,
		strings.Join(payments, ","),
	)
}

// View is the subset of the dataset matching a filter, in source order.
type View struct {
	Filter Filter
	Trips  []models.Trip
}

// Apply selects the trips matching every predicate of the filter: pickup
// date within [StartDate, EndDate], pickup hour within [StartHour, EndHour],
// payment label in the payment set. The source slice is never modified and
// matching rows keep their original relative order.
func Apply(trips []models.Trip, f Filter) View {
	payments := make(map[string]struct{}, len(f.Payments))
	for _, p := range f.Payments {
		payments[p] = struct{}{}
	}

	matched := make([]models.Trip, 0)
	for _, t := range trips {
		if t.PickupDate.Before(f.StartDate) || t.PickupDate.After(f.EndDate) {
			continue
		}
		if t.PickupHour < f.StartHour || t.PickupHour > f.EndHour {
			continue
		}
		if _, ok := payments[t.PaymentLabel]; !ok {
			continue
		}
		matched = append(matched, t)
	}

	return View{Filter: f, Trips: matched}
}

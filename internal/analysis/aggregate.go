package analysis

import (
	"sort"

	"github.com/jengzang/taxi-dashboard-go/internal/models"
	"github.com/jengzang/taxi-dashboard-go/internal/stats"
)

// Metrics computes the five headline metrics over a view. On an empty view
// every value is zero and Empty is set; means are never NaN.
func Metrics(v View) models.Metrics {
	if len(v.Trips) == 0 {
		return models.Metrics{Empty: true}
	}

	fares := make([]float64, len(v.Trips))
	totals := make([]float64, len(v.Trips))
	distances := make([]float64, len(v.Trips))
	durations := make([]float64, len(v.Trips))
	for i, t := range v.Trips {
		fares[i] = t.FareAmount
		totals[i] = t.TotalAmount
		distances[i] = t.TripDistance
		durations[i] = t.DurationMinutes
	}

	return models.Metrics{
		TripCount:    len(v.Trips),
		MeanFare:     stats.Mean(fares),
		TotalRevenue: stats.Sum(totals),
		MeanDistance: stats.Mean(distances),
		MeanDuration: stats.Mean(durations),
	}
}

// TopZones groups the view by (zone name, borough), counts trips and returns
// the n largest groups, ties keeping first-seen order. Trips whose zone id
// did not match the lookup have no zone name and are not grouped.
func TopZones(v View, n int) []models.ZoneCount {
	type zoneKey struct {
		zone    string
		borough string
	}

	counts := make(map[zoneKey]int)
	var order []zoneKey
	for _, t := range v.Trips {
		if t.PickupZoneName == "" {
			continue
		}
		k := zoneKey{zone: t.PickupZoneName, borough: t.PickupBorough}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}
	top := make([]models.ZoneCount, 0, n)
	for _, k := range order[:n] {
		top = append(top, models.ZoneCount{
			Zone:      k.zone,
			Borough:   k.borough,
			TripCount: counts[k],
		})
	}
	return top
}

// HourlyMeanFare computes the mean fare per pickup hour over the view's hour
// range, ascending by hour. Hours with no trips appear with a zero mean. An
// empty view yields an empty slice.
func HourlyMeanFare(v View) []models.HourlyFare {
	if len(v.Trips) == 0 {
		return []models.HourlyFare{}
	}

	var sums [24]float64
	var counts [24]int
	for _, t := range v.Trips {
		sums[t.PickupHour] += t.FareAmount
		counts[t.PickupHour]++
	}

	hours := make([]models.HourlyFare, 0, v.Filter.EndHour-v.Filter.StartHour+1)
	for h := v.Filter.StartHour; h <= v.Filter.EndHour; h++ {
		mean := 0.0
		if counts[h] > 0 {
			mean = sums[h] / float64(counts[h])
		}
		hours = append(hours, models.HourlyFare{
			Hour:      h,
			MeanFare:  mean,
			TripCount: counts[h],
		})
	}
	return hours
}

// PaymentCounts counts trips per payment label, descending by count with
// first-seen order on ties.
func PaymentCounts(v View) []models.PaymentCount {
	counts := make(map[string]int)
	var order []string
	for _, t := range v.Trips {
		if _, seen := counts[t.PaymentLabel]; !seen {
			order = append(order, t.PaymentLabel)
		}
		counts[t.PaymentLabel]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := make([]models.PaymentCount, 0, len(order))
	for _, label := range order {
		out = append(out, models.PaymentCount{Payment: label, TripCount: counts[label]})
	}
	return out
}

// WeekdayHourHeat counts trips per (weekday, hour). The result always has all
// 7x24 cells, Monday first, zero-filled for missing combinations.
func WeekdayHourHeat(v View) models.Heatmap {
	cells := make([][]int, len(models.WeekdayOrder))
	for i := range cells {
		cells[i] = make([]int, 24)
	}

	for _, t := range v.Trips {
		day := models.WeekdayIndex(t.PickupWeekday)
		if day < 0 || t.PickupHour < 0 || t.PickupHour > 23 {
			continue
		}
		cells[day][t.PickupHour]++
	}

	hours := make([]int, 24)
	for h := range hours {
		hours[h] = h
	}

	return models.Heatmap{
		Days:  models.WeekdayOrder,
		Hours: hours,
		Cells: cells,
		Total: len(v.Trips),
	}
}

// DistanceHistogram bins trip distances into bins equal-width buckets over
// [0, maxMiles]. Distances above maxMiles are excluded; maxMiles itself falls
// in the last bin. Bins are zero-filled on an empty view.
func DistanceHistogram(v View, maxMiles float64, bins int) models.DistanceHistogram {
	width := maxMiles / float64(bins)
	counts := make([]int, bins)

	for _, t := range v.Trips {
		d := t.TripDistance
		if d < 0 || d > maxMiles {
			continue
		}
		i := int(d / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	out := models.DistanceHistogram{
		MaxMiles: maxMiles,
		Bins:     make([]models.HistogramBin, bins),
	}
	for i, c := range counts {
		out.Bins[i] = models.HistogramBin{
			Low:   float64(i) * width,
			High:  float64(i+1) * width,
			Count: c,
		}
	}
	return out
}

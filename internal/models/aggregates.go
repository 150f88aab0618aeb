package models

// Metrics holds the headline numbers shown above the charts. All values are
// zero (never NaN) when Empty is true.
type Metrics struct {
	TripCount    int     `json:"trip_count"`
	MeanFare     float64 `json:"mean_fare"`
	TotalRevenue float64 `json:"total_revenue"`
	MeanDistance float64 `json:"mean_distance"`
	MeanDuration float64 `json:"mean_duration"`
	Empty        bool    `json:"empty"`
}

// ZoneCount is one row of the top-zones ranking.
type ZoneCount struct {
	Zone      string `json:"zone"`
	Borough   string `json:"borough"`
	TripCount int    `json:"trip_count"`
}

// HourlyFare is the mean fare for one pickup hour.
type HourlyFare struct {
	Hour      int     `json:"hour"`
	MeanFare  float64 `json:"mean_fare"`
	TripCount int     `json:"trip_count"`
}

// PaymentCount is one row of the payment type breakdown.
type PaymentCount struct {
	Payment   string `json:"payment"`
	TripCount int    `json:"trip_count"`
}

// Heatmap is the weekday-by-hour trip count matrix. Cells is always 7 rows
// (Monday first) of 24 columns, zero-filled for missing combinations.
type Heatmap struct {
	Days  []string `json:"days"`
	Hours []int    `json:"hours"`
	Cells [][]int  `json:"cells"`
	Total int      `json:"total"`
}

// HistogramBin is one bin of the distance histogram. Range is [Low, High),
// except the last bin which is inclusive of High.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// DistanceHistogram is the binned distribution of trip distances.
type DistanceHistogram struct {
	MaxMiles float64        `json:"max_miles"`
	Bins     []HistogramBin `json:"bins"`
}

// Coverage describes the loaded dataset: its date bounds and row count.
type Coverage struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TripCount int    `json:"trip_count"`
}

// FilterOptions is what a frontend needs to populate the filter widgets.
type FilterOptions struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	MinHour   int      `json:"min_hour"`
	MaxHour   int      `json:"max_hour"`
	Payments  []string `json:"payments"`
}

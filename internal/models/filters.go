package models

// TripFilter represents the filter query parameters for dashboard endpoints.
// Dates use YYYY-MM-DD. A nil Payments slice means "no payments param sent";
// the service substitutes the full label set. An empty non-nil slice is a
// deliberate empty selection and must yield an empty view.
type TripFilter struct {
	StartDate string   `form:"startDate"`
	EndDate   string   `form:"endDate"`
	StartHour int      `form:"startHour,default=0"`
	EndHour   int      `form:"endHour,default=23"`
	Payments  []string `form:"payments"`
}

package event

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MonthWindow returns the first and last calendar day of the given month.
// The last day accounts for variable month length, including leap-year February.
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// QuarterWindow maps a quarter number (1-4) to its 3-month span.
// Quarter 4 of 2024 spans 2024-10-01 through 2024-12-31 inclusive.
func QuarterWindow(year, quarter int) (time.Time, time.Time) {
	startMonth := (quarter-1)*3 + 1
	start := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return start, end
}

// Overlaps reports whether an event's interval intersects [start, end],
// i.e. start_date <= end AND end_date >= start.
func Overlaps(e Event, start, end time.Time) bool {
	return !e.StartDate.After(end) && !e.EndDate.Before(start)
}

// ParseDate parses a YYYY-MM-DD string in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

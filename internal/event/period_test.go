package event

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		start string
		end   string
	}{
		{"january", 2024, 1, "2024-01-01", "2024-01-31"},
		{"leap february", 2024, 2, "2024-02-01", "2024-02-29"},
		{"non-leap february", 2023, 2, "2023-02-01", "2023-02-28"},
		{"thirty day month", 2024, 4, "2024-04-01", "2024-04-30"},
		{"december", 2024, 12, "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthWindow(tt.year, tt.month)
			if got := start.Format(DateLayout); got != tt.start {
				t.Errorf("start = %s, want %s", got, tt.start)
			}
			if got := end.Format(DateLayout); got != tt.end {
				t.Errorf("end = %s, want %s", got, tt.end)
			}
		})
	}
}

func TestQuarterWindow(t *testing.T) {
	tests := []struct {
		quarter int
		start   string
		end     string
	}{
		{1, "2024-01-01", "2024-03-31"},
		{2, "2024-04-01", "2024-06-30"},
		{3, "2024-07-01", "2024-09-30"},
		{4, "2024-10-01", "2024-12-31"},
	}

	for _, tt := range tests {
		start, end := QuarterWindow(2024, tt.quarter)
		if got := start.Format(DateLayout); got != tt.start {
			t.Errorf("Q%d start = %s, want %s", tt.quarter, got, tt.start)
		}
		if got := end.Format(DateLayout); got != tt.end {
			t.Errorf("Q%d end = %s, want %s", tt.quarter, got, tt.end)
		}
	}
}

func TestMonthBoundaryInclusion(t *testing.T) {
	// An event starting on the last calendar day of a month belongs to that
	// month and not the next, including the leap-year February boundary.
	e := Event{StartDate: date("2024-02-29"), EndDate: date("2024-03-02")}

	febStart, febEnd := MonthWindow(2024, 2)
	if e.StartDate.Before(febStart) || e.StartDate.After(febEnd) {
		t.Error("2024-02-29 start should fall inside February 2024")
	}

	marStart, _ := MonthWindow(2024, 3)
	if !e.StartDate.Before(marStart) {
		t.Error("2024-02-29 start should fall before March 2024")
	}
}

func TestOverlaps(t *testing.T) {
	e := Event{StartDate: date("2024-05-10"), EndDate: date("2024-05-20")}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"fully inside window", "2024-05-01", "2024-05-31", true},
		{"window inside event", "2024-05-12", "2024-05-13", true},
		{"touching at event end", "2024-05-20", "2024-05-25", true},
		{"touching at event start", "2024-05-01", "2024-05-10", true},
		{"before event", "2024-04-01", "2024-05-09", false},
		{"after event", "2024-05-21", "2024-06-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(e, date(tt.start), date(tt.end)); got != tt.want {
				t.Errorf("Overlaps(%s..%s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

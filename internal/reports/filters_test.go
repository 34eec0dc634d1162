package reports

import (
	"testing"
	"time"
)

func TestResolvePeriodMonthly(t *testing.T) {
	req := &CreateReportRequest{PeriodType: PeriodMonthly, Year: 2024, Month: 2}

	start, end, title, err := ResolvePeriod(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2024-02-01", start)
	}
	if !end.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want 2024-02-29", end)
	}
	if title != "2024-02 Monthly Report" {
		t.Errorf("title = %q", title)
	}
}

func TestResolvePeriodQuarterly(t *testing.T) {
	req := &CreateReportRequest{PeriodType: PeriodQuarterly, Year: 2024, Quarter: 4}

	start, end, _, err := ResolvePeriod(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2024-10-01", start)
	}
	if !end.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want 2024-12-31", end)
	}
}

func TestResolvePeriodCustom(t *testing.T) {
	req := &CreateReportRequest{PeriodType: PeriodCustom, StartDate: "2025-01-15", EndDate: "2025-03-10"}

	start, end, _, err := ResolvePeriod(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Format("2006-01-02") != "2025-01-15" || end.Format("2006-01-02") != "2025-03-10" {
		t.Errorf("window = %v ~ %v", start, end)
	}
}

func TestResolvePeriodRejectsBadInput(t *testing.T) {
	bad := []*CreateReportRequest{
		{PeriodType: PeriodMonthly, Year: 2024, Month: 13},
		{PeriodType: PeriodQuarterly, Year: 2024, Quarter: 0},
		{PeriodType: PeriodQuarterly, Year: 2024, Quarter: 5},
		{PeriodType: PeriodCustom},
		{PeriodType: PeriodCustom, StartDate: "2025-02-10", EndDate: "2025-02-01"},
		{PeriodType: PeriodCustom, StartDate: "10-02-2025", EndDate: "2025-02-20"},
		{PeriodType: "weekly"},
	}
	for i, req := range bad {
		if _, _, _, err := ResolvePeriod(req); err == nil {
			t.Errorf("case %d: expected error for %+v", i, req)
		}
	}
}

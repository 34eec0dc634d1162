package reports

import (
	"errors"
	"fmt"
	"time"

	"github.com/minseo-dev/event-marketing-backend/internal/event"
)

// ResolvePeriod turns a report request into a concrete date window and a
// default title. Custom ranges use "2006-01-02" dates.
func ResolvePeriod(req *CreateReportRequest) (time.Time, time.Time, string, error) {
	now := time.Now()

	switch req.PeriodType {
	case PeriodMonthly:
		year, month := req.Year, req.Month
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
		if month < 1 || month > 12 {
			return time.Time{}, time.Time{}, "", errors.New("month must be between 1 and 12")
		}
		start, end := event.MonthWindow(year, month)
		return start, end, fmt.Sprintf("%d-%02d Monthly Report", year, month), nil

	case PeriodQuarterly:
		year, quarter := req.Year, req.Quarter
		if year == 0 {
			year = now.Year()
		}
		if quarter < 1 || quarter > 4 {
			return time.Time{}, time.Time{}, "", errors.New("quarter must be between 1 and 4")
		}
		start, end := event.QuarterWindow(year, quarter)
		return start, end, fmt.Sprintf("%d Q%d Quarterly Report", year, quarter), nil

	case PeriodCustom:
		if req.StartDate == "" || req.EndDate == "" {
			return time.Time{}, time.Time{}, "", errors.New("start_date and end_date required for custom range")
		}
		start, err := event.ParseDate(req.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, "", errors.New("invalid start_date, expected YYYY-MM-DD")
		}
		end, err := event.ParseDate(req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, "", errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, "", errors.New("start_date must not be after end_date")
		}
		title := fmt.Sprintf("Report %s ~ %s", start.Format(event.DateLayout), end.Format(event.DateLayout))
		return start, end, title, nil

	default:
		return time.Time{}, time.Time{}, "", fmt.Errorf("unsupported period_type: %s", req.PeriodType)
	}
}

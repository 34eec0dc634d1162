package analytics

import (
	"math"
	"sort"

	"github.com/minseo-dev/event-marketing-backend/internal/event"
)

// The engine is pure: no I/O, deterministic, and safe on empty input.
// Every function returns zero-valued results rather than failing.

// roundHalfUp rounds to the nearest integer, halves up.
func roundHalfUp(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Floor(x*10+0.5) / 10
}

// num coerces malformed float input to 0 so NaN/Inf never reaches a sum.
func num(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// rate returns round-half-up(100 * actual / target), defined as 0 when the
// target is zero.
func rate(actual, target float64) int {
	if target <= 0 {
		return 0
	}
	return roundHalfUp(100 * num(actual) / target)
}

// ChannelRollup groups events by type and sums targets, actuals and cost.
// The result always contains one entry per known channel type, in display
// order, so empty channels render as zero rows.
func ChannelRollup(events []event.Event) []ChannelStats {
	byType := make(map[string]*ChannelStats, len(event.Types))
	stats := make([]ChannelStats, len(event.Types))
	for i, t := range event.Types {
		stats[i] = ChannelStats{EventType: t}
		byType[t] = &stats[i]
	}

	for _, e := range events {
		s, ok := byType[e.EventType]
		if !ok {
			continue
		}
		s.EventCount++
		s.TargetContracts += e.TargetContracts
		s.ActualContracts += e.ActualContracts
		s.TargetEstimates += e.TargetEstimates
		s.ActualEstimates += e.ActualEstimates
		s.TargetSqm += num(e.TargetSqm)
		s.ActualSqm += num(e.ActualSqm)
		s.TotalCost += num(e.TotalCost)
	}

	for i := range stats {
		stats[i].AchievementRate = rate(float64(stats[i].ActualContracts), float64(stats[i].TargetContracts))
	}

	return stats
}

// MonthlySeries produces exactly 12 buckets for the given year, one per
// calendar month in order. Months with no events appear with all-zero values.
// An event is bucketed by its start date.
func MonthlySeries(events []event.Event, year int) []MonthBucket {
	series := make([]MonthBucket, 12)
	rawCost := make([]map[string]float64, 12)
	for m := 0; m < 12; m++ {
		series[m].Month = m + 1
		series[m].ByType = make(map[string]MonthCell, len(event.Types))
		rawCost[m] = make(map[string]float64, len(event.Types)+1)
		for _, t := range event.Types {
			series[m].ByType[t] = MonthCell{}
		}
	}

	for _, e := range events {
		if e.StartDate.Year() != year {
			continue
		}
		m := int(e.StartDate.Month()) - 1

		cell := series[m].ByType[e.EventType]
		cell.EventCount++
		cell.Contracts += e.ActualContracts
		cell.Estimates += e.ActualEstimates
		series[m].ByType[e.EventType] = cell
		rawCost[m][e.EventType] += num(e.TotalCost)

		series[m].Total.EventCount++
		series[m].Total.Contracts += e.ActualContracts
		series[m].Total.Estimates += e.ActualEstimates
		rawCost[m]["total"] += num(e.TotalCost)
	}

	// Convert raw cost sums to millions once per bucket, after summing, so
	// rounding does not accumulate across events.
	for m := 0; m < 12; m++ {
		for _, t := range event.Types {
			cell := series[m].ByType[t]
			cell.CostMillions = round1(rawCost[m][t] / 1_000_000)
			series[m].ByType[t] = cell
		}
		series[m].Total.CostMillions = round1(rawCost[m]["total"] / 1_000_000)
	}

	return series
}

// ActualContractsTotal sums actual contracts for one channel.
func ActualContractsTotal(events []event.Event, eventType string) int {
	total := 0
	for _, e := range events {
		if e.EventType == eventType {
			total += e.ActualContracts
		}
	}
	return total
}

// TrendBetween compares a month's total against the preceding month's.
// Direction defaults to "up" when there is no previous data, with a zero
// percentage, so a missing month never causes a division error.
func TrendBetween(current, previous int) (string, int) {
	if previous <= 0 {
		return "up", 0
	}
	direction := "up"
	if current < previous {
		direction = "down"
	}
	pct := roundHalfUp(100 * float64(current-previous) / float64(previous))
	return direction, pct
}

// PrevMonth returns the calendar month immediately before (year, month),
// rolling January back to December of the prior year.
func PrevMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// NextMonth returns the calendar month immediately after (year, month).
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// TargetsOf sums already-configured targets for one channel. An empty input
// yields zero targets; this is a read-ahead, not a projection.
func TargetsOf(events []event.Event, eventType string) Targets {
	var t Targets
	for _, e := range events {
		if e.EventType != eventType {
			continue
		}
		t.Contracts += e.TargetContracts
		t.Estimates += e.TargetEstimates
		t.Sqm += num(e.TargetSqm)
	}
	return t
}

// CostPerUnit divides total cost by total actual square-meterage, rounded to
// the nearest integer; 0 when no square-meterage was sold.
func CostPerUnit(events []event.Event) int {
	var cost, sqm float64
	for _, e := range events {
		cost += num(e.TotalCost)
		sqm += num(e.ActualSqm)
	}
	if sqm <= 0 {
		return 0
	}
	return roundHalfUp(cost / sqm)
}

// TopPerformers returns the top n events by actual square-meterage sold.
// The input slice is not modified.
func TopPerformers(events []event.Event, n int) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return num(sorted[i].ActualSqm) > num(sorted[j].ActualSqm)
	})
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Summarize computes the report-header totals and rates. Efficiency is an
// opaque externally-supplied percentage; it is averaged arithmetically,
// unweighted, across all included events.
func Summarize(events []event.Event) Summary {
	var s Summary
	var efficiencySum float64

	for _, e := range events {
		s.TotalEvents++
		s.TargetContracts += e.TargetContracts
		s.ActualContracts += e.ActualContracts
		s.TargetEstimates += e.TargetEstimates
		s.ActualEstimates += e.ActualEstimates
		s.ActualSqm += num(e.ActualSqm)
		s.TotalCost += num(e.TotalCost)
		efficiencySum += num(e.Efficiency)
	}

	s.ContractAchievementRate = rate(float64(s.ActualContracts), float64(s.TargetContracts))
	s.EstimateAchievementRate = rate(float64(s.ActualEstimates), float64(s.TargetEstimates))
	if s.TotalEvents > 0 {
		s.AvgEfficiency = round1(efficiencySum / float64(s.TotalEvents))
	}
	s.CostPerUnit = CostPerUnit(events)

	return s
}

package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/minseo-dev/event-marketing-backend/internal/event"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestChannelRollupAchievementRate(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeLiveCommerce, StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 2), TargetContracts: 10, ActualContracts: 8},
		{EventType: event.TypeLiveCommerce, StartDate: date(2025, 3, 10), EndDate: date(2025, 3, 11), TargetContracts: 20, ActualContracts: 25},
	}

	stats := ChannelRollup(events)

	var live *ChannelStats
	for i := range stats {
		if stats[i].EventType == event.TypeLiveCommerce {
			live = &stats[i]
		}
	}
	if live == nil {
		t.Fatal("live_commerce row missing from rollup")
	}
	if live.TargetContracts != 30 {
		t.Errorf("target contracts = %d, want 30", live.TargetContracts)
	}
	if live.ActualContracts != 33 {
		t.Errorf("actual contracts = %d, want 33", live.ActualContracts)
	}
	if live.AchievementRate != 110 {
		t.Errorf("achievement rate = %d, want 110", live.AchievementRate)
	}
}

func TestChannelRollupAlwaysFullChannelList(t *testing.T) {
	stats := ChannelRollup(nil)
	if len(stats) != len(event.Types) {
		t.Fatalf("rollup rows = %d, want %d", len(stats), len(event.Types))
	}
	for i, s := range stats {
		if s.EventType != event.Types[i] {
			t.Errorf("row %d type = %q, want %q", i, s.EventType, event.Types[i])
		}
		if s.EventCount != 0 || s.AchievementRate != 0 {
			t.Errorf("empty rollup row %q not zero-valued: %+v", s.EventType, s)
		}
	}
}

func TestZeroTargetNeverNaN(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeBabyFair, StartDate: date(2025, 5, 1), EndDate: date(2025, 5, 3), TargetContracts: 0, ActualContracts: 7},
	}

	stats := ChannelRollup(events)
	for _, s := range stats {
		if s.EventType == event.TypeBabyFair && s.AchievementRate != 0 {
			t.Errorf("rate with zero target = %d, want 0", s.AchievementRate)
		}
	}

	sum := Summarize(events)
	if sum.ContractAchievementRate != 0 {
		t.Errorf("summary contract rate with zero target = %d, want 0", sum.ContractAchievementRate)
	}
	if math.IsNaN(sum.AvgEfficiency) || math.IsInf(sum.AvgEfficiency, 0) {
		t.Errorf("avg efficiency is not finite: %v", sum.AvgEfficiency)
	}
}

func TestRollupIdempotent(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeMoveInExpo, StartDate: date(2025, 2, 1), EndDate: date(2025, 2, 5), TargetContracts: 12, ActualContracts: 9, TotalCost: 1_500_000, ActualSqm: 84.5},
		{EventType: event.TypeInfluencerGroupBuy, StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 2), TargetContracts: 4, ActualContracts: 4, TotalCost: 320_000},
	}

	first := ChannelRollup(events)
	second := ChannelRollup(events)
	if !reflect.DeepEqual(first, second) {
		t.Error("rollup of the same input differs between runs")
	}

	s1 := MonthlySeries(events, 2025)
	s2 := MonthlySeries(events, 2025)
	if !reflect.DeepEqual(s1, s2) {
		t.Error("monthly series of the same input differs between runs")
	}
}

func TestRollupContractSumsMatchFlatSum(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeLiveCommerce, StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 2), ActualContracts: 3},
		{EventType: event.TypeBabyFair, StartDate: date(2025, 1, 5), EndDate: date(2025, 1, 6), ActualContracts: 11},
		{EventType: event.TypeMoveInExpo, StartDate: date(2025, 4, 1), EndDate: date(2025, 4, 3), ActualContracts: 6},
		{EventType: event.TypeLiveCommerce, StartDate: date(2025, 9, 1), EndDate: date(2025, 9, 1), ActualContracts: 2},
	}

	flat := 0
	for _, e := range events {
		flat += e.ActualContracts
	}

	grouped := 0
	for _, s := range ChannelRollup(events) {
		grouped += s.ActualContracts
	}

	if grouped != flat {
		t.Errorf("grouped contract sum = %d, flat sum = %d", grouped, flat)
	}
}

func TestMonthlySeriesAlwaysTwelveBuckets(t *testing.T) {
	for _, events := range [][]event.Event{
		nil,
		{{EventType: event.TypeBabyFair, StartDate: date(2025, 6, 10), EndDate: date(2025, 6, 12), ActualContracts: 5, TotalCost: 2_340_000}},
	} {
		series := MonthlySeries(events, 2025)
		if len(series) != 12 {
			t.Fatalf("series length = %d, want 12", len(series))
		}
		for i, b := range series {
			if b.Month != i+1 {
				t.Errorf("bucket %d month = %d, want %d", i, b.Month, i+1)
			}
			if len(b.ByType) != len(event.Types) {
				t.Errorf("bucket %d has %d channels, want %d", i, len(b.ByType), len(event.Types))
			}
			for typ, cell := range b.ByType {
				if cell.EventCount < 0 || cell.Contracts < 0 || cell.CostMillions < 0 {
					t.Errorf("bucket %d channel %q has negative values: %+v", i, typ, cell)
				}
			}
		}
	}
}

func TestMonthlySeriesCostConvertedAfterSumming(t *testing.T) {
	// Two costs that individually round to 0.0 millions but sum to 0.1.
	events := []event.Event{
		{EventType: event.TypeLiveCommerce, StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 1), TotalCost: 40_000},
		{EventType: event.TypeLiveCommerce, StartDate: date(2025, 8, 2), EndDate: date(2025, 8, 2), TotalCost: 60_000},
	}

	series := MonthlySeries(events, 2025)
	got := series[7].ByType[event.TypeLiveCommerce].CostMillions
	if got != 0.1 {
		t.Errorf("august live_commerce cost = %v millions, want 0.1", got)
	}
	if series[7].Total.CostMillions != 0.1 {
		t.Errorf("august total cost = %v millions, want 0.1", series[7].Total.CostMillions)
	}
}

func TestMonthlySeriesIgnoresOtherYears(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeBabyFair, StartDate: date(2024, 12, 30), EndDate: date(2025, 1, 2), ActualContracts: 9},
	}

	series := MonthlySeries(events, 2025)
	for _, b := range series {
		if b.Total.EventCount != 0 {
			t.Errorf("month %d counts an event starting in a different year", b.Month)
		}
	}
}

func TestCostPerUnitZeroSqm(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeMoveInExpo, StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 2), TotalCost: 500_000, ActualSqm: 0},
	}
	if got := CostPerUnit(events); got != 0 {
		t.Errorf("cost per unit with zero sqm = %d, want 0", got)
	}
}

func TestCostPerUnitRounding(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeMoveInExpo, StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 2), TotalCost: 1000, ActualSqm: 3},
	}
	if got := CostPerUnit(events); got != 333 {
		t.Errorf("cost per unit = %d, want 333", got)
	}
}

func TestTrendBetween(t *testing.T) {
	tests := []struct {
		name          string
		current, prev int
		wantDir       string
		wantPct       int
	}{
		{"no previous data", 5, 0, "up", 0},
		{"growth", 15, 10, "up", 50},
		{"decline", 8, 10, "down", -20},
		{"flat", 10, 10, "up", 0},
	}
	for _, tc := range tests {
		dir, pct := TrendBetween(tc.current, tc.prev)
		if dir != tc.wantDir || pct != tc.wantPct {
			t.Errorf("%s: TrendBetween(%d, %d) = (%q, %d), want (%q, %d)",
				tc.name, tc.current, tc.prev, dir, pct, tc.wantDir, tc.wantPct)
		}
	}
}

func TestMonthArithmeticRollsOverYears(t *testing.T) {
	if y, m := PrevMonth(2025, 1); y != 2024 || m != 12 {
		t.Errorf("PrevMonth(2025, 1) = (%d, %d), want (2024, 12)", y, m)
	}
	if y, m := NextMonth(2025, 12); y != 2026 || m != 1 {
		t.Errorf("NextMonth(2025, 12) = (%d, %d), want (2026, 1)", y, m)
	}
	if y, m := PrevMonth(2025, 7); y != 2025 || m != 6 {
		t.Errorf("PrevMonth(2025, 7) = (%d, %d), want (2025, 6)", y, m)
	}
}

func TestTopPerformersDoesNotMutateInput(t *testing.T) {
	events := []event.Event{
		{Title: "a", ActualSqm: 10},
		{Title: "b", ActualSqm: 30},
		{Title: "c", ActualSqm: 20},
	}
	original := make([]event.Event, len(events))
	copy(original, events)

	top := TopPerformers(events, 2)
	if len(top) != 2 {
		t.Fatalf("top length = %d, want 2", len(top))
	}
	if top[0].Title != "b" || top[1].Title != "c" {
		t.Errorf("top order = %q, %q; want b, c", top[0].Title, top[1].Title)
	}
	if !reflect.DeepEqual(events, original) {
		t.Error("input slice was reordered")
	}
}

func TestSummarizeCoercesMalformedFloats(t *testing.T) {
	events := []event.Event{
		{EventType: event.TypeLiveCommerce, TotalCost: math.NaN(), ActualSqm: math.Inf(1), Efficiency: math.NaN()},
		{EventType: event.TypeBabyFair, TotalCost: 100, ActualSqm: 4, Efficiency: 80},
	}

	s := Summarize(events)
	if math.IsNaN(s.TotalCost) || math.IsInf(s.TotalCost, 0) {
		t.Errorf("total cost not finite: %v", s.TotalCost)
	}
	if s.TotalCost != 100 {
		t.Errorf("total cost = %v, want 100", s.TotalCost)
	}
	if s.AvgEfficiency != 40 {
		t.Errorf("avg efficiency = %v, want 40", s.AvgEfficiency)
	}
}

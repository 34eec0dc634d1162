package analytics

import "github.com/minseo-dev/event-marketing-backend/internal/event"

// ChannelStats is the per-channel rollup of targets, actuals and cost.
type ChannelStats struct {
	EventType       string  `json:"event_type"`
	EventCount      int     `json:"event_count"`
	TargetContracts int     `json:"target_contracts"`
	ActualContracts int     `json:"actual_contracts"`
	TargetEstimates int     `json:"target_estimates"`
	ActualEstimates int     `json:"actual_estimates"`
	TargetSqm       float64 `json:"target_sqm"`
	ActualSqm       float64 `json:"actual_sqm"`
	TotalCost       float64 `json:"total_cost"`
	AchievementRate int     `json:"achievement_rate"`
}

// MonthCell holds one month's figures for a single channel or the month total.
// Cost is expressed in millions, rounded to one decimal for display.
type MonthCell struct {
	EventCount   int     `json:"event_count"`
	Contracts    int     `json:"contracts"`
	Estimates    int     `json:"estimates"`
	CostMillions float64 `json:"cost_millions"`
}

// MonthBucket is one entry of the 12-element monthly series.
type MonthBucket struct {
	Month  int                  `json:"month"`
	ByType map[string]MonthCell `json:"by_type"`
	Total  MonthCell            `json:"total"`
}

// Trend compares a channel's actual contracts in a month against the
// immediately preceding calendar month.
type Trend struct {
	EventType string `json:"event_type"`
	Current   int    `json:"current"`
	Previous  int    `json:"previous"`
	Direction string `json:"direction"`
	Pct       int    `json:"pct"`
}

// Targets is the read-ahead of already-configured target numbers.
type Targets struct {
	Contracts int     `json:"contracts"`
	Estimates int     `json:"estimates"`
	Sqm       float64 `json:"sqm"`
}

// Summary is the report-header rollup across all included events.
type Summary struct {
	TotalEvents             int     `json:"total_events"`
	TargetContracts         int     `json:"target_contracts"`
	ActualContracts         int     `json:"actual_contracts"`
	TargetEstimates         int     `json:"target_estimates"`
	ActualEstimates         int     `json:"actual_estimates"`
	ActualSqm               float64 `json:"actual_sqm"`
	TotalCost               float64 `json:"total_cost"`
	ContractAchievementRate int     `json:"contract_achievement_rate"`
	EstimateAchievementRate int     `json:"estimate_achievement_rate"`
	AvgEfficiency           float64 `json:"avg_efficiency"`
	CostPerUnit             int     `json:"cost_per_unit"`
}

// DashboardResponse is the aggregate payload behind the main dashboard view.
type DashboardResponse struct {
	Year             int                `json:"year"`
	Month            int                `json:"month"`
	Summary          Summary            `json:"summary"`
	Channels         []ChannelStats     `json:"channels"`
	TopPerformers    []event.Event      `json:"top_performers"`
	Trends           []Trend            `json:"trends"`
	NextMonthTargets map[string]Targets `json:"next_month_targets"`
}

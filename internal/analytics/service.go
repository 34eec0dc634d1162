package analytics

import (
	"encoding/json"
	"time"

	"github.com/minseo-dev/event-marketing-backend/config"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
	"github.com/minseo-dev/event-marketing-backend/utils"
)

// Service derives view-model statistics from event data. All computation is
// delegated to the pure engine functions; this layer only fetches, caches and
// assembles.
type Service struct {
	Events   *event.Repository
	cacheTTL time.Duration
}

func NewService(events *event.Repository, cfg *config.Config) *Service {
	return &Service{
		Events:   events,
		cacheTTL: time.Duration(cfg.DashboardCacheTTLSeconds) * time.Second,
	}
}

// Dashboard assembles the main dashboard payload for the given month. The
// current month's payload is cached briefly in Redis; event mutations drop
// the cached copy so a reload reflects the write.
func (s *Service) Dashboard(year, month int) (*DashboardResponse, error) {
	now := time.Now()
	isCurrent := year == now.Year() && month == int(now.Month())

	if isCurrent {
		if raw, err := utils.CacheGet(event.DashboardCacheKey); err == nil {
			var cached DashboardResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	all, err := s.Events.ListAll()
	if err != nil {
		return nil, err
	}

	monthEvents, err := s.Events.ListByMonth(year, month)
	if err != nil {
		return nil, err
	}

	prevYear, prevMonth := PrevMonth(year, month)
	prevEvents, err := s.Events.ListByMonth(prevYear, prevMonth)
	if err != nil {
		return nil, err
	}

	// Forward-looking read-ahead of next month's configured targets.
	nextYear, nextMonth := NextMonth(year, month)
	nextEvents, err := s.Events.ListByMonth(nextYear, nextMonth)
	if err != nil {
		return nil, err
	}

	trends := make([]Trend, 0, len(event.Types))
	nextTargets := make(map[string]Targets, len(event.Types))
	for _, t := range event.Types {
		current := ActualContractsTotal(monthEvents, t)
		previous := ActualContractsTotal(prevEvents, t)
		direction, pct := TrendBetween(current, previous)
		trends = append(trends, Trend{
			EventType: t,
			Current:   current,
			Previous:  previous,
			Direction: direction,
			Pct:       pct,
		})
		nextTargets[t] = TargetsOf(nextEvents, t)
	}

	resp := &DashboardResponse{
		Year:             year,
		Month:            month,
		Summary:          Summarize(all),
		Channels:         ChannelRollup(all),
		TopPerformers:    TopPerformers(all, 4),
		Trends:           trends,
		NextMonthTargets: nextTargets,
	}

	if isCurrent {
		if raw, err := json.Marshal(resp); err == nil {
			if err := utils.CacheSet(event.DashboardCacheKey, raw, s.cacheTTL); err != nil {
				utils.Logger.Debug().Err(err).Msg("dashboard cache write skipped")
			}
		}
	}

	return resp, nil
}

// MonthlySeriesFor returns the 12-bucket series for one year.
func (s *Service) MonthlySeriesFor(year int) ([]MonthBucket, error) {
	start, _ := event.MonthWindow(year, 1)
	_, end := event.MonthWindow(year, 12)

	events, err := s.Events.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}

	return MonthlySeries(events, year), nil
}

// ChannelsForPeriod rolls up channels over an explicit date range.
func (s *Service) ChannelsForPeriod(start, end time.Time) ([]ChannelStats, error) {
	events, err := s.Events.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}
	return ChannelRollup(events), nil
}

// ChannelsAllTime rolls up channels over the full event list.
func (s *Service) ChannelsAllTime() ([]ChannelStats, error) {
	events, err := s.Events.ListAll()
	if err != nil {
		return nil, err
	}
	return ChannelRollup(events), nil
}

// ChannelTrendFor computes a single channel's month-over-month trend plus the
// next-month target read-ahead.
func (s *Service) ChannelTrendFor(eventType string, year, month int) (*Trend, *Targets, error) {
	monthEvents, err := s.Events.ListByMonth(year, month)
	if err != nil {
		return nil, nil, err
	}

	prevYear, prevMonth := PrevMonth(year, month)
	prevEvents, err := s.Events.ListByMonth(prevYear, prevMonth)
	if err != nil {
		return nil, nil, err
	}

	nextYear, nextMonth := NextMonth(year, month)
	nextEvents, err := s.Events.ListByMonth(nextYear, nextMonth)
	if err != nil {
		return nil, nil, err
	}

	current := ActualContractsTotal(monthEvents, eventType)
	previous := ActualContractsTotal(prevEvents, eventType)
	direction, pct := TrendBetween(current, previous)

	trend := &Trend{
		EventType: eventType,
		Current:   current,
		Previous:  previous,
		Direction: direction,
		Pct:       pct,
	}
	targets := TargetsOf(nextEvents, eventType)

	return trend, &targets, nil
}

package reports

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/minseo-dev/event-marketing-backend/internal/analytics"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
)

type Service struct {
	Repo     *Repository
	Events   *event.Repository
	Exporter *Exporter
}

func NewService(repo *Repository, events *event.Repository) *Service {
	return &Service{
		Repo:     repo,
		Events:   events,
		Exporter: NewExporter(),
	}
}

// Create resolves the requested period, aggregates the events overlapping it
// and persists the result as an immutable snapshot.
func (s *Service) Create(req *CreateReportRequest, actorID uint) (*Report, error) {
	start, end, defaultTitle, err := ResolvePeriod(req)
	if err != nil {
		return nil, err
	}

	events, err := s.Events.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{
		Summary:  analytics.Summarize(events),
		Channels: analytics.ChannelRollup(events),
		Events:   events,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = defaultTitle
	}

	rep := &Report{
		Title:      title,
		PeriodType: req.PeriodType,
		StartDate:  start,
		EndDate:    end,
		EventCount: len(events),
		Snapshot:   datatypes.JSON(raw),
		Notes:      req.Notes,
		CreatedBy:  actorID,
	}
	if err := s.Repo.Create(rep); err != nil {
		return nil, err
	}

	return s.Repo.GetByID(rep.ID)
}

func (s *Service) List() ([]Report, error) {
	return s.Repo.ListAll()
}

func (s *Service) Get(id string) (*Report, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) Delete(id string) error {
	return s.Repo.Delete(id)
}

// Export renders a saved report in the requested format.
func (s *Service) Export(id, format string) ([]byte, string, string, error) {
	rep, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, "", "", err
	}

	var snap Snapshot
	if len(rep.Snapshot) > 0 {
		if err := json.Unmarshal(rep.Snapshot, &snap); err != nil {
			return nil, "", "", err
		}
	}

	return s.Exporter.Export(format, ReportData{Report: *rep, Snapshot: snap})
}

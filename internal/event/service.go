package event

import (
	"errors"
	"time"

	"github.com/minseo-dev/event-marketing-backend/utils"
)

// DashboardCacheKey is the cached dashboard payload dropped on every mutation
// so the next dashboard read reflects the write.
const DashboardCacheKey = "dashboard:overview"

// Activity is the message published to Kafka on every event mutation.
type Activity struct {
	Action    string    `json:"action"`
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	ActorID   uint      `json:"actor_id"`
	At        time.Time `json:"at"`
}

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// Create inserts a new event with its targets and returns the committed row,
// re-read from the store. The response never echoes in-memory input.
func (s *Service) Create(req *CreateEventRequest, actorID uint) (*Event, error) {
	if !ValidType(req.EventType) {
		return nil, errors.New("invalid event_type")
	}

	status := req.Status
	if status == "" {
		status = StatusPlanning
	}
	if !ValidStatus(status) {
		return nil, errors.New("invalid status")
	}

	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("invalid start_date format. Use YYYY-MM-DD")
	}
	endDate, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.New("invalid end_date format. Use YYYY-MM-DD")
	}
	if startDate.After(endDate) {
		return nil, errors.New("start_date must not be after end_date")
	}

	e := &Event{
		Title:             req.Title,
		EventType:         req.EventType,
		Status:            status,
		StartDate:         startDate,
		EndDate:           endDate,
		Partner:           req.Partner,
		Location:          req.Location,
		Manager:           req.Manager,
		TargetContracts:   req.TargetContracts,
		TargetEstimates:   req.TargetEstimates,
		TargetSqm:         req.TargetSqm,
		TargetCostPerUnit: req.TargetCostPerUnit,
		ExecutionPlan:     req.ExecutionPlan,
		PromotionInfo:     req.PromotionInfo,
		CreatedBy:         actorID,
	}

	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}

	created, err := s.Repo.GetByID(e.ID)
	if err != nil {
		return nil, err
	}

	s.afterMutation("event_created", created, actorID)
	return created, nil
}

// Update applies the non-nil fields of req and returns the reloaded row.
func (s *Service) Update(id string, req *UpdateEventRequest, actorID uint) (*Event, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, err
	}

	fields, err := updateFields(req)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.afterMutation("event_updated", updated, actorID)
	return updated, nil
}

func updateFields(req *UpdateEventRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.EventType != nil {
		if !ValidType(*req.EventType) {
			return nil, errors.New("invalid event_type")
		}
		fields["event_type"] = *req.EventType
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, errors.New("invalid status")
		}
		fields["status"] = *req.Status
	}
	if req.StartDate != nil {
		d, err := ParseDate(*req.StartDate)
		if err != nil {
			return nil, errors.New("invalid start_date format. Use YYYY-MM-DD")
		}
		fields["start_date"] = d
	}
	if req.EndDate != nil {
		d, err := ParseDate(*req.EndDate)
		if err != nil {
			return nil, errors.New("invalid end_date format. Use YYYY-MM-DD")
		}
		fields["end_date"] = d
	}
	if req.Partner != nil {
		fields["partner"] = *req.Partner
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Manager != nil {
		fields["manager"] = *req.Manager
	}
	if req.TargetContracts != nil {
		fields["target_contracts"] = *req.TargetContracts
	}
	if req.TargetEstimates != nil {
		fields["target_estimates"] = *req.TargetEstimates
	}
	if req.TargetSqm != nil {
		fields["target_sqm"] = *req.TargetSqm
	}
	if req.TargetCostPerUnit != nil {
		fields["target_cost_per_unit"] = *req.TargetCostPerUnit
	}
	if req.ActualContracts != nil {
		fields["actual_contracts"] = *req.ActualContracts
	}
	if req.ActualEstimates != nil {
		fields["actual_estimates"] = *req.ActualEstimates
	}
	if req.ActualSqm != nil {
		fields["actual_sqm"] = *req.ActualSqm
	}
	if req.TotalCost != nil {
		fields["total_cost"] = *req.TotalCost
	}
	if req.Efficiency != nil {
		fields["efficiency"] = *req.Efficiency
	}
	if req.CustomerFeedback != nil {
		fields["customer_feedback"] = *req.CustomerFeedback
	}
	if req.EventReview != nil {
		fields["event_review"] = *req.EventReview
	}
	if req.Improvements != nil {
		fields["improvements"] = *req.Improvements
	}
	if req.ExecutionPlan != nil {
		fields["execution_plan"] = *req.ExecutionPlan
	}
	if req.PromotionInfo != nil {
		fields["promotion_info"] = *req.PromotionInfo
	}

	return fields, nil
}

// Delete removes the event. There is no referential check against reference
// entities; partners and locations are linked by name only.
func (s *Service) Delete(id string, actorID uint) error {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	s.afterMutation("event_deleted", e, actorID)
	return nil
}

func (s *Service) afterMutation(action string, e *Event, actorID uint) {
	utils.CacheInvalidate(DashboardCacheKey)
	utils.PublishActivity(e.ID, Activity{
		Action:    action,
		EventID:   e.ID,
		Title:     e.Title,
		EventType: e.EventType,
		ActorID:   actorID,
		At:        time.Now().UTC(),
	})
}

func (s *Service) GetByID(id string) (*Event, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) ListAll() ([]Event, error) {
	return s.Repo.ListAll()
}

func (s *Service) ListByPeriod(startStr, endStr string) ([]Event, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return nil, errors.New("invalid start_date format. Use YYYY-MM-DD")
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return nil, errors.New("invalid end_date format. Use YYYY-MM-DD")
	}
	if start.After(end) {
		return nil, errors.New("start_date must not be after end_date")
	}
	return s.Repo.ListByPeriod(start, end)
}

func (s *Service) ListByMonth(year, month int) ([]Event, error) {
	if month < 1 || month > 12 {
		return nil, errors.New("month must be between 1 and 12")
	}
	return s.Repo.ListByMonth(year, month)
}

func (s *Service) ListByQuarter(year, quarter int) ([]Event, error) {
	if quarter < 1 || quarter > 4 {
		return nil, errors.New("quarter must be between 1 and 4")
	}
	return s.Repo.ListByQuarter(year, quarter)
}

func (s *Service) ListByStatus(status string) ([]Event, error) {
	if !ValidStatus(status) {
		return nil, errors.New("invalid status")
	}
	return s.Repo.ListByStatus(status)
}

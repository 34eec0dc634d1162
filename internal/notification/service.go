package notification

import (
	"fmt"

	"github.com/minseo-dev/event-marketing-backend/internal/auth"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
	"github.com/minseo-dev/event-marketing-backend/utils"
)

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) ListByUser(userID uint, limit int) ([]InAppNotification, error) {
	return s.Repo.ListByUser(userID, limit)
}

func (s *Service) CountUnread(userID uint) (int64, error) {
	return s.Repo.CountUnread(userID)
}

func (s *Service) MarkAsRead(id, userID uint) error {
	return s.Repo.MarkAsRead(id, userID)
}

func (s *Service) MarkAllAsRead(userID uint) error {
	return s.Repo.MarkAllAsRead(userID)
}

// HandleActivity fans an activity message out as bell notifications to every
// admin and manager except the actor. Failures for individual recipients are
// logged and skipped so one bad row does not stall the consumer.
func (s *Service) HandleActivity(act event.Activity) error {
	title, message := describe(act)
	if title == "" {
		utils.Logger.Warn().Str("action", act.Action).Msg("unknown activity action, skipping")
		return nil
	}

	recipients, err := s.Repo.ListWriterIDs([]string{auth.RoleAdmin, auth.RoleManager})
	if err != nil {
		return err
	}

	for _, uid := range recipients {
		if uid == act.ActorID {
			continue
		}
		n := &InAppNotification{
			UserID:   uid,
			Title:    title,
			Message:  message,
			Category: act.Action,
			EventID:  act.EventID,
		}
		if err := s.Repo.Create(n); err != nil {
			utils.LogError(err, map[string]interface{}{"user_id": uid, "event_id": act.EventID}, "failed to store notification")
		}
	}

	return nil
}

func describe(act event.Activity) (string, string) {
	switch act.Action {
	case CategoryEventCreated:
		return "New event created", fmt.Sprintf("%q (%s) was added to the schedule", act.Title, act.EventType)
	case CategoryEventUpdated:
		return "Event updated", fmt.Sprintf("%q (%s) was modified", act.Title, act.EventType)
	case CategoryEventDeleted:
		return "Event deleted", fmt.Sprintf("%q (%s) was removed from the schedule", act.Title, act.EventType)
	default:
		return "", ""
	}
}

package event

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event types (partner channels).
const (
	TypeLiveCommerce       = "live_commerce"
	TypeBabyFair           = "baby_fair"
	TypeMoveInExpo         = "move_in_expo"
	TypeInfluencerGroupBuy = "influencer_group_buy"
)

// Event statuses.
const (
	StatusPlanning   = "planning"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Types lists all channel types in display order.
var Types = []string{TypeLiveCommerce, TypeBabyFair, TypeMoveInExpo, TypeInfluencerGroupBuy}

// Statuses lists all lifecycle statuses.
var Statuses = []string{StatusPlanning, StatusInProgress, StatusCompleted, StatusCancelled}

func ValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Event is a marketing/sales event run through a partner channel.
// Targets are set at creation; actuals are filled in during/after execution.
type Event struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	EventType string    `gorm:"type:varchar(50);not null;index" json:"event_type"`
	Status    string    `gorm:"type:varchar(20);not null;default:'planning';index" json:"status"`
	StartDate time.Time `gorm:"type:date;not null;index" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	// Free-text names, informally linked to reference entities by name only.
	Partner  string `gorm:"type:varchar(255);not null" json:"partner"`
	Location string `gorm:"type:varchar(255)" json:"location"`
	Manager  string `gorm:"type:varchar(100)" json:"manager"`

	TargetContracts   int     `gorm:"default:0" json:"target_contracts"`
	TargetEstimates   int     `gorm:"default:0" json:"target_estimates"`
	TargetSqm         float64 `gorm:"default:0" json:"target_sqm"`
	TargetCostPerUnit float64 `gorm:"default:0" json:"target_cost_per_unit"`

	ActualContracts int     `gorm:"default:0" json:"actual_contracts"`
	ActualEstimates int     `gorm:"default:0" json:"actual_estimates"`
	ActualSqm       float64 `gorm:"default:0" json:"actual_sqm"`
	TotalCost       float64 `gorm:"default:0" json:"total_cost"`
	Efficiency      float64 `gorm:"default:0" json:"efficiency"`

	CustomerFeedback string         `gorm:"type:text" json:"customer_feedback"`
	EventReview      string         `gorm:"type:text" json:"event_review"`
	Improvements     string         `gorm:"type:text" json:"improvements"`
	ExecutionPlan    string         `gorm:"type:text" json:"execution_plan"`
	PromotionInfo    datatypes.JSON `gorm:"type:jsonb" json:"promotion_info"`

	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns the server-generated opaque id.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// CreateEventRequest carries a new event with its KPI targets.
// Dates use the "2006-01-02" format.
type CreateEventRequest struct {
	Title     string `json:"title" binding:"required"`
	EventType string `json:"event_type" binding:"required"`
	Status    string `json:"status"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Partner   string `json:"partner" binding:"required"`
	Location  string `json:"location"`
	Manager   string `json:"manager"`

	TargetContracts   int     `json:"target_contracts"`
	TargetEstimates   int     `json:"target_estimates"`
	TargetSqm         float64 `json:"target_sqm"`
	TargetCostPerUnit float64 `json:"target_cost_per_unit"`

	ExecutionPlan string         `json:"execution_plan"`
	PromotionInfo datatypes.JSON `json:"promotion_info"`
}

// UpdateEventRequest is a partial update; nil fields are left untouched.
type UpdateEventRequest struct {
	Title     *string `json:"title"`
	EventType *string `json:"event_type"`
	Status    *string `json:"status"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Partner   *string `json:"partner"`
	Location  *string `json:"location"`
	Manager   *string `json:"manager"`

	TargetContracts   *int     `json:"target_contracts"`
	TargetEstimates   *int     `json:"target_estimates"`
	TargetSqm         *float64 `json:"target_sqm"`
	TargetCostPerUnit *float64 `json:"target_cost_per_unit"`

	ActualContracts *int     `json:"actual_contracts"`
	ActualEstimates *int     `json:"actual_estimates"`
	ActualSqm       *float64 `json:"actual_sqm"`
	TotalCost       *float64 `json:"total_cost"`
	Efficiency      *float64 `json:"efficiency"`

	CustomerFeedback *string         `json:"customer_feedback"`
	EventReview      *string         `json:"event_review"`
	Improvements     *string         `json:"improvements"`
	ExecutionPlan    *string         `json:"execution_plan"`
	PromotionInfo    *datatypes.JSON `json:"promotion_info"`
}

package manager

import "time"

// EventManager is a staff member selectable as the person in charge of an
// event. Events reference managers by name only.
type EventManager struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone      string    `gorm:"type:varchar(50)" json:"phone"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Department string    `gorm:"type:varchar(100)" json:"department"`
	IsActive   bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EventManager) TableName() string { return "event_managers" }

type CreateManagerRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type UpdateManagerRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"is_active"`
}

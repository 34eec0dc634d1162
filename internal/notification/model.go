package notification

import "time"

// Notification categories.
const (
	CategoryEventCreated = "event_created"
	CategoryEventUpdated = "event_updated"
	CategoryEventDeleted = "event_deleted"
	CategorySystem       = "system"
)

// InAppNotification is a per-user bell notification derived from the
// activity stream.
type InAppNotification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Category  string    `gorm:"size:30;not null" json:"category"`
	EventID   string    `gorm:"type:uuid" json:"event_id,omitempty"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package location

import "time"

// Location is a venue selectable in event forms, referenced by name only.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	Region    string    `gorm:"type:varchar(100)" json:"region"`
	Capacity  int       `gorm:"default:0" json:"capacity"`
	Notes     string    `gorm:"type:text" json:"notes"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateLocationRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Region   string `json:"region"`
	Capacity int    `json:"capacity"`
	Notes    string `json:"notes"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Region   *string `json:"region"`
	Capacity *int    `json:"capacity"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"is_active"`
}

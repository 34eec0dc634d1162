package event

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

func (r *Repository) GetByID(id string) (*Event, error) {
	var e Event
	if err := r.DB.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListAll returns every event, newest created first.
func (r *Repository) ListAll() ([]Event, error) {
	var events []Event
	err := r.DB.Order("created_at DESC").Find(&events).Error
	return events, err
}

// ListByPeriod returns events whose interval overlaps [start, end]:
// start_date <= end AND end_date >= start, ordered by start date descending.
func (r *Repository) ListByPeriod(start, end time.Time) ([]Event, error) {
	var events []Event
	err := r.DB.
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date DESC").
		Find(&events).Error
	return events, err
}

// ListByMonth returns events whose start_date falls within the calendar month.
func (r *Repository) ListByMonth(year, month int) ([]Event, error) {
	start, end := MonthWindow(year, month)
	var events []Event
	err := r.DB.
		Where("start_date >= ? AND start_date <= ?", start, end).
		Order("start_date DESC").
		Find(&events).Error
	return events, err
}

// ListByQuarter uses overlap semantics over the quarter's 3-month span.
func (r *Repository) ListByQuarter(year, quarter int) ([]Event, error) {
	start, end := QuarterWindow(year, quarter)
	return r.ListByPeriod(start, end)
}

func (r *Repository) ListByStatus(status string) ([]Event, error) {
	var events []Event
	err := r.DB.
		Where("status = ?", status).
		Order("start_date DESC").
		Find(&events).Error
	return events, err
}

// UpdateFields applies a partial update by id.
func (r *Repository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.DB.Model(&Event{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&Event{}).Error
}

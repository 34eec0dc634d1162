package reports

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/minseo-dev/event-marketing-backend/internal/analytics"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
)

// Report period types.
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodCustom    = "custom"
)

// Export formats.
const (
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Report is a saved period report. The summary and channel rollup are
// snapshotted at creation time so a saved report does not drift when events
// are edited afterwards.
type Report struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string         `gorm:"type:varchar(255);not null" json:"title"`
	PeriodType string         `gorm:"type:varchar(20);not null" json:"period_type"`
	StartDate  time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time      `gorm:"type:date;not null" json:"end_date"`
	EventCount int            `gorm:"default:0" json:"event_count"`
	Snapshot   datatypes.JSON `gorm:"type:jsonb" json:"snapshot"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedBy  uint           `json:"created_by"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// CreateReportRequest selects the period to report on. Year plus month or
// quarter for the preset periods, explicit dates for a custom range.
type CreateReportRequest struct {
	Title      string `json:"title"`
	PeriodType string `json:"period_type" binding:"required"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Quarter    int    `json:"quarter"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Notes      string `json:"notes"`
}

// Snapshot is the derived data frozen into a report at creation time.
type Snapshot struct {
	Summary  analytics.Summary        `json:"summary"`
	Channels []analytics.ChannelStats `json:"channels"`
	Events   []event.Event            `json:"events"`
}

// ReportData is what the exporter renders: the persisted report row plus its
// decoded snapshot.
type ReportData struct {
	Report   Report
	Snapshot Snapshot
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntryStatus represents the lifecycle state of a time entry
type TimeEntryStatus string

const (
	TimeEntryStatusActive    TimeEntryStatus = "ACTIVE"
	TimeEntryStatusCompleted TimeEntryStatus = "COMPLETED"
)

// TimeEntry records one continuous clocked-in interval against one
// shift. At most one ACTIVE entry may exist per (user_id, shift_id)
// pair; that invariant lives in a partial unique index created in
// database.Initialize, not in application code.
type TimeEntry struct {
	BaseModel
	UserID     uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	ShiftID    uuid.UUID       `json:"shift_id" gorm:"type:uuid;not null"`
	CompanyID  uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ClockIn    time.Time       `json:"clock_in" gorm:"not null"`
	ClockOut   *time.Time      `json:"clock_out,omitempty"`
	TotalHours float64         `json:"total_hours" gorm:"not null;default:0"`
	Notes      string          `json:"notes" gorm:"size:500" validate:"max=500"`
	Status     TimeEntryStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

// TableName returns the table name for TimeEntry
func (TimeEntry) TableName() string {
	return "time_entries"
}

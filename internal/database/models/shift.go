package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftStatus represents the lifecycle state of a shift
type ShiftStatus string

const (
	ShiftStatusScheduled  ShiftStatus = "SCHEDULED"
	ShiftStatusInProgress ShiftStatus = "IN_PROGRESS"
	ShiftStatusCompleted  ShiftStatus = "COMPLETED"
	ShiftStatusCancelled  ShiftStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s ShiftStatus) Valid() bool {
	switch s {
	case ShiftStatusScheduled, ShiftStatusInProgress, ShiftStatusCompleted, ShiftStatusCancelled:
		return true
	}
	return false
}

// Shift represents a scheduled work interval assigned to one employee.
// AssignedTo and CreatedBy always reference users of the same company.
// Status changes are caller-driven writes; nothing transitions a shift
// on elapsed time.
type Shift struct {
	BaseModel
	Title       string      `json:"title" gorm:"size:100;not null" validate:"required,max=100"`
	StartTime   time.Time   `json:"start_time" gorm:"not null;index:idx_shifts_company_start,priority:2;index:idx_shifts_assigned_start,priority:2"`
	EndTime     time.Time   `json:"end_time" gorm:"not null"`
	AssignedTo  uuid.UUID   `json:"assigned_to" gorm:"type:uuid;not null;index:idx_shifts_assigned_start,priority:1"`
	CompanyID   uuid.UUID   `json:"company_id" gorm:"type:uuid;not null;index:idx_shifts_company_start,priority:1"`
	CreatedBy   uuid.UUID   `json:"created_by" gorm:"type:uuid;not null"`
	Status      ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
	Description string      `json:"description" gorm:"size:500" validate:"max=500"`
	Location    string      `json:"location" gorm:"size:100" validate:"max=100"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

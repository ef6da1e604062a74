package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeEntryService owns the clock-in/clock-out protocol. The
// at-most-one-active-entry invariant is enforced by the store's partial
// unique index, so two concurrent clock-ins for the same (user, shift)
// pair cannot both succeed; this service only translates the resulting
// unique violation. Clocking in is tenant-scoped, not restricted to the
// shift's assignee.
type TimeEntryService struct {
	repo      repository.TimeEntryRepositoryInterface
	shiftRepo repository.ShiftRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewTimeEntryService creates a new time entry service
func NewTimeEntryService(repo repository.TimeEntryRepositoryInterface, shiftRepo repository.ShiftRepositoryInterface, validator *validator.Validate) *TimeEntryService {
	return &TimeEntryService{
		repo:      repo,
		shiftRepo: shiftRepo,
		validator: validator,
		now:       time.Now,
	}
}

// ClockRequest represents a clock-in or clock-out against one shift
type ClockRequest struct {
	ShiftID uuid.UUID `json:"shift_id" validate:"required"`
	Notes   string    `json:"notes" validate:"max=500"`
}

// TimeEntryListFilter narrows List results
type TimeEntryListFilter struct {
	EmployeeID *uuid.UUID
}

// TimeEntryResponse represents the response data for a time entry
type TimeEntryResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	ShiftID    uuid.UUID  `json:"shift_id"`
	CompanyID  uuid.UUID  `json:"company_id"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty"`
	TotalHours float64    `json:"total_hours"`
	Notes      string     `json:"notes"`
	Status     string     `json:"status"`
}

// ComputeTotalHours returns the length of a clocked interval in hours,
// rounded to two decimal places.
func ComputeTotalHours(clockIn, clockOut time.Time) float64 {
	hours := clockOut.Sub(clockIn).Hours()
	return math.Round(hours*100) / 100
}

// ClockIn opens an ACTIVE entry for the caller against a shift of the
// caller's company. A second clock-in for the same pair fails with a
// conflict.
func (s *TimeEntryService) ClockIn(identity auth.Identity, req *ClockRequest) (*TimeEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	shift, err := s.shiftRepo.GetByID(req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("shift_id", "invalid shift")
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	if shift.CompanyID != identity.CompanyID {
		return nil, apperrors.NewValidationError("shift_id", "invalid shift")
	}

	entry := &models.TimeEntry{
		UserID:    identity.UserID,
		ShiftID:   req.ShiftID,
		CompanyID: identity.CompanyID,
		ClockIn:   s.now(),
		Notes:     req.Notes,
		Status:    models.TimeEntryStatusActive,
	}

	if err := s.repo.Create(entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyClockedIn
		}
		return nil, fmt.Errorf("failed to clock in: %w", err)
	}

	return s.convertToResponse(entry), nil
}

// ClockOut completes the caller's ACTIVE entry for the given shift,
// computing the total hours before the write. Notes are overwritten
// only when a new non-empty value is supplied.
func (s *TimeEntryService) ClockOut(identity auth.Identity, req *ClockRequest) (*TimeEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	entry, err := s.repo.GetActiveEntry(identity.UserID, req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveTimeEntry
		}
		return nil, fmt.Errorf("failed to get active time entry: %w", err)
	}

	clockOut := s.now()
	entry.ClockOut = &clockOut
	entry.TotalHours = ComputeTotalHours(entry.ClockIn, clockOut)
	entry.Status = models.TimeEntryStatusCompleted
	if req.Notes != "" {
		entry.Notes = req.Notes
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to clock out: %w", err)
	}

	return s.convertToResponse(entry), nil
}

// ListTimeEntries returns the company's time entries ordered by creation
// time descending. Employees are always restricted to their own entries;
// managers may filter by any employee.
func (s *TimeEntryService) ListTimeEntries(identity auth.Identity, filter TimeEntryListFilter) ([]TimeEntryResponse, error) {
	userID := filter.EmployeeID
	if !identity.IsManager() {
		self := identity.UserID
		userID = &self
	}

	entries, err := s.repo.GetByCompanyID(identity.CompanyID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entries: %w", err)
	}

	responses := make([]TimeEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *s.convertToResponse(&entry)
	}
	return responses, nil
}

// convertToResponse converts a time entry model to response
func (s *TimeEntryService) convertToResponse(entry *models.TimeEntry) *TimeEntryResponse {
	return &TimeEntryResponse{
		ID:         entry.ID,
		UserID:     entry.UserID,
		ShiftID:    entry.ShiftID,
		CompanyID:  entry.CompanyID,
		ClockIn:    entry.ClockIn,
		ClockOut:   entry.ClockOut,
		TotalHours: entry.TotalHours,
		Notes:      entry.Notes,
		Status:     string(entry.Status),
	}
}

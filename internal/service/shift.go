package service

import (
	"errors"
	"fmt"
	"time"

	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService owns the shift lifecycle. Status transitions are
// caller-driven through Update; nothing here moves a shift between
// states on elapsed time.
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateShiftRequest represents the data needed to create a shift
type CreateShiftRequest struct {
	Title       string    `json:"title" validate:"required,max=100"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	AssignedTo  uuid.UUID `json:"assigned_to" validate:"required"`
	Description string    `json:"description" validate:"max=500"`
	Location    string    `json:"location" validate:"max=100"`
}

// UpdateShiftRequest carries a full replacement of the shift's mutable
// fields; callers resend the complete shift, including status. This is
// also the only write path for status transitions.
type UpdateShiftRequest struct {
	Title       string    `json:"title" validate:"required,max=100"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	AssignedTo  uuid.UUID `json:"assigned_to" validate:"required"`
	Status      string    `json:"status" validate:"required"`
	Description string    `json:"description" validate:"max=500"`
	Location    string    `json:"location" validate:"max=100"`
}

// ShiftListFilter narrows List results
type ShiftListFilter struct {
	EmployeeID *uuid.UUID
}

// ShiftResponse represents the response data for a shift
type ShiftResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AssignedTo  uuid.UUID `json:"assigned_to"`
	CompanyID   uuid.UUID `json:"company_id"`
	CreatedBy   uuid.UUID `json:"created_by"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

// CreateShift creates a SCHEDULED shift in the manager's company,
// assigned to an employee of the same company.
func (s *ShiftService) CreateShift(identity auth.Identity, req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !identity.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	assignee, err := s.userRepo.GetByID(req.AssignedTo)
	if err != nil || assignee.CompanyID != identity.CompanyID {
		return nil, apperrors.NewValidationError("assigned_to", "assigned user not found in company")
	}

	shift := &models.Shift{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AssignedTo:  req.AssignedTo,
		CompanyID:   identity.CompanyID,
		CreatedBy:   identity.UserID,
		Status:      models.ShiftStatusScheduled,
		Description: req.Description,
		Location:    req.Location,
	}

	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return s.convertToResponse(shift), nil
}

// GetShift returns one shift. Shifts in another company are reported as
// not found; employees may only read shifts assigned to them.
func (s *ShiftService) GetShift(identity auth.Identity, shiftID uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.getCompanyShift(identity, shiftID)
	if err != nil {
		return nil, err
	}

	if !identity.IsManager() && shift.AssignedTo != identity.UserID {
		return nil, apperrors.ErrShiftNotAssigned
	}

	return s.convertToResponse(shift), nil
}

// ListShifts returns the company's shifts ordered by start time.
// Employees are always restricted to their own shifts regardless of the
// requested filter; managers may filter by any employee.
func (s *ShiftService) ListShifts(identity auth.Identity, filter ShiftListFilter) ([]ShiftResponse, error) {
	assignedTo := filter.EmployeeID
	if !identity.IsManager() {
		self := identity.UserID
		assignedTo = &self
	}

	shifts, err := s.repo.GetByCompanyID(identity.CompanyID, assignedTo)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i, shift := range shifts {
		responses[i] = *s.convertToResponse(&shift)
	}
	return responses, nil
}

// UpdateShift replaces all mutable fields of a shift in the manager's
// company. Unsent fields are not preserved.
func (s *ShiftService) UpdateShift(identity auth.Identity, shiftID uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !identity.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	status := models.ShiftStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status", "invalid shift status")
	}

	shift, err := s.getCompanyShift(identity, shiftID)
	if err != nil {
		return nil, err
	}

	assignee, err := s.userRepo.GetByID(req.AssignedTo)
	if err != nil || assignee.CompanyID != identity.CompanyID {
		return nil, apperrors.NewValidationError("assigned_to", "assigned user not found in company")
	}

	shift.Title = req.Title
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.AssignedTo = req.AssignedTo
	shift.Status = status
	shift.Description = req.Description
	shift.Location = req.Location

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return s.convertToResponse(shift), nil
}

// DeleteShift hard-deletes a shift in the manager's company. Dependent
// time entries are not cascaded.
func (s *ShiftService) DeleteShift(identity auth.Identity, shiftID uuid.UUID) error {
	if !identity.IsManager() {
		return apperrors.ErrManagerOnly
	}

	if _, err := s.getCompanyShift(identity, shiftID); err != nil {
		return err
	}

	if err := s.repo.Delete(shiftID); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// getCompanyShift loads a shift visible to the caller's company. Shifts
// of other companies and missing rows both come back as ErrShiftNotFound;
// any other store failure is surfaced as-is.
func (s *ShiftService) getCompanyShift(identity auth.Identity, shiftID uuid.UUID) (*models.Shift, error) {
	shift, err := s.repo.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	if shift.CompanyID != identity.CompanyID {
		return nil, apperrors.ErrShiftNotFound
	}
	return shift, nil
}

// convertToResponse converts a shift model to response
func (s *ShiftService) convertToResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:          shift.ID,
		Title:       shift.Title,
		StartTime:   shift.StartTime,
		EndTime:     shift.EndTime,
		AssignedTo:  shift.AssignedTo,
		CompanyID:   shift.CompanyID,
		CreatedBy:   shift.CreatedBy,
		Status:      string(shift.Status),
		Description: shift.Description,
		Location:    shift.Location,
	}
}

package service

import (
	"fmt"
	"strings"

	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CompanyService handles business logic for companies (tenants)
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// RegisterCompanyRequest represents the data needed to register a company
// together with its first manager account. This is the only operation
// that runs without a pre-existing identity.
type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,max=255"`
	Password    string `json:"password" validate:"required"`
	ManagerName string `json:"managerName" validate:"required,max=50"`
}

// RegisterCompanyResponse is returned on successful registration
type RegisterCompanyResponse struct {
	CompanyID uuid.UUID `json:"companyId"`
	ManagerID uuid.UUID `json:"managerId"`
}

// UpdateCompanyRequest represents a partial settings update; nil fields
// retain their previous values.
type UpdateCompanyRequest struct {
	CompanyID         uuid.UUID `json:"companyId" validate:"required"`
	Name              *string   `json:"name" validate:"omitempty,max=100"`
	Email             *string   `json:"email" validate:"omitempty,max=255"`
	Timezone          *string   `json:"timezone"`
	WorkingHoursStart *string   `json:"workingHoursStart"`
	WorkingHoursEnd   *string   `json:"workingHoursEnd"`
}

// CompanyResponse represents the response data for a company
type CompanyResponse struct {
	ID       uuid.UUID              `json:"id"`
	Name     string                 `json:"name"`
	Email    string                 `json:"email"`
	Settings models.CompanySettings `json:"settings"`
}

// Register atomically creates a company and its first MANAGER user.
// Fails with a conflict if the email already identifies a company, or a
// user, since the manager account could not be created either way.
func (s *CompanyService) Register(req *RegisterCompanyRequest) (*RegisterCompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !isValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email", "invalid email format")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrCompanyExists
	}
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:  req.CompanyName,
		Email: req.Email,
		Settings: models.CompanySettings{
			Timezone:          "UTC",
			WorkingHoursStart: "09:00",
			WorkingHoursEnd:   "17:00",
		},
	}
	manager := &models.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.ManagerName,
		Role:     models.UserRoleManager,
		IsActive: true,
	}

	if err := s.repo.CreateWithManager(company, manager); err != nil {
		if repository.IsUniqueViolation(err) {
			// Lost a race past the pre-checks above. The users table rejects
			// the manager row, the companies table rejects the company row.
			if strings.Contains(repository.UniqueConstraint(err), "users") {
				return nil, apperrors.ErrUserExists
			}
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to register company: %w", err)
	}

	return &RegisterCompanyResponse{
		CompanyID: company.ID,
		ManagerID: manager.ID,
	}, nil
}

// GetCompany returns the acting manager's own company
func (s *CompanyService) GetCompany(identity auth.Identity) (*CompanyResponse, error) {
	if !identity.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}

	company, err := s.repo.GetByID(identity.CompanyID)
	if err != nil {
		return nil, apperrors.ErrCompanyNotFound
	}

	return s.convertToResponse(company), nil
}

// UpdateSettings applies a partial update to the manager's own company.
// Unset fields keep their previous values.
func (s *CompanyService) UpdateSettings(identity auth.Identity, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !identity.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}
	if req.CompanyID != identity.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	if req.Email != nil && !isValidEmail(*req.Email) {
		return nil, apperrors.NewValidationError("email", "invalid email format")
	}
	if req.Timezone != nil && !isValidTimezone(*req.Timezone) {
		return nil, apperrors.NewValidationError("timezone", "invalid timezone format")
	}
	if req.WorkingHoursStart != nil && !isValidTimeOfDay(*req.WorkingHoursStart) {
		return nil, apperrors.NewValidationError("workingHoursStart", "invalid time format (e.g., 09:00)")
	}
	if req.WorkingHoursEnd != nil && !isValidTimeOfDay(*req.WorkingHoursEnd) {
		return nil, apperrors.NewValidationError("workingHoursEnd", "invalid time format (e.g., 09:00)")
	}

	company, err := s.repo.GetByID(req.CompanyID)
	if err != nil {
		return nil, apperrors.ErrCompanyNotFound
	}

	// Reject an email already held by a different company
	if req.Email != nil && *req.Email != company.Email {
		if existing, err := s.repo.GetByEmail(*req.Email); err == nil && existing != nil && existing.ID != company.ID {
			return nil, apperrors.ErrCompanyExists
		}
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Timezone != nil {
		company.Settings.Timezone = *req.Timezone
	}
	if req.WorkingHoursStart != nil {
		company.Settings.WorkingHoursStart = *req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		company.Settings.WorkingHoursEnd = *req.WorkingHoursEnd
	}

	if err := s.repo.Update(company); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.convertToResponse(company), nil
}

// convertToResponse converts a company model to response
func (s *CompanyService) convertToResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:       company.ID,
		Name:     company.Name,
		Email:    company.Email,
		Settings: company.Settings,
	}
}

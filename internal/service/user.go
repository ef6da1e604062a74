package service

import (
	"fmt"

	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles business logic for employee accounts. Every
// mutation is manager-only and scoped to the manager's own company;
// lookups that land on another company report NotFound.
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Email      string    `json:"email" validate:"required,max=255"`
	Password   string    `json:"password" validate:"required"`
	Name       string    `json:"name" validate:"required,max=50"`
	Role       string    `json:"role" validate:"required"`
	CompanyID  uuid.UUID `json:"company_id" validate:"required"`
	Phone      string    `json:"phone" validate:"max=20"`
	Position   string    `json:"position" validate:"max=100"`
	Department string    `json:"department" validate:"max=100"`
}

// UpdateUserRequest represents the data needed to update a user
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Email string `json:"email" validate:"required,max=255"`
	Role  string `json:"role" validate:"required"`
}

// UserResponse represents the response data for a user; the credential
// field is never included.
type UserResponse struct {
	ID        uuid.UUID          `json:"id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
	CompanyID uuid.UUID          `json:"company_id"`
	Profile   models.UserProfile `json:"profile"`
	IsActive  bool               `json:"is_active"`
}

// ListUsers returns the employees of the acting manager's company
func (s *UserService) ListUsers(identity auth.Identity) ([]UserResponse, error) {
	if !identity.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}

	users, err := s.repo.GetByCompanyID(identity.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.convertToResponse(&user)
	}
	return responses, nil
}

// CreateUser creates a new employee account in the manager's company
func (s *UserService) CreateUser(identity auth.Identity, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !identity.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}
	if req.CompanyID != identity.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role", "role must be MANAGER or EMPLOYEE")
	}
	if !isValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email", "invalid email format")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		Name:      req.Name,
		Role:      role,
		CompanyID: identity.CompanyID,
		Profile: models.UserProfile{
			Phone:      req.Phone,
			Position:   req.Position,
			Department: req.Department,
		},
		IsActive: true,
	}

	if err := s.repo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.convertToResponse(user), nil
}

// UpdateUser updates name, email and role of an employee in the
// manager's company. CompanyID is immutable and never touched here.
func (s *UserService) UpdateUser(identity auth.Identity, userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !identity.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}

	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role", "role must be MANAGER or EMPLOYEE")
	}
	if !isValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email", "invalid email format")
	}

	user, err := s.repo.GetByID(userID)
	if err != nil || user.CompanyID != identity.CompanyID {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Email != user.Email {
		if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil && existing.ID != user.ID {
			return nil, apperrors.ErrUserExists
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = role

	if err := s.repo.Update(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.convertToResponse(user), nil
}

// DeleteUser hard-deletes an employee of the manager's company.
// Historical shifts and time entries keep the stale reference.
func (s *UserService) DeleteUser(identity auth.Identity, userID uuid.UUID) error {
	if !identity.IsManager() {
		return apperrors.ErrManagerOnly
	}

	user, err := s.repo.GetByID(userID)
	if err != nil || user.CompanyID != identity.CompanyID {
		return apperrors.ErrUserNotFound
	}

	if err := s.repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// convertToResponse converts a user model to response
func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
		Profile:   user.Profile,
		IsActive:  user.IsActive,
	}
}

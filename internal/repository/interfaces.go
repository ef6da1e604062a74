package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	CreateWithManager(company *models.Company, manager *models.User) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByEmail(email string) (*models.Company, error)
	Update(company *models.Company) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByCompanyID(companyID uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByCompanyID(companyID uuid.UUID, assignedTo *uuid.UUID) ([]models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
}

// TimeEntryRepositoryInterface defines the interface for time entry repository operations
type TimeEntryRepositoryInterface interface {
	Create(entry *models.TimeEntry) error
	GetByID(id uuid.UUID) (*models.TimeEntry, error)
	GetActiveEntry(userID, shiftID uuid.UUID) (*models.TimeEntry, error)
	GetByCompanyID(companyID uuid.UUID, userID *uuid.UUID) ([]models.TimeEntry, error)
	Update(entry *models.TimeEntry) error
}

package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByCompanyID retrieves shifts for a company, optionally filtered by
// assignee, ordered by start time ascending
func (r *ShiftRepository) GetByCompanyID(companyID uuid.UUID, assignedTo *uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	query := r.db.Where("company_id = ?", companyID)
	if assignedTo != nil {
		query = query.Where("assigned_to = ?", *assignedTo)
	}
	err := query.Order("start_time ASC").Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift. Dependent time entries are not cascaded; they
// keep the stale shift reference as audit history.
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}

package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeEntryRepository handles database operations for time entries
type TimeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new time entry repository
func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Create inserts a new time entry. When the entry is ACTIVE, the partial
// unique index on (user_id, shift_id) rejects a second active row; the
// caller detects that with IsUniqueViolation.
func (r *TimeEntryRepository) Create(entry *models.TimeEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a time entry by ID
func (r *TimeEntryRepository) GetByID(id uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetActiveEntry retrieves the ACTIVE entry for a (user, shift) pair
func (r *TimeEntryRepository) GetActiveEntry(userID, shiftID uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.First(&entry,
		"user_id = ? AND shift_id = ? AND status = ?",
		userID, shiftID, models.TimeEntryStatusActive,
	).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByCompanyID retrieves time entries for a company, optionally
// filtered by user, ordered by creation time descending
func (r *TimeEntryRepository) GetByCompanyID(companyID uuid.UUID, userID *uuid.UUID) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	query := r.db.Where("company_id = ?", companyID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Update updates a time entry
func (r *TimeEntryRepository) Update(entry *models.TimeEntry) error {
	return r.db.Save(entry).Error
}

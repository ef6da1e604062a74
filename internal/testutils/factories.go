package testutils

import (
	"fmt"
	"time"

	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Test Company",
		Email: fmt.Sprintf("company-%s@test.com", id.String()[:8]),
		Settings: models.CompanySettings{
			Timezone:          "UTC",
			WorkingHoursStart: "09:00",
			WorkingHoursEnd:   "17:00",
		},
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// WithEmail sets a custom email for the company
func (f *CompanyFactory) WithEmail(email string) *models.Company {
	company := f.Create()
	company.Email = email
	return company
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email is made
// unique from the generated ID to avoid collisions between rows.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Password:  "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW",
		Name:      "John Doe",
		Role:      models.UserRoleEmployee,
		CompanyID: uuid.New(),
		IsActive:  true,
	}
}

// WithCompany sets the company ID for the user
func (f *UserFactory) WithCompany(companyID uuid.UUID) *models.User {
	user := f.Create()
	user.CompanyID = companyID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Manager creates a manager in the given company
func (f *UserFactory) Manager(companyID uuid.UUID) *models.User {
	user := f.Create()
	user.CompanyID = companyID
	user.Role = models.UserRoleManager
	user.Name = "Jane Manager"
	return user
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values
func (f *ShiftFactory) Create() *models.Shift {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Morning Shift",
		StartTime:   start,
		EndTime:     start.Add(8 * time.Hour),
		AssignedTo:  uuid.New(),
		CompanyID:   uuid.New(),
		CreatedBy:   uuid.New(),
		Status:      models.ShiftStatusScheduled,
		Description: "A test shift",
		Location:    "Main office",
	}
}

// WithCompany sets the company ID for the shift
func (f *ShiftFactory) WithCompany(companyID uuid.UUID) *models.Shift {
	shift := f.Create()
	shift.CompanyID = companyID
	return shift
}

// WithAssignee sets the assigned user and company for the shift
func (f *ShiftFactory) WithAssignee(user *models.User) *models.Shift {
	shift := f.Create()
	shift.AssignedTo = user.ID
	shift.CompanyID = user.CompanyID
	return shift
}

// WithTimes sets custom start and end times for the shift
func (f *ShiftFactory) WithTimes(start, end time.Time) *models.Shift {
	shift := f.Create()
	shift.StartTime = start
	shift.EndTime = end
	return shift
}

// WithStatus sets a custom status for the shift
func (f *ShiftFactory) WithStatus(status models.ShiftStatus) *models.Shift {
	shift := f.Create()
	shift.Status = status
	return shift
}

// TimeEntryFactory provides methods to create test TimeEntry data
type TimeEntryFactory struct{}

// NewTimeEntryFactory creates a new TimeEntryFactory
func NewTimeEntryFactory() *TimeEntryFactory {
	return &TimeEntryFactory{}
}

// Create creates an active test TimeEntry with default values
func (f *TimeEntryFactory) Create() *models.TimeEntry {
	return &models.TimeEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    uuid.New(),
		ShiftID:   uuid.New(),
		CompanyID: uuid.New(),
		ClockIn:   time.Now().Add(-2 * time.Hour),
		Status:    models.TimeEntryStatusActive,
	}
}

// ForShift sets the user, shift and company for the entry
func (f *TimeEntryFactory) ForShift(user *models.User, shift *models.Shift) *models.TimeEntry {
	entry := f.Create()
	entry.UserID = user.ID
	entry.ShiftID = shift.ID
	entry.CompanyID = user.CompanyID
	return entry
}

// Completed creates a completed entry with clock-out and total hours set
func (f *TimeEntryFactory) Completed(user *models.User, shift *models.Shift) *models.TimeEntry {
	entry := f.ForShift(user, shift)
	clockOut := entry.ClockIn.Add(2 * time.Hour)
	entry.ClockOut = &clockOut
	entry.TotalHours = 2
	entry.Status = models.TimeEntryStatusCompleted
	return entry
}

// FactorySet provides access to all factories
type FactorySet struct {
	Company   *CompanyFactory
	User      *UserFactory
	Shift     *ShiftFactory
	TimeEntry *TimeEntryFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:   NewCompanyFactory(),
		User:      NewUserFactory(),
		Shift:     NewShiftFactory(),
		TimeEntry: NewTimeEntryFactory(),
	}
}

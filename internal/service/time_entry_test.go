package service_test

import (
	"errors"
	"testing"
	"time"

	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/mocks"
	"shiftboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TimeEntryServiceTestSuite defines the test suite for TimeEntryService
type TimeEntryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEntryRepo    *mocks.MockTimeEntryRepositoryInterface
	mockShiftRepo    *mocks.MockShiftRepositoryInterface
	timeEntryService *service.TimeEntryService
	validator        *validator.Validate
	companyID        uuid.UUID
	manager          auth.Identity
	employee         auth.Identity
}

// SetupTest sets up the test suite
func (suite *TimeEntryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEntryRepo = mocks.NewMockTimeEntryRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.timeEntryService = service.NewTimeEntryService(suite.mockEntryRepo, suite.mockShiftRepo, suite.validator)

	suite.companyID = uuid.New()
	suite.manager = auth.Identity{
		UserID:    uuid.New(),
		Role:      models.UserRoleManager,
		CompanyID: suite.companyID,
	}
	suite.employee = auth.Identity{
		UserID:    uuid.New(),
		Role:      models.UserRoleEmployee,
		CompanyID: suite.companyID,
	}
}

// TearDownTest cleans up after each test
func (suite *TimeEntryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TimeEntryServiceTestSuite) companyShift(shiftID uuid.UUID) *models.Shift {
	return &models.Shift{
		BaseModel:  models.BaseModel{ID: shiftID},
		Title:      "Morning Shift",
		AssignedTo: suite.employee.UserID,
		CompanyID:  suite.companyID,
		Status:     models.ShiftStatusScheduled,
	}
}

// TestClockIn tests opening an active entry
func (suite *TimeEntryServiceTestSuite) TestClockIn() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID, Notes: "starting"}

	suite.mockShiftRepo.EXPECT().
		GetByID(shiftID).
		Return(suite.companyShift(shiftID), nil).
		Times(1)
	suite.mockEntryRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.TimeEntry) error {
			assert.Equal(suite.T(), suite.employee.UserID, entry.UserID)
			assert.Equal(suite.T(), suite.companyID, entry.CompanyID)
			assert.Equal(suite.T(), models.TimeEntryStatusActive, entry.Status)
			assert.Nil(suite.T(), entry.ClockOut)
			entry.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.timeEntryService.ClockIn(suite.employee, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "ACTIVE", response.Status)
	assert.Equal(suite.T(), "starting", response.Notes)
	assert.Zero(suite.T(), response.TotalHours)
}

// TestClockInUnknownShift tests clocking in against a missing shift
func (suite *TimeEntryServiceTestSuite) TestClockInUnknownShift() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID}

	suite.mockShiftRepo.EXPECT().
		GetByID(shiftID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.timeEntryService.ClockIn(suite.employee, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestClockInCrossTenantShift tests clocking in against another company's shift
func (suite *TimeEntryServiceTestSuite) TestClockInCrossTenantShift() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID}

	shift := suite.companyShift(shiftID)
	shift.CompanyID = uuid.New()

	suite.mockShiftRepo.EXPECT().
		GetByID(shiftID).
		Return(shift, nil).
		Times(1)

	response, err := suite.timeEntryService.ClockIn(suite.employee, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestClockInAlreadyActive tests the double clock-in conflict surfaced by the unique index
func (suite *TimeEntryServiceTestSuite) TestClockInAlreadyActive() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID}

	suite.mockShiftRepo.EXPECT().
		GetByID(shiftID).
		Return(suite.companyShift(shiftID), nil).
		Times(1)
	suite.mockEntryRepo.EXPECT().
		Create(gomock.Any()).
		Return(&pgconn.PgError{Code: "23505"}).
		Times(1)

	response, err := suite.timeEntryService.ClockIn(suite.employee, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestClockOut tests completing the active entry
func (suite *TimeEntryServiceTestSuite) TestClockOut() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID}

	entry := &models.TimeEntry{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    suite.employee.UserID,
		ShiftID:   shiftID,
		CompanyID: suite.companyID,
		ClockIn:   time.Now().Add(-2 * time.Hour),
		Notes:     "starting",
		Status:    models.TimeEntryStatusActive,
	}

	suite.mockEntryRepo.EXPECT().
		GetActiveEntry(suite.employee.UserID, shiftID).
		Return(entry, nil).
		Times(1)
	suite.mockEntryRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.timeEntryService.ClockOut(suite.employee, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "COMPLETED", response.Status)
	assert.NotNil(suite.T(), response.ClockOut)
	assert.InDelta(suite.T(), 2.0, response.TotalHours, 0.01)
	// Empty notes on clock-out keep the clock-in notes
	assert.Equal(suite.T(), "starting", response.Notes)
}

// TestClockOutOverwritesNotes tests that non-empty notes replace the old value
func (suite *TimeEntryServiceTestSuite) TestClockOutOverwritesNotes() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID, Notes: "wrapped up"}

	entry := &models.TimeEntry{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    suite.employee.UserID,
		ShiftID:   shiftID,
		CompanyID: suite.companyID,
		ClockIn:   time.Now().Add(-30 * time.Minute),
		Notes:     "starting",
		Status:    models.TimeEntryStatusActive,
	}

	suite.mockEntryRepo.EXPECT().
		GetActiveEntry(suite.employee.UserID, shiftID).
		Return(entry, nil).
		Times(1)
	suite.mockEntryRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.timeEntryService.ClockOut(suite.employee, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "wrapped up", response.Notes)
}

// TestClockOutNoActiveEntry tests clocking out without an open entry
func (suite *TimeEntryServiceTestSuite) TestClockOutNoActiveEntry() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID}

	suite.mockEntryRepo.EXPECT().
		GetActiveEntry(suite.employee.UserID, shiftID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.timeEntryService.ClockOut(suite.employee, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
}

// TestClockOutStoreFailure tests that store failures are not reported as a missing active entry
func (suite *TimeEntryServiceTestSuite) TestClockOutStoreFailure() {
	shiftID := uuid.New()
	req := &service.ClockRequest{ShiftID: shiftID}

	suite.mockEntryRepo.EXPECT().
		GetActiveEntry(suite.employee.UserID, shiftID).
		Return(nil, errors.New("connection refused")).
		Times(1)

	response, err := suite.timeEntryService.ClockOut(suite.employee, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.False(suite.T(), apperrors.IsInvalidState(err))
}

// TestListTimeEntriesManagerFilter tests that managers can filter by employee
func (suite *TimeEntryServiceTestSuite) TestListTimeEntriesManagerFilter() {
	target := uuid.New()
	filter := service.TimeEntryListFilter{EmployeeID: &target}

	suite.mockEntryRepo.EXPECT().
		GetByCompanyID(suite.companyID, &target).
		Return([]models.TimeEntry{}, nil).
		Times(1)

	responses, err := suite.timeEntryService.ListTimeEntries(suite.manager, filter)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), responses)
}

// TestListTimeEntriesEmployeeForcedSelf tests that an employee's filter is overridden
func (suite *TimeEntryServiceTestSuite) TestListTimeEntriesEmployeeForcedSelf() {
	other := uuid.New()
	filter := service.TimeEntryListFilter{EmployeeID: &other}

	suite.mockEntryRepo.EXPECT().
		GetByCompanyID(suite.companyID, gomock.Any()).
		DoAndReturn(func(companyID uuid.UUID, userID *uuid.UUID) ([]models.TimeEntry, error) {
			assert.NotNil(suite.T(), userID)
			assert.Equal(suite.T(), suite.employee.UserID, *userID)
			return []models.TimeEntry{}, nil
		}).
		Times(1)

	responses, err := suite.timeEntryService.ListTimeEntries(suite.employee, filter)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), responses)
}

// TestTimeEntryServiceTestSuite runs the test suite
func TestTimeEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeEntryServiceTestSuite))
}

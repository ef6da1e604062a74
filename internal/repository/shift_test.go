//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftRepositoryTestSuite tests the ShiftRepository
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new shift
func (suite *ShiftRepositoryTestSuite) TestCreate() {
	shift := suite.factories.Shift.Create()

	err := suite.repo.Create(shift)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, shift.ID)
	suite.NotZero(shift.CreatedAt)
}

// TestGetByID tests retrieving a shift by ID
func (suite *ShiftRepositoryTestSuite) TestGetByID() {
	shift := suite.factories.Shift.Create()
	shift.Location = "Warehouse B"
	err := suite.repo.Create(shift)
	suite.NoError(err)

	found, err := suite.repo.GetByID(shift.ID)

	suite.NoError(err)
	suite.Equal(shift.Title, found.Title)
	suite.Equal("Warehouse B", found.Location)
	suite.Equal(models.ShiftStatusScheduled, found.Status)
	suite.WithinDuration(shift.StartTime, found.StartTime, time.Second)
}

// TestGetByIDNotFound tests retrieving a non-existent shift
func (suite *ShiftRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByCompanyID tests tenant scoping and start time ordering
func (suite *ShiftRepositoryTestSuite) TestGetByCompanyID() {
	companyID := uuid.New()
	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)

	later := suite.factories.Shift.WithTimes(base.Add(8*time.Hour), base.Add(16*time.Hour))
	later.CompanyID = companyID
	earlier := suite.factories.Shift.WithTimes(base, base.Add(8*time.Hour))
	earlier.CompanyID = companyID
	other := suite.factories.Shift.Create()

	suite.NoError(suite.repo.Create(later))
	suite.NoError(suite.repo.Create(earlier))
	suite.NoError(suite.repo.Create(other))

	shifts, err := suite.repo.GetByCompanyID(companyID, nil)

	suite.NoError(err)
	suite.Len(shifts, 2)
	suite.Equal(earlier.ID, shifts[0].ID)
	suite.Equal(later.ID, shifts[1].ID)
}

// TestGetByCompanyIDFilteredByAssignee tests the assignee filter
func (suite *ShiftRepositoryTestSuite) TestGetByCompanyIDFilteredByAssignee() {
	companyID := uuid.New()
	employee := suite.factories.User.WithCompany(companyID)

	mine := suite.factories.Shift.WithAssignee(employee)
	someoneElses := suite.factories.Shift.WithCompany(companyID)

	suite.NoError(suite.repo.Create(mine))
	suite.NoError(suite.repo.Create(someoneElses))

	shifts, err := suite.repo.GetByCompanyID(companyID, &employee.ID)

	suite.NoError(err)
	suite.Len(shifts, 1)
	suite.Equal(mine.ID, shifts[0].ID)
}

// TestUpdate tests updating a shift
func (suite *ShiftRepositoryTestSuite) TestUpdate() {
	shift := suite.factories.Shift.Create()
	err := suite.repo.Create(shift)
	suite.NoError(err)

	shift.Title = "Evening Shift"
	shift.Status = models.ShiftStatusInProgress
	shift.Description = ""
	err = suite.repo.Update(shift)
	suite.NoError(err)

	found, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal("Evening Shift", found.Title)
	suite.Equal(models.ShiftStatusInProgress, found.Status)
	suite.Empty(found.Description)
}

// TestDelete tests deleting a shift
func (suite *ShiftRepositoryTestSuite) TestDelete() {
	shift := suite.factories.Shift.Create()
	err := suite.repo.Create(shift)
	suite.NoError(err)

	err = suite.repo.Delete(shift.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(shift.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}

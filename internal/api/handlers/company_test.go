package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shiftboard-backend/internal/api/handlers"
	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/mocks"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// identityMiddleware injects a fixed identity the way RequireAuth would
// after validating a token
func identityMiddleware(identity auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetIdentity(c, identity)
		c.Next()
	}
}

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(payload)
	assert.NoError(t, err)
	return bytes.NewReader(data)
}

// CompanyHandlerTestSuite defines the test suite for CompanyHandler
type CompanyHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	handler         *handlers.CompanyHandler
	router          *gin.Engine
	manager         auth.Identity
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	companyService := service.NewCompanyService(suite.mockCompanyRepo, suite.mockUserRepo, validator.New())
	suite.handler = handlers.NewCompanyHandler(companyService)

	suite.manager = auth.Identity{
		UserID:    uuid.New(),
		Role:      models.UserRoleManager,
		CompanyID: uuid.New(),
		Name:      "Jane Manager",
	}

	suite.router = gin.New()
	suite.router.POST("/api/companies/register", suite.handler.Register)
	authed := suite.router.Group("/api/v1", identityMiddleware(suite.manager))
	authed.GET("/company", suite.handler.GetCompany)
	authed.PUT("/company", suite.handler.UpdateCompany)
}

func (suite *CompanyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyHandlerTestSuite) TestRegister_Success() {
	companyID := uuid.New()
	managerID := uuid.New()

	suite.mockCompanyRepo.EXPECT().GetByEmail("ops@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail("ops@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().
		CreateWithManager(gomock.Any(), gomock.Any()).
		DoAndReturn(func(company *models.Company, manager *models.User) error {
			company.ID = companyID
			manager.ID = managerID
			return nil
		})

	body := jsonBody(suite.T(), map[string]string{
		"companyName": "Acme Staffing",
		"email":       "ops@acme.com",
		"password":    "secret123",
		"managerName": "Grace",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/companies/register", body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.RegisterCompanyResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), companyID, got.CompanyID)
	assert.Equal(suite.T(), managerID, got.ManagerID)
}

func (suite *CompanyHandlerTestSuite) TestRegister_DuplicateEmail_Conflict() {
	existing := &models.Company{Name: "Taken"}
	suite.mockCompanyRepo.EXPECT().GetByEmail("ops@acme.com").Return(existing, nil)

	body := jsonBody(suite.T(), map[string]string{
		"companyName": "Acme Staffing",
		"email":       "ops@acme.com",
		"password":    "secret123",
		"managerName": "Grace",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/companies/register", body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *CompanyHandlerTestSuite) TestRegister_MissingFields_BadRequest() {
	body := jsonBody(suite.T(), map[string]string{"companyName": "Acme Staffing"})
	req := httptest.NewRequest(http.MethodPost, "/api/companies/register", body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CompanyHandlerTestSuite) TestGetCompany_Success() {
	company := &models.Company{
		Name:  "Acme Staffing",
		Email: "ops@acme.com",
		Settings: models.CompanySettings{
			Timezone:          "UTC",
			WorkingHoursStart: "09:00",
			WorkingHoursEnd:   "17:00",
		},
	}
	company.ID = suite.manager.CompanyID
	suite.mockCompanyRepo.EXPECT().GetByID(suite.manager.CompanyID).Return(company, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/company", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CompanyResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Staffing", got.Name)
	assert.Equal(suite.T(), "UTC", got.Settings.Timezone)
}

func (suite *CompanyHandlerTestSuite) TestGetCompany_Employee_Forbidden() {
	employee := auth.Identity{
		UserID:    uuid.New(),
		Role:      models.UserRoleEmployee,
		CompanyID: suite.manager.CompanyID,
	}
	router := gin.New()
	router.GET("/api/v1/company", identityMiddleware(employee), suite.handler.GetCompany)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/company", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *CompanyHandlerTestSuite) TestGetCompany_NoIdentity_Unauthorized() {
	router := gin.New()
	router.GET("/api/v1/company", suite.handler.GetCompany)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/company", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_PartialUpdate_Success() {
	company := &models.Company{
		Name:  "Acme Staffing",
		Email: "ops@acme.com",
		Settings: models.CompanySettings{
			Timezone:          "UTC",
			WorkingHoursStart: "09:00",
			WorkingHoursEnd:   "17:00",
		},
	}
	company.ID = suite.manager.CompanyID
	suite.mockCompanyRepo.EXPECT().GetByID(suite.manager.CompanyID).Return(company, nil)
	suite.mockCompanyRepo.EXPECT().Update(gomock.Any()).Return(nil)

	body := jsonBody(suite.T(), map[string]string{"timezone": "Europe/Berlin"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/company", body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CompanyResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Europe/Berlin", got.Settings.Timezone)
	// Unset fields keep their previous values
	assert.Equal(suite.T(), "09:00", got.Settings.WorkingHoursStart)
	assert.Equal(suite.T(), "Acme Staffing", got.Name)
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_InvalidTimeFormat_BadRequest() {
	body := jsonBody(suite.T(), map[string]string{"workingHoursStart": "9am"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/company", body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// Run the test suite
func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}

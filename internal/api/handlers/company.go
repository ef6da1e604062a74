package handlers

import (
	"net/http"

	"shiftboard-backend/internal/auth"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// Register handles POST /api/companies/register
// @Summary Register a new company
// @Description Create a company together with its first manager account in a single transaction
// @Tags companies
// @Accept json
// @Produce json
// @Param registration body service.RegisterCompanyRequest true "Company registration data"
// @Success 201 {object} service.RegisterCompanyResponse "Successfully registered company"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Company or user email already registered"
// @Router /api/companies/register [post]
func (h *CompanyHandler) Register(c *gin.Context) {
	var req service.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.companyService.Register(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetCompany handles GET /api/v1/company
// @Summary Get current company
// @Description Get the authenticated manager's company including its settings
// @Tags companies
// @Accept json
// @Produce json
// @Success 200 {object} service.CompanyResponse "Company details"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Security BearerAuth
// @Router /api/v1/company [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	response, err := h.companyService.GetCompany(identity)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateCompanyBody represents the expected request body for PUT /company
type UpdateCompanyBody struct {
	Name              *string `json:"name"`
	Email             *string `json:"email"`
	Timezone          *string `json:"timezone"`
	WorkingHoursStart *string `json:"workingHoursStart"`
	WorkingHoursEnd   *string `json:"workingHoursEnd"`
}

// UpdateCompany handles PUT /api/v1/company
// @Summary Update company settings
// @Description Update the authenticated manager's company profile and settings; omitted fields are left unchanged
// @Tags companies
// @Accept json
// @Produce json
// @Param company body UpdateCompanyBody true "Company fields to update"
// @Success 200 {object} service.CompanyResponse "Updated company"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /api/v1/company [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	var body UpdateCompanyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := service.UpdateCompanyRequest{
		CompanyID:         identity.CompanyID,
		Name:              body.Name,
		Email:             body.Email,
		Timezone:          body.Timezone,
		WorkingHoursStart: body.WorkingHoursStart,
		WorkingHoursEnd:   body.WorkingHoursEnd,
	}

	response, err := h.companyService.UpdateSettings(identity, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

package handlers

import (
	"net/http"

	"shiftboard-backend/internal/auth"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for shifts
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// ListShifts handles GET /api/v1/shifts
// @Summary List shifts
// @Description List company shifts ordered by start time. Managers may filter by userId; employees always see only their own shifts
// @Tags shifts
// @Accept json
// @Produce json
// @Param userId query string false "Filter by assigned user ID (managers only)"
// @Success 200 {array} service.ShiftResponse "Shifts"
// @Failure 400 {object} ErrorResponse "Invalid userId"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/v1/shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	var filter service.ShiftListFilter
	if raw := c.Query("userId"); raw != "" {
		employeeID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
			return
		}
		filter.EmployeeID = &employeeID
	}

	shifts, err := h.shiftService.ListShifts(identity, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetShift handles GET /api/v1/shifts/:id
// @Summary Get a shift
// @Description Get a single shift by ID. Employees may only read shifts assigned to them
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse "Shift details"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 403 {object} ErrorResponse "Shift is not assigned to the caller"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /api/v1/shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	response, err := h.shiftService.GetShift(identity, shiftID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateShift handles POST /api/v1/shifts
// @Summary Create a new shift
// @Description Schedule a new shift for an employee of the caller's company
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Successfully created shift"
// @Failure 400 {object} ErrorResponse "Invalid request body or time range"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Security BearerAuth
// @Router /api/v1/shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.shiftService.CreateShift(identity, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateShift handles PUT /api/v1/shifts/:id
// @Summary Update a shift
// @Description Replace all mutable fields of a shift, including its status
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param shift body service.UpdateShiftRequest true "Shift data"
// @Success 200 {object} service.ShiftResponse "Updated shift"
// @Failure 400 {object} ErrorResponse "Invalid request body, shift ID or status"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /api/v1/shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.shiftService.UpdateShift(identity, shiftID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteShift handles DELETE /api/v1/shifts/:id
// @Summary Delete a shift
// @Description Permanently delete a shift from the caller's company
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Success 204 "Shift deleted"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /api/v1/shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift ID"})
		return
	}

	if err := h.shiftService.DeleteShift(identity, shiftID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

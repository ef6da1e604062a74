package handlers

import (
	"net/http"

	"shiftboard-backend/internal/auth"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Clock actions accepted by POST /time-entries
const (
	ActionClockIn  = "clock-in"
	ActionClockOut = "clock-out"
)

// TimeEntryHandler handles HTTP requests for time entries
type TimeEntryHandler struct {
	timeEntryService *service.TimeEntryService
}

// NewTimeEntryHandler creates a new time entry handler
func NewTimeEntryHandler(timeEntryService *service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		timeEntryService: timeEntryService,
	}
}

// ClockBody represents the expected request body for POST /time-entries
type ClockBody struct {
	ShiftID uuid.UUID `json:"shift_id" binding:"required"`
	Action  string    `json:"action" binding:"required"`
	Notes   string    `json:"notes"`
}

// Clock handles POST /api/v1/time-entries
// @Summary Clock in or out
// @Description Record a clock-in or clock-out against a shift for the authenticated user
// @Tags time-entries
// @Accept json
// @Produce json
// @Param entry body ClockBody true "Clock action"
// @Success 200 {object} service.TimeEntryResponse "Completed time entry after clock-out"
// @Success 201 {object} service.TimeEntryResponse "Active time entry after clock-in"
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown action"
// @Failure 409 {object} ErrorResponse "Already clocked in for this shift"
// @Failure 422 {object} ErrorResponse "No active time entry to clock out"
// @Security BearerAuth
// @Router /api/v1/time-entries [post]
func (h *TimeEntryHandler) Clock(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	var body ClockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := service.ClockRequest{
		ShiftID: body.ShiftID,
		Notes:   body.Notes,
	}

	switch body.Action {
	case ActionClockIn:
		response, err := h.timeEntryService.ClockIn(identity, &req)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, response)
	case ActionClockOut:
		response, err := h.timeEntryService.ClockOut(identity, &req)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be clock-in or clock-out"})
	}
}

// ListTimeEntries handles GET /api/v1/time-entries
// @Summary List time entries
// @Description List company time entries ordered by creation time, newest first. Managers may filter by userId; employees always see only their own entries
// @Tags time-entries
// @Accept json
// @Produce json
// @Param userId query string false "Filter by user ID (managers only)"
// @Success 200 {array} service.TimeEntryResponse "Time entries"
// @Failure 400 {object} ErrorResponse "Invalid userId"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/v1/time-entries [get]
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	var filter service.TimeEntryListFilter
	if raw := c.Query("userId"); raw != "" {
		employeeID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
			return
		}
		filter.EmployeeID = &employeeID
	}

	entries, err := h.timeEntryService.ListTimeEntries(identity, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

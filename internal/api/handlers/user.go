package handlers

import (
	"net/http"

	"shiftboard-backend/internal/auth"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /api/v1/users
// @Summary List company users
// @Description List all users belonging to the authenticated manager's company, ordered by name
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {array} service.UserResponse "Company users"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	users, err := h.userService.ListUsers(identity)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUserBody represents the expected request body for POST /users
type CreateUserBody struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

// CreateUser handles POST /api/v1/users
// @Summary Create a new user
// @Description Create a new employee or manager account in the caller's company
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserBody true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	var body CreateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := service.CreateUserRequest{
		Email:      body.Email,
		Password:   body.Password,
		Name:       body.Name,
		Role:       body.Role,
		CompanyID:  identity.CompanyID,
		Phone:      body.Phone,
		Position:   body.Position,
		Department: body.Department,
	}

	response, err := h.userService.CreateUser(identity, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateUser handles PUT /api/v1/users/:id
// @Summary Update a user
// @Description Update name, email and role of a user in the caller's company
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "User data"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body or user ID"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.userService.UpdateUser(identity, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteUser handles DELETE /api/v1/users/:id
// @Summary Delete a user
// @Description Permanently delete a user from the caller's company
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "User deleted"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		handleServiceError(c, apperrors.ErrMissingIdentity)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.userService.DeleteUser(identity, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

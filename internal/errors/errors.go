package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Cross-tenant access is deliberately reported as NotFound rather than
// Forbidden so callers cannot probe for entities in other companies.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness violation
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed or out-of-range input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a request without a valid identity
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a valid identity lacking role or tenant
// permission for the target
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidStateError represents an operation that is not valid in the
// entity's current lifecycle state (e.g. clock-out with no active entry)
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound   = &NotFoundError{Entity: "company"}
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrShiftNotFound     = &NotFoundError{Entity: "shift"}
	ErrTimeEntryNotFound = &NotFoundError{Entity: "time entry"}
)

// Already Exists Errors
var (
	ErrCompanyExists    = &AlreadyExistsError{Entity: "company", Context: "with this email"}
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrAlreadyClockedIn = &AlreadyExistsError{Entity: "active time entry", Context: "for this shift"}
)

// Business Logic Errors
var (
	ErrNoActiveTimeEntry = &InvalidStateError{Message: "no active time entry found"}
	ErrInvalidTimeRange  = &ValidationError{Field: "end_time", Message: "end time must be after start time"}
)

// Authentication / Authorization Errors
var (
	ErrMissingIdentity    = &AuthenticationError{Message: "authentication required"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrManagerOnly        = &AuthorizationError{Message: "manager role required"}
	ErrCompanyMismatch    = &AuthorizationError{Message: "cannot act on another company"}
	ErrShiftNotAssigned   = &AuthorizationError{Message: "shift is not assigned to this user"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}

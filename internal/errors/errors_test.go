package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftNotFound, ErrShiftNotFound))
		assert.False(t, errors.Is(ErrShiftNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrShiftNotFound))
		assert.False(t, IsNotFound(ErrAlreadyClockedIn))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "company", Context: "with this email"}
		assert.Equal(t, "company already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "company"}
		assert.Equal(t, "company already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "company", Context: "with this email"}
		err2 := &AlreadyExistsError{Entity: "company", Context: "with this email"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrCompanyExists))
		assert.True(t, IsAlreadyExists(ErrAlreadyClockedIn))
		assert.False(t, IsAlreadyExists(ErrCompanyNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrInvalidTimeRange))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingIdentity))
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.False(t, IsAuthentication(ErrManagerOnly))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrManagerOnly))
		assert.True(t, IsAuthorization(ErrCompanyMismatch))
		assert.True(t, IsAuthorization(ErrShiftNotAssigned))
		assert.False(t, IsAuthorization(ErrMissingIdentity))
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "no active time entry found", ErrNoActiveTimeEntry.Error())
	})

	t.Run("IsInvalidState helper", func(t *testing.T) {
		assert.True(t, IsInvalidState(ErrNoActiveTimeEntry))
		assert.False(t, IsInvalidState(ErrAlreadyClockedIn))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := NewInvalidStateError("shift already completed")
		assert.Equal(t, "shift already completed", err.Error())
		assert.True(t, IsInvalidState(err))
	})
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift assignment"}
		assert.Equal(t, "shift assignment not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "time record"}
		err2 := &NotFoundError{Entity: "time record"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrShiftNotFound, ErrPunchNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrStaffNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup failed: %w", ErrStaffNotFound)))
		assert.False(t, IsNotFound(ErrShiftUnchanged))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "shift assignment", Context: "for this staff and date"}
		assert.Equal(t, "shift assignment already exists for this staff and date", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "shift assignment"}
		assert.Equal(t, "shift assignment already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftExists, ErrShiftExists))
		assert.False(t, errors.Is(ErrShiftExists, ErrDuplicatePunch))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrDuplicatePunch))
		assert.False(t, IsAlreadyExists(ErrPunchNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		assert.Equal(t, "validation error: time - time is required", ErrMissingTime.Error())
	})

	t.Run("errors.Is distinguishes time errors", func(t *testing.T) {
		assert.False(t, errors.Is(ErrMissingTime, ErrInvalidTimeFormat))
		assert.True(t, errors.Is(fmt.Errorf("%w: %q", ErrInvalidTimeFormat, "9:5"), ErrInvalidTimeFormat))
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidDateFormat))
		assert.False(t, IsValidation(ErrInvalidDateRange))
	})
}

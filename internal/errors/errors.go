package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this staff and date"
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

// ValidationError represents a validation error
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

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrShiftNotFound           = &NotFoundError{Entity: "shift assignment"}
	ErrPunchNotFound           = &NotFoundError{Entity: "time record"}
	ErrStaffNotFound           = &NotFoundError{Entity: "staff"}
	ErrLeaveEntryNotFound      = &NotFoundError{Entity: "leave entry"}
	ErrShiftDefinitionNotFound = &NotFoundError{Entity: "shift definition"}
)

// Already Exists Errors
var (
	ErrShiftExists      = &AlreadyExistsError{Entity: "shift assignment", Context: "for this staff and date"}
	ErrDuplicatePunch   = &AlreadyExistsError{Entity: "time record", Context: "for this staff on this date and time"}
	ErrLeaveEntryExists = &AlreadyExistsError{Entity: "leave entry", Context: "for this staff, date and leave code"}
)

// Input Format Errors
var (
	ErrMissingTime       = &ValidationError{Field: "time", Message: "time is required"}
	ErrInvalidTimeFormat = &ValidationError{Field: "time", Message: "invalid time format"}
	ErrInvalidDateFormat = &ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
)

// Business Logic Errors
var (
	ErrShiftUnchanged          = errors.New("shift name and syncVG already match the stored assignment")
	ErrInvalidLeaveKind        = errors.New("invalid leave kind")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
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

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

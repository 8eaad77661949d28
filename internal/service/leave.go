package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/database/models"
	"roster-backend/internal/repository"
	"roster-backend/internal/timefmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// LeaveService handles AL and PH leave entry bookkeeping
type LeaveService struct {
	repo      repository.LeaveRepositoryInterface
	validator *validator.Validate
}

// NewLeaveService creates a new leave service
func NewLeaveService(repo repository.LeaveRepositoryInterface, validator *validator.Validate) *LeaveService {
	return &LeaveService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLeaveRequest represents the request to add a leave entry
type CreateLeaveRequest struct {
	Kind       models.LeaveKind `json:"kind" validate:"required"`
	StaffCode  string           `json:"staffCode" validate:"required"`
	Date       string           `json:"date" validate:"required"`
	LeaveCode  string           `json:"leaveCode" validate:"required"`
	Department string           `json:"department,omitempty"`
	Division   string           `json:"division,omitempty"`
	Balance    *float64         `json:"balance" validate:"required"`
}

// UpdateLeaveRequest adjusts the balance on an entry matched by natural key
type UpdateLeaveRequest struct {
	Kind      models.LeaveKind `json:"kind" validate:"required"`
	StaffCode string           `json:"staffCode" validate:"required"`
	Date      string           `json:"date" validate:"required"`
	LeaveCode string           `json:"leaveCode" validate:"required"`
	Balance   *float64         `json:"balance" validate:"required"`
}

// DeleteLeaveRequest identifies an entry by natural key
type DeleteLeaveRequest struct {
	Kind      models.LeaveKind `json:"kind" validate:"required"`
	StaffCode string           `json:"staffCode" validate:"required"`
	Date      string           `json:"date" validate:"required"`
	LeaveCode string           `json:"leaveCode" validate:"required"`
}

// Create adds a leave entry
func (s *LeaveService) Create(req *CreateLeaveRequest) (*LeaveEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.ErrInvalidLeaveKind
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &models.LeaveEntry{
		Kind:       req.Kind,
		StaffCode:  strings.TrimSpace(req.StaffCode),
		Date:       date,
		LeaveCode:  req.LeaveCode,
		Month:      int(date.Month()),
		Department: req.Department,
		Division:   req.Division,
		Balance:    *req.Balance,
	}

	if err := s.repo.Create(entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLeaveEntryExists
		}
		return nil, fmt.Errorf("failed to create leave entry: %w", err)
	}

	resp := toLeaveResponses([]models.LeaveEntry{*entry})
	return &resp[0], nil
}

// UpdateBalance sets the remaining balance on an existing entry
func (s *LeaveService) UpdateBalance(req *UpdateLeaveRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.Kind.IsValid() {
		return apperrors.ErrInvalidLeaveKind
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return err
	}

	rows, err := s.repo.UpdateBalance(req.Kind, strings.TrimSpace(req.StaffCode), date, req.LeaveCode, *req.Balance)
	if err != nil {
		return fmt.Errorf("failed to update leave entry: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrLeaveEntryNotFound
	}
	return nil
}

// Delete removes an entry by natural key
func (s *LeaveService) Delete(req *DeleteLeaveRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.Kind.IsValid() {
		return apperrors.ErrInvalidLeaveKind
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return err
	}

	rows, err := s.repo.Delete(req.Kind, strings.TrimSpace(req.StaffCode), date, req.LeaveCode)
	if err != nil {
		return fmt.Errorf("failed to delete leave entry: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrLeaveEntryNotFound
	}
	return nil
}

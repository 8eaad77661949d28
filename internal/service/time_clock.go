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

// Pagination bounds for the punch listing
const (
	MaxPunchPageSize     = 500
	DefaultPunchPageSize = 50
)

// TimeClockService reconciles raw attendance-terminal punches. Creation
// relies entirely on the storage uniqueness constraint over the natural
// tuple; mutation and deletion are scoped by both the surrogate id and the
// staff id so a stale surrogate id can never touch another staff member's
// row.
type TimeClockService struct {
	repo      repository.TimeClockRepositoryInterface
	validator *validator.Validate
}

// NewTimeClockService creates a new time clock service
func NewTimeClockService(repo repository.TimeClockRepositoryInterface, validator *validator.Validate) *TimeClockService {
	return &TimeClockService{
		repo:      repo,
		validator: validator,
	}
}

// RecordPunchRequest represents one incoming terminal event
type RecordPunchRequest struct {
	IDNumber string `json:"id_number" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	InOut    *int   `json:"in_out" validate:"required"`
}

// AmendPunchRequest represents a correction to a persisted punch
type AmendPunchRequest struct {
	Readers  *int   `json:"readers" validate:"required"`
	IDNumber string `json:"id_number" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	InOut    *int   `json:"in_out" validate:"required"`
}

// RemovePunchRequest identifies a punch by its dual key
type RemovePunchRequest struct {
	Readers  *int   `json:"readers" validate:"required"`
	IDNumber string `json:"id_number" validate:"required"`
}

// PunchResponse is the canonical projection of a persisted punch
type PunchResponse struct {
	Readers   int    `json:"readers"`
	IDNumber  string `json:"id_number"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	InOut     int    `json:"in_out"`
	Direction string `json:"in_out_text"`
}

// PunchListResponse represents a paginated list of punches
type PunchListResponse struct {
	Records []PunchResponse `json:"records"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}

// Record persists one punch. There is no existence pre-check: the unique
// index over (id_number, date, time, in_out) decides, and a violation is
// reported as ErrDuplicatePunch rather than a generic storage failure.
func (s *TimeClockService) Record(req *RecordPunchRequest) (*PunchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	punchTime, err := timefmt.NormalizeTime(req.Time)
	if err != nil {
		return nil, err
	}
	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	punch := &models.TimeClockPunch{
		IDNumber:  strings.TrimSpace(req.IDNumber),
		Date:      date,
		PunchTime: punchTime,
		InOut:     intOrZero(req.InOut),
	}

	if err := s.repo.Insert(punch); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicatePunch
		}
		return nil, fmt.Errorf("failed to insert punch: %w", err)
	}

	return s.toResponse(punch), nil
}

// Amend corrects a persisted punch matched by surrogate id AND staff id; a
// mismatch on either is NotFound.
func (s *TimeClockService) Amend(req *AmendPunchRequest) (*PunchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	punchTime, err := timefmt.NormalizeTime(req.Time)
	if err != nil {
		return nil, err
	}
	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	punch, err := s.repo.Update(*req.Readers, strings.TrimSpace(req.IDNumber), date, punchTime, intOrZero(req.InOut))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPunchNotFound
		}
		return nil, fmt.Errorf("failed to update punch: %w", err)
	}

	return s.toResponse(punch), nil
}

// Remove deletes a punch matched by the dual key and returns the removed
// row's projection for client-side confirmation.
func (s *TimeClockService) Remove(req *RemovePunchRequest) (*PunchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	punch, err := s.repo.Delete(*req.Readers, strings.TrimSpace(req.IDNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPunchNotFound
		}
		return nil, fmt.Errorf("failed to delete punch: %w", err)
	}

	return s.toResponse(punch), nil
}

// List retrieves one page of punches, newest first. Out-of-range paging
// parameters are clamped, not rejected: limit to [1,500], page to >= 1.
func (s *TimeClockService) List(page, limit int) (*PunchListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPunchPageSize {
		limit = MaxPunchPageSize
	}

	offset := (page - 1) * limit
	punches, total, err := s.repo.FindPage(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	records := make([]PunchResponse, len(punches))
	for i, punch := range punches {
		records[i] = *s.toResponse(&punch)
	}

	return &PunchListResponse{
		Records: records,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// toResponse converts a punch model to its canonical projection
func (s *TimeClockService) toResponse(punch *models.TimeClockPunch) *PunchResponse {
	return &PunchResponse{
		Readers:   punch.Readers,
		IDNumber:  strings.TrimSpace(punch.IDNumber),
		Date:      timefmt.FormatDate(punch.Date),
		Time:      punch.PunchTime,
		InOut:     punch.InOut,
		Direction: punch.DirectionLabel(),
	}
}

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

// ShiftService reconciles incoming shift assignments against stored rows.
// The create path is strictly insert-if-absent; the revise path updates in
// place and never re-creates.
type ShiftService struct {
	repo      repository.ShiftAssignmentRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftAssignmentRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		validator: validator,
	}
}

// SubmitShiftRequest represents the request to assign a shift
type SubmitShiftRequest struct {
	StaffCode    string `json:"staffCode" validate:"required"`
	Date         string `json:"date" validate:"required"`
	ShiftName    string `json:"shiftName" validate:"required"`
	Department   string `json:"department" validate:"required"`
	Division     string `json:"division" validate:"required"`
	WorkGroup    string `json:"group,omitempty"`
	Area         string `json:"area,omitempty"`
	Note         string `json:"note,omitempty"`
	MorningLeave *int   `json:"morningLeave,omitempty"`
	Locked       *int   `json:"locked,omitempty"`
	Sync         *int   `json:"sync,omitempty"`
	SyncVG       *int   `json:"syncVG,omitempty"`
}

// ReviseShiftRequest represents the request to revise an existing assignment.
// Only shiftName, note and syncVG are revisable; the remaining fields are
// create-only by policy.
type ReviseShiftRequest struct {
	StaffCode string  `json:"staffCode" validate:"required"`
	Date      string  `json:"date" validate:"required"`
	ShiftName string  `json:"shiftName"`
	Note      *string `json:"note,omitempty"`
	SyncVG    *int    `json:"syncVG,omitempty"`
}

// ShiftResponse represents the full normalized assignment payload
type ShiftResponse struct {
	StaffCode    string `json:"staffCode"`
	Date         string `json:"date"`
	ShiftName    string `json:"shiftName"`
	Department   string `json:"department"`
	Division     string `json:"division"`
	WorkGroup    string `json:"group"`
	Area         string `json:"area"`
	Note         string `json:"note"`
	MorningLeave int    `json:"morningLeave"`
	Locked       int    `json:"locked"`
	Sync         int    `json:"sync"`
	SyncVG       int    `json:"syncVG"`
}

// RevisedShiftResponse reflects only the fields the revise path touches
type RevisedShiftResponse struct {
	StaffCode string `json:"staffCode"`
	Date      string `json:"date"`
	ShiftName string `json:"shiftName"`
	Note      string `json:"note"`
	SyncVG    int    `json:"syncVG"`
}

// ShiftListResponse represents a staff member's assignments
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}

// Submit assigns a shift to a staff member on a date. Uniqueness of
// (staffCode, date) is owned by the storage constraint; the existence lookup
// here is advisory only, so a concurrent duplicate insert still comes back as
// ErrShiftExists instead of slipping through.
func (s *ShiftService) Submit(req *SubmitShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.Find(req.StaffCode, date)
	if err == nil {
		return nil, apperrors.ErrShiftExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing shift: %w", err)
	}

	assignment := &models.ShiftAssignment{
		StaffCode:    req.StaffCode,
		Date:         date,
		ShiftName:    req.ShiftName,
		Department:   defaultPlaceholder(req.Department),
		Division:     defaultPlaceholder(req.Division),
		WorkGroup:    defaultPlaceholder(req.WorkGroup),
		Area:         defaultPlaceholder(req.Area),
		Note:         req.Note,
		MorningLeave: intOrZero(req.MorningLeave),
		Locked:       intOrZero(req.Locked),
		Sync:         intOrZero(req.Sync),
		SyncVG:       intOrZero(req.SyncVG),
	}

	if err := s.repo.Create(assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrShiftExists
		}
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return s.toResponse(assignment), nil
}

// Revise updates the revisable fields of an existing assignment. When both
// the trimmed shift name and the syncVG flag already match the stored row the
// write is suppressed and ErrShiftUnchanged is returned, so downstream sync
// consumers are not retriggered for nothing.
func (s *ShiftService) Revise(req *ReviseShiftRequest) (*RevisedShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := timefmt.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Find(req.StaffCode, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	// An absent syncVG never matches the stored value; the zero default is
	// applied only when writing.
	if strings.TrimSpace(existing.ShiftName) == strings.TrimSpace(req.ShiftName) &&
		req.SyncVG != nil && existing.SyncVG == *req.SyncVG {
		return nil, apperrors.ErrShiftUnchanged
	}
	incomingSyncVG := intOrZero(req.SyncVG)

	note := ""
	if req.Note != nil {
		note = *req.Note
	}

	rows, err := s.repo.UpdateFields(req.StaffCode, date, req.ShiftName, note, incomingSyncVG)
	if err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrShiftNotFound
	}

	return &RevisedShiftResponse{
		StaffCode: req.StaffCode,
		Date:      timefmt.FormatDate(date),
		ShiftName: req.ShiftName,
		Note:      note,
		SyncVG:    incomingSyncVG,
	}, nil
}

// ListByStaff retrieves all assignments for a staff member, newest first
func (s *ShiftService) ListByStaff(staffCode string) (*ShiftListResponse, error) {
	assignments, err := s.repo.ListByStaff(strings.TrimSpace(staffCode))
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	shifts := make([]ShiftResponse, len(assignments))
	for i, assignment := range assignments {
		shifts[i] = *s.toResponse(&assignment)
	}

	return &ShiftListResponse{Shifts: shifts, Total: len(shifts)}, nil
}

// toResponse converts a shift assignment model to response
func (s *ShiftService) toResponse(assignment *models.ShiftAssignment) *ShiftResponse {
	return &ShiftResponse{
		StaffCode:    strings.TrimSpace(assignment.StaffCode),
		Date:         timefmt.FormatDate(assignment.Date),
		ShiftName:    strings.TrimSpace(assignment.ShiftName),
		Department:   assignment.Department,
		Division:     assignment.Division,
		WorkGroup:    assignment.WorkGroup,
		Area:         assignment.Area,
		Note:         assignment.Note,
		MorningLeave: assignment.MorningLeave,
		Locked:       assignment.Locked,
		Sync:         assignment.Sync,
		SyncVG:       assignment.SyncVG,
	}
}

func defaultPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

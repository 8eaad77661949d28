package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/database/models"
	"roster-backend/internal/repository"
	"roster-backend/internal/timefmt"

	"gorm.io/gorm"
)

// StaffService handles staff master-record lookups
type StaffService struct {
	repo      repository.StaffRepositoryInterface
	leaveRepo repository.LeaveRepositoryInterface
}

// NewStaffService creates a new staff service
func NewStaffService(repo repository.StaffRepositoryInterface, leaveRepo repository.LeaveRepositoryInterface) *StaffService {
	return &StaffService{
		repo:      repo,
		leaveRepo: leaveRepo,
	}
}

// StaffResponse represents a staff master record
type StaffResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	EnglishName  string `json:"name_en"`
	DateOfBirth  string `json:"dob,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Phone        string `json:"number,omitempty"`
	Address      string `json:"address,omitempty"`
	HiredAt      string `json:"date_first,omitempty"`
	OfficialAt   string `json:"date_official,omitempty"`
	ResignedAt   string `json:"date_resign,omitempty"`
	ResignReason string `json:"reason_resign,omitempty"`
	Email        string `json:"email,omitempty"`
	WorkEmail    string `json:"email_work,omitempty"`
}

// LeaveEntryResponse represents one leave entry in a staff leave profile
type LeaveEntryResponse struct {
	StaffCode  string  `json:"staffCode"`
	Date       string  `json:"date"`
	LeaveCode  string  `json:"leaveCode"`
	Month      int     `json:"month"`
	Department string  `json:"department"`
	Division   string  `json:"division"`
	Balance    float64 `json:"balance"`
}

// LeaveProfileResponse combines a staff record with its AL and PH entries in range
type LeaveProfileResponse struct {
	Staff StaffResponse        `json:"staff"`
	AL    []LeaveEntryResponse `json:"AL"`
	PH    []LeaveEntryResponse `json:"PH"`
}

// GetByCode retrieves a staff record by its trimmed business code
func (s *StaffService) GetByCode(code string) (*StaffResponse, error) {
	staff, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	return s.toResponse(staff), nil
}

// LeaveProfile retrieves the staff record plus AL and PH entries between two dates
func (s *StaffService) LeaveProfile(code, start, end string) (*LeaveProfileResponse, error) {
	startDate, err := timefmt.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := timefmt.ParseDate(end)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	staff, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	trimmedCode := strings.TrimSpace(staff.Code)

	al, err := s.leaveRepo.ListRange(models.LeaveKindAnnual, trimmedCode, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list annual leave: %w", err)
	}
	ph, err := s.leaveRepo.ListRange(models.LeaveKindPublicHoliday, trimmedCode, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}

	return &LeaveProfileResponse{
		Staff: *s.toResponse(staff),
		AL:    toLeaveResponses(al),
		PH:    toLeaveResponses(ph),
	}, nil
}

// toResponse converts a staff model to response
func (s *StaffService) toResponse(staff *models.Staff) *StaffResponse {
	return &StaffResponse{
		Code:         strings.TrimSpace(staff.Code),
		Name:         strings.TrimSpace(staff.Name),
		EnglishName:  strings.TrimSpace(staff.EnglishName),
		DateOfBirth:  formatOptionalDate(staff.DateOfBirth),
		Gender:       staff.Gender,
		Phone:        staff.Phone,
		Address:      staff.Address,
		HiredAt:      formatOptionalDate(staff.HiredAt),
		OfficialAt:   formatOptionalDate(staff.OfficialAt),
		ResignedAt:   formatOptionalDate(staff.ResignedAt),
		ResignReason: staff.ResignReason,
		Email:        staff.Email,
		WorkEmail:    staff.WorkEmail,
	}
}

func toLeaveResponses(entries []models.LeaveEntry) []LeaveEntryResponse {
	responses := make([]LeaveEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = LeaveEntryResponse{
			StaffCode:  strings.TrimSpace(entry.StaffCode),
			Date:       timefmt.FormatDate(entry.Date),
			LeaveCode:  entry.LeaveCode,
			Month:      entry.Month,
			Department: entry.Department,
			Division:   entry.Division,
			Balance:    entry.Balance,
		}
	}
	return responses
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return timefmt.FormatDate(*d)
}

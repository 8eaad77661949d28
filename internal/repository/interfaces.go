package repository

import (
	"time"

	"roster-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShiftAssignmentRepositoryInterface defines the interface for shift assignment repository operations
type ShiftAssignmentRepositoryInterface interface {
	Find(staffCode string, date time.Time) (*models.ShiftAssignment, error)
	Create(assignment *models.ShiftAssignment) error
	UpdateFields(staffCode string, date time.Time, shiftName, note string, syncVG int) (int64, error)
	ListByStaff(staffCode string) ([]models.ShiftAssignment, error)
	ListRange(staffCode string, start, end time.Time) ([]models.ShiftAssignment, error)
}

// TimeClockRepositoryInterface defines the interface for time clock repository operations
type TimeClockRepositoryInterface interface {
	Insert(punch *models.TimeClockPunch) error
	FindPage(limit, offset int) ([]models.TimeClockPunch, int64, error)
	Update(readers int, idNumber string, date time.Time, punchTime string, inOut int) (*models.TimeClockPunch, error)
	Delete(readers int, idNumber string) (*models.TimeClockPunch, error)
}

// StaffRepositoryInterface defines the interface for staff repository operations
type StaffRepositoryInterface interface {
	GetByCode(code string) (*models.Staff, error)
}

// LeaveRepositoryInterface defines the interface for leave entry repository operations
type LeaveRepositoryInterface interface {
	Create(entry *models.LeaveEntry) error
	ListRange(kind models.LeaveKind, staffCode string, start, end time.Time) ([]models.LeaveEntry, error)
	UpdateBalance(kind models.LeaveKind, staffCode string, date time.Time, leaveCode string, balance float64) (int64, error)
	Delete(kind models.LeaveKind, staffCode string, date time.Time, leaveCode string) (int64, error)
}

// ScheduleRepositoryInterface defines the interface for the schedule listing query
type ScheduleRepositoryInterface interface {
	ListRange(start, end time.Time) ([]ScheduleRow, error)
}

// ShiftDefinitionRepositoryInterface defines the interface for shift catalog operations
type ShiftDefinitionRepositoryInterface interface {
	Upsert(def *models.ShiftDefinition) error
	GetByName(name string) (*models.ShiftDefinition, error)
}

package service

import (
	"bytes"
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShiftServiceInterface defines the interface for shift assignment operations
type ShiftServiceInterface interface {
	Submit(req *SubmitShiftRequest) (*ShiftResponse, error)
	Revise(req *ReviseShiftRequest) (*RevisedShiftResponse, error)
	ListByStaff(staffCode string) (*ShiftListResponse, error)
}

// TimeClockServiceInterface defines the interface for time-clock punch operations
type TimeClockServiceInterface interface {
	Record(req *RecordPunchRequest) (*PunchResponse, error)
	Amend(req *AmendPunchRequest) (*PunchResponse, error)
	Remove(req *RemovePunchRequest) (*PunchResponse, error)
	List(page, limit int) (*PunchListResponse, error)
}

// StaffServiceInterface defines the interface for staff lookup operations
type StaffServiceInterface interface {
	GetByCode(code string) (*StaffResponse, error)
	LeaveProfile(code, start, end string) (*LeaveProfileResponse, error)
}

// LeaveServiceInterface defines the interface for leave entry operations
type LeaveServiceInterface interface {
	Create(req *CreateLeaveRequest) (*LeaveEntryResponse, error)
	UpdateBalance(req *UpdateLeaveRequest) error
	Delete(req *DeleteLeaveRequest) error
}

// ScheduleServiceInterface defines the interface for combined schedule operations
type ScheduleServiceInterface interface {
	List(ctx context.Context, start, end string) (*ScheduleListResponse, error)
	ExportExcel(ctx context.Context, start, end string) (*bytes.Buffer, string, error)
	Calendar(staffCode, start, end string) (string, error)
}

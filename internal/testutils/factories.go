package testutils

import (
	"time"

	"roster-backend/internal/database/models"
)

// ShiftAssignmentFactory provides methods to create test ShiftAssignment data
type ShiftAssignmentFactory struct{}

// NewShiftAssignmentFactory creates a new ShiftAssignmentFactory
func NewShiftAssignmentFactory() *ShiftAssignmentFactory {
	return &ShiftAssignmentFactory{}
}

// Create creates a test ShiftAssignment with default values
func (f *ShiftAssignmentFactory) Create() *models.ShiftAssignment {
	return &models.ShiftAssignment{
		StaffCode:  "EMP001",
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ShiftName:  "D1",
		Department: "Assembly",
		Division:   "Line A",
		WorkGroup:  "N/A",
		Area:       "N/A",
		Note:       "",
	}
}

// WithStaffCode sets a custom staff code for the assignment
func (f *ShiftAssignmentFactory) WithStaffCode(code string) *models.ShiftAssignment {
	assignment := f.Create()
	assignment.StaffCode = code
	return assignment
}

// WithDate sets a custom date for the assignment
func (f *ShiftAssignmentFactory) WithDate(date time.Time) *models.ShiftAssignment {
	assignment := f.Create()
	assignment.Date = date
	return assignment
}

// TimeClockPunchFactory provides methods to create test TimeClockPunch data
type TimeClockPunchFactory struct{}

// NewTimeClockPunchFactory creates a new TimeClockPunchFactory
func NewTimeClockPunchFactory() *TimeClockPunchFactory {
	return &TimeClockPunchFactory{}
}

// Create creates a test TimeClockPunch with default values
func (f *TimeClockPunchFactory) Create() *models.TimeClockPunch {
	return &models.TimeClockPunch{
		IDNumber:  "EMP001",
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		PunchTime: "08:00:00",
		InOut:     1,
	}
}

// WithTime sets a custom punch time
func (f *TimeClockPunchFactory) WithTime(punchTime string) *models.TimeClockPunch {
	punch := f.Create()
	punch.PunchTime = punchTime
	return punch
}

// WithDirection sets the in/out flag
func (f *TimeClockPunchFactory) WithDirection(inOut int) *models.TimeClockPunch {
	punch := f.Create()
	punch.InOut = inOut
	return punch
}

// StaffFactory provides methods to create test Staff data
type StaffFactory struct{}

// NewStaffFactory creates a new StaffFactory
func NewStaffFactory() *StaffFactory {
	return &StaffFactory{}
}

// Create creates a test Staff with default values
func (f *StaffFactory) Create() *models.Staff {
	hired := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	return &models.Staff{
		Code:        "EMP001",
		Name:        "Nguyen Van A",
		EnglishName: "Andy Nguyen",
		Gender:      "M",
		Phone:       "+84-555-0123",
		HiredAt:     &hired,
		Email:       "andy.nguyen@example.com",
	}
}

// WithCode sets a custom staff code
func (f *StaffFactory) WithCode(code string) *models.Staff {
	staff := f.Create()
	staff.Code = code
	return staff
}

// LeaveEntryFactory provides methods to create test LeaveEntry data
type LeaveEntryFactory struct{}

// NewLeaveEntryFactory creates a new LeaveEntryFactory
func NewLeaveEntryFactory() *LeaveEntryFactory {
	return &LeaveEntryFactory{}
}

// Create creates a test LeaveEntry with default values
func (f *LeaveEntryFactory) Create() *models.LeaveEntry {
	return &models.LeaveEntry{
		Kind:      models.LeaveKindAnnual,
		StaffCode: "EMP001",
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		LeaveCode: "AL",
		Month:     6,
		Balance:   10.5,
	}
}

// WithKind sets the leave kind
func (f *LeaveEntryFactory) WithKind(kind models.LeaveKind) *models.LeaveEntry {
	entry := f.Create()
	entry.Kind = kind
	return entry
}

// ShiftDefinitionFactory provides methods to create test ShiftDefinition data
type ShiftDefinitionFactory struct{}

// NewShiftDefinitionFactory creates a new ShiftDefinitionFactory
func NewShiftDefinitionFactory() *ShiftDefinitionFactory {
	return &ShiftDefinitionFactory{}
}

// Create creates a test ShiftDefinition with default values
func (f *ShiftDefinitionFactory) Create() *models.ShiftDefinition {
	return &models.ShiftDefinition{
		Name:      "D1",
		StartTime: "08:00:00",
		EndTime:   "17:00:00",
	}
}

// WithTimes sets custom start and end times
func (f *ShiftDefinitionFactory) WithTimes(start, end string) *models.ShiftDefinition {
	def := f.Create()
	def.StartTime = start
	def.EndTime = end
	return def
}

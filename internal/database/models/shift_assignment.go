package models

import (
	"time"
)

// ShiftAssignment represents one staff member's assigned shift on one calendar
// date. The composite primary key (staff_code, date) is the uniqueness rule for
// the whole create path: a second insert for the same staff and date fails at
// the constraint, not in application code.
type ShiftAssignment struct {
	StaffCode    string    `json:"staffCode" gorm:"size:50;primaryKey" validate:"required"`
	Date         time.Time `json:"date" gorm:"type:date;primaryKey" validate:"required"`
	ShiftName    string    `json:"shiftName" gorm:"size:50;not null" validate:"required"`
	Department   string    `json:"department" gorm:"size:100;not null;default:N/A"`
	Division     string    `json:"division" gorm:"size:100;not null;default:N/A"`
	WorkGroup    string    `json:"group" gorm:"size:100;not null;default:N/A"`
	Area         string    `json:"area" gorm:"size:100;not null;default:N/A"`
	Note         string    `json:"note" gorm:"size:255"`
	MorningLeave int       `json:"morningLeave" gorm:"default:0"`
	Locked       int       `json:"locked" gorm:"default:0"`
	Sync         int       `json:"sync" gorm:"default:0"`
	SyncVG       int       `json:"syncVG" gorm:"column:sync_vg;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}

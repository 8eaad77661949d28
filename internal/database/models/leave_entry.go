package models

import (
	"time"
)

// LeaveEntry represents one day of annual leave or public holiday credit.
// Both leave kinds share one table distinguished by Kind; the legacy system
// kept them in two identically-shaped tables.
type LeaveEntry struct {
	ID         uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	Kind       LeaveKind `json:"kind" gorm:"size:20;not null;uniqueIndex:idx_leave_natural_key" validate:"required"`
	StaffCode  string    `json:"staffCode" gorm:"size:50;not null;uniqueIndex:idx_leave_natural_key" validate:"required"`
	Date       time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_leave_natural_key" validate:"required"`
	LeaveCode  string    `json:"leaveCode" gorm:"size:20;not null;uniqueIndex:idx_leave_natural_key" validate:"required"`
	Month      int       `json:"month"`
	Department string    `json:"department" gorm:"size:100"`
	Division   string    `json:"division" gorm:"size:100"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for LeaveEntry
func (LeaveEntry) TableName() string {
	return "leave_entries"
}

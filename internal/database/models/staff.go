package models

import (
	"time"
)

// Staff represents one staff member's HR master record. Code is the business
// key used by every other table; lookups trim it before comparing because the
// legacy terminal exports pad codes with trailing spaces.
type Staff struct {
	Code         string     `json:"code" gorm:"size:50;primaryKey" validate:"required"`
	Name         string     `json:"name" gorm:"size:100;not null" validate:"required"`
	EnglishName  string     `json:"name_en" gorm:"size:100"`
	DateOfBirth  *time.Time `json:"dob" gorm:"type:date"`
	Gender       string     `json:"gender" gorm:"size:10"`
	Phone        string     `json:"number" gorm:"size:20"`
	Address      string     `json:"address" gorm:"size:255"`
	HiredAt      *time.Time `json:"date_first" gorm:"type:date"`
	OfficialAt   *time.Time `json:"date_official" gorm:"type:date"`
	ResignedAt   *time.Time `json:"date_resign" gorm:"type:date"`
	ResignReason string     `json:"reason_resign" gorm:"size:255"`
	Email        string     `json:"email" gorm:"size:100"`
	WorkEmail    string     `json:"email_work" gorm:"size:100"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName returns the table name for Staff
func (Staff) TableName() string {
	return "staff"
}

package models

import (
	"time"
)

// ShiftDefinition is the shift catalog: a shift name mapped to its nominal
// start and end times of day. The schedule listing joins assignments against
// this table to expand a shift name into concrete timestamps.
type ShiftDefinition struct {
	Name      string    `json:"name" gorm:"size:50;primaryKey" validate:"required"`
	StartTime string    `json:"startTime" gorm:"size:8;not null" validate:"required"`
	EndTime   string    `json:"endTime" gorm:"size:8;not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for ShiftDefinition
func (ShiftDefinition) TableName() string {
	return "shift_definitions"
}

package models

import (
	"time"
)

// TimeClockPunch represents one raw attendance-terminal event. Readers is the
// surrogate id assigned by the store; the natural key is the full tuple
// (id_number, date, punch_time, in_out), enforced by a unique index so that a
// replayed terminal event is rejected rather than silently merged.
type TimeClockPunch struct {
	Readers   int       `json:"readers" gorm:"primaryKey;autoIncrement"`
	IDNumber  string    `json:"id_number" gorm:"size:50;not null;uniqueIndex:idx_punch_natural_key" validate:"required"`
	Date      time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_punch_natural_key" validate:"required"`
	PunchTime string    `json:"time" gorm:"size:8;not null;uniqueIndex:idx_punch_natural_key" validate:"required"`
	InOut     int       `json:"in_out" gorm:"not null;uniqueIndex:idx_punch_natural_key"`
	CreatedAt time.Time `json:"created_at"`
}

// DirectionLabel projects the in_out flag to its human label.
func (p *TimeClockPunch) DirectionLabel() string {
	if p.InOut == 1 {
		return "IN"
	}
	return "OUT"
}

// TableName returns the table name for TimeClockPunch
func (TimeClockPunch) TableName() string {
	return "time_clock_punches"
}

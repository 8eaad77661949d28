package repository

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleRow is one denormalized schedule-listing row: a shift assignment
// joined with the staff record, the shift catalog times and the first-in /
// last-out punches for that day. Time columns are nullable because a shift
// may have no catalog entry and a day may have no punches yet.
type ScheduleRow struct {
	StaffCode   string    `gorm:"column:staff_code"`
	Name        string    `gorm:"column:name"`
	EnglishName string    `gorm:"column:english_name"`
	Department  string    `gorm:"column:department"`
	ShiftName   string    `gorm:"column:shift_name"`
	Date        time.Time `gorm:"column:date"`
	StartTime   *string   `gorm:"column:start_time"`
	EndTime     *string   `gorm:"column:end_time"`
	ClockIn     *string   `gorm:"column:clock_in"`
	ClockOut    *string   `gorm:"column:clock_out"`
}

// ScheduleRepository runs the denormalized schedule-listing query
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListRange retrieves the combined schedule for all staff between two dates
func (r *ScheduleRepository) ListRange(start, end time.Time) ([]ScheduleRow, error) {
	var rows []ScheduleRow
	err := r.db.Raw(`
		SELECT
			sa.staff_code,
			COALESCE(s.name, '') AS name,
			COALESCE(s.english_name, '') AS english_name,
			sa.department,
			sa.shift_name,
			sa.date,
			sd.start_time,
			sd.end_time,
			(SELECT MIN(p.punch_time) FROM time_clock_punches p
			 WHERE TRIM(p.id_number) = TRIM(sa.staff_code) AND p.date = sa.date AND p.in_out = 1) AS clock_in,
			(SELECT MAX(p.punch_time) FROM time_clock_punches p
			 WHERE TRIM(p.id_number) = TRIM(sa.staff_code) AND p.date = sa.date AND p.in_out <> 1) AS clock_out
		FROM shift_assignments sa
		LEFT JOIN staff s ON TRIM(s.code) = TRIM(sa.staff_code)
		LEFT JOIN shift_definitions sd ON sd.name = TRIM(sa.shift_name)
		WHERE sa.date BETWEEN ? AND ?
		ORDER BY sa.date ASC, sa.staff_code ASC
	`, start, end).Scan(&rows).Error
	return rows, err
}

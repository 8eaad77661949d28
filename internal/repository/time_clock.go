package repository

import (
	"time"

	"roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// TimeClockRepository handles database operations for time clock punches
type TimeClockRepository struct {
	db *gorm.DB
}

// NewTimeClockRepository creates a new time clock repository
func NewTimeClockRepository(db *gorm.DB) *TimeClockRepository {
	return &TimeClockRepository{db: db}
}

// Insert persists a punch. Uniqueness over (id_number, date, punch_time,
// in_out) is enforced by idx_punch_natural_key; a duplicate surfaces as
// gorm.ErrDuplicatedKey. On success the model carries the assigned surrogate
// id.
func (r *TimeClockRepository) Insert(punch *models.TimeClockPunch) error {
	return r.db.Create(punch).Error
}

// FindPage retrieves one page of punches, newest first by (date, time)
func (r *TimeClockRepository) FindPage(limit, offset int) ([]models.TimeClockPunch, int64, error) {
	var punches []models.TimeClockPunch
	var total int64

	if err := r.db.Model(&models.TimeClockPunch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Order("date DESC, punch_time DESC").
		Limit(limit).Offset(offset).
		Find(&punches).Error
	return punches, total, err
}

// Update mutates a punch scoped by BOTH the surrogate id and the staff id.
// A mismatch on either is reported as gorm.ErrRecordNotFound even when the
// surrogate id exists under a different staff member.
func (r *TimeClockRepository) Update(readers int, idNumber string, date time.Time, punchTime string, inOut int) (*models.TimeClockPunch, error) {
	result := r.db.Model(&models.TimeClockPunch{}).
		Where("readers = ? AND id_number = ?", readers, idNumber).
		Updates(map[string]interface{}{
			"date":       date,
			"punch_time": punchTime,
			"in_out":     inOut,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var punch models.TimeClockPunch
	if err := r.db.First(&punch, "readers = ? AND id_number = ?", readers, idNumber).Error; err != nil {
		return nil, err
	}
	return &punch, nil
}

// Delete removes a punch scoped by both keys and returns the removed row for
// the caller's confirmation payload; no re-fetch happens after deletion.
func (r *TimeClockRepository) Delete(readers int, idNumber string) (*models.TimeClockPunch, error) {
	var punch models.TimeClockPunch
	err := r.db.First(&punch, "readers = ? AND id_number = ?", readers, idNumber).Error
	if err != nil {
		return nil, err
	}

	result := r.db.Delete(&models.TimeClockPunch{}, "readers = ? AND id_number = ?", readers, idNumber)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &punch, nil
}

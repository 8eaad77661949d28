package repository

import (
	"time"

	"roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// LeaveRepository handles database operations for AL and PH leave entries
type LeaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository creates a new leave repository
func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// Create inserts a new leave entry
func (r *LeaveRepository) Create(entry *models.LeaveEntry) error {
	return r.db.Create(entry).Error
}

// ListRange retrieves leave entries of one kind for a staff member between two dates
func (r *LeaveRepository) ListRange(kind models.LeaveKind, staffCode string, start, end time.Time) ([]models.LeaveEntry, error) {
	var entries []models.LeaveEntry
	err := r.db.
		Where("kind = ? AND staff_code = ? AND date BETWEEN ? AND ?", kind, staffCode, start, end).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// UpdateBalance sets the remaining balance on the entry matching the natural key
func (r *LeaveRepository) UpdateBalance(kind models.LeaveKind, staffCode string, date time.Time, leaveCode string, balance float64) (int64, error) {
	result := r.db.Model(&models.LeaveEntry{}).
		Where("kind = ? AND staff_code = ? AND date = ? AND leave_code = ?", kind, staffCode, date, leaveCode).
		Update("balance", balance)
	return result.RowsAffected, result.Error
}

// Delete removes the entry matching the natural key
func (r *LeaveRepository) Delete(kind models.LeaveKind, staffCode string, date time.Time, leaveCode string) (int64, error) {
	result := r.db.
		Where("kind = ? AND staff_code = ? AND date = ? AND leave_code = ?", kind, staffCode, date, leaveCode).
		Delete(&models.LeaveEntry{})
	return result.RowsAffected, result.Error
}

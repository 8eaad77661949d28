package repository

import (
	"time"

	"roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// ShiftAssignmentRepository handles database operations for shift assignments
type ShiftAssignmentRepository struct {
	db *gorm.DB
}

// NewShiftAssignmentRepository creates a new shift assignment repository
func NewShiftAssignmentRepository(db *gorm.DB) *ShiftAssignmentRepository {
	return &ShiftAssignmentRepository{db: db}
}

// Find retrieves the assignment for one staff member on one date
func (r *ShiftAssignmentRepository) Find(staffCode string, date time.Time) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	err := r.db.First(&assignment, "staff_code = ? AND date = ?", staffCode, date).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Create inserts a new assignment. The composite primary key (staff_code, date)
// makes a concurrent duplicate insert fail with gorm.ErrDuplicatedKey, so the
// caller's existence pre-check stays advisory.
func (r *ShiftAssignmentRepository) Create(assignment *models.ShiftAssignment) error {
	return r.db.Create(assignment).Error
}

// UpdateFields mutates only the revisable columns: shift name, note and the
// syncVG flag. Returns the number of rows affected.
func (r *ShiftAssignmentRepository) UpdateFields(staffCode string, date time.Time, shiftName, note string, syncVG int) (int64, error) {
	result := r.db.Model(&models.ShiftAssignment{}).
		Where("staff_code = ? AND date = ?", staffCode, date).
		Updates(map[string]interface{}{
			"shift_name": shiftName,
			"note":       note,
			"sync_vg":    syncVG,
		})
	return result.RowsAffected, result.Error
}

// ListByStaff retrieves all assignments for a staff member, newest first
func (r *ShiftAssignmentRepository) ListByStaff(staffCode string) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	err := r.db.Where("staff_code = ?", staffCode).Order("date DESC").Find(&assignments).Error
	return assignments, err
}

// ListRange retrieves assignments for a staff member between two dates, oldest first
func (r *ShiftAssignmentRepository) ListRange(staffCode string, start, end time.Time) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	err := r.db.
		Where("staff_code = ? AND date BETWEEN ? AND ?", staffCode, start, end).
		Order("date ASC").
		Find(&assignments).Error
	return assignments, err
}

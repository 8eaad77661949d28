package repository

import (
	"strings"

	"roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// StaffRepository handles database operations for staff records
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// GetByCode retrieves a staff record by its trimmed business code. Legacy
// terminal exports pad codes with trailing spaces, so both sides of the
// comparison are trimmed.
func (r *StaffRepository) GetByCode(code string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, "TRIM(code) = ?", strings.TrimSpace(code)).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

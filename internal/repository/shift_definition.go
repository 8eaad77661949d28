package repository

import (
	"roster-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftDefinitionRepository handles database operations for the shift catalog
type ShiftDefinitionRepository struct {
	db *gorm.DB
}

// NewShiftDefinitionRepository creates a new shift definition repository
func NewShiftDefinitionRepository(db *gorm.DB) *ShiftDefinitionRepository {
	return &ShiftDefinitionRepository{db: db}
}

// Upsert creates or replaces a catalog entry by shift name
func (r *ShiftDefinitionRepository) Upsert(def *models.ShiftDefinition) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "updated_at"}),
	}).Create(def).Error
}

// GetByName retrieves a catalog entry by shift name
func (r *ShiftDefinitionRepository) GetByName(name string) (*models.ShiftDefinition, error) {
	var def models.ShiftDefinition
	err := r.db.First(&def, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

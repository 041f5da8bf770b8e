package repository

import (
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionItemRepository handles database operations for action plan items
type ActionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db}
}

// Create creates a new action item
func (r *ActionItemRepository) Create(item *models.ActionItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves an action item by ID
func (r *ActionItemRepository) GetByID(id uuid.UUID) (*models.ActionItem, error) {
	var item models.ActionItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByAssessmentID lists the action items of an assessment
func (r *ActionItemRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := r.db.Where("assessment_id = ?", assessmentID).
		Order("due_date IS NULL, due_date ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

// Update updates an action item
func (r *ActionItemRepository) Update(item *models.ActionItem) error {
	return r.db.Save(item).Error
}

// Delete deletes an action item
func (r *ActionItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ActionItem{}, "id = ?", id).Error
}

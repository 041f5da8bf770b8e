package repository

import (
	"time"

	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentRepository handles database operations for assessments
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create creates a new assessment
func (r *AssessmentRepository) Create(a *models.Assessment) error {
	return r.db.Create(a).Error
}

// GetByID retrieves an assessment by ID
func (r *AssessmentRepository) GetByID(id uuid.UUID) (*models.Assessment, error) {
	var a models.Assessment
	err := r.db.First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetWithQuestionnaire retrieves an assessment with its questionnaire and ordered questions
func (r *AssessmentRepository) GetWithQuestionnaire(id uuid.UUID) (*models.Assessment, error) {
	var a models.Assessment
	err := r.db.
		Preload("Questionnaire").
		Preload("Questionnaire.Questions", orderedQuestions).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByPublicToken retrieves an assessment by its public token with questions
func (r *AssessmentRepository) GetByPublicToken(token string) (*models.Assessment, error) {
	var a models.Assessment
	err := r.db.
		Preload("Questionnaire").
		Preload("Questionnaire.Questions", orderedQuestions).
		First(&a, "public_token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByOrganizationID lists an organization's assessments, optionally filtered by status
func (r *AssessmentRepository) GetByOrganizationID(orgID uuid.UUID, status models.AssessmentStatus, limit, offset int) ([]models.Assessment, int64, error) {
	var items []models.Assessment
	var total int64

	base := r.db.Model(&models.Assessment{}).Where("organization_id = ?", orgID)
	if status != "" {
		base = base.Where("status = ?", status)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// CountActive counts the organization's active assessments
func (r *AssessmentRepository) CountActive(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assessment{}).
		Where("organization_id = ? AND status = ?", orgID, models.AssessmentStatusActive).
		Count(&count).Error
	return count, err
}

// GetExpired lists active assessments whose end date is before now
func (r *AssessmentRepository) GetExpired(now time.Time) ([]models.Assessment, error) {
	var items []models.Assessment
	err := r.db.
		Where("status = ? AND ends_at IS NOT NULL AND ends_at < ?", models.AssessmentStatusActive, now).
		Find(&items).Error
	return items, err
}

// GetEndingBetween lists active assessments ending in (from, to]
func (r *AssessmentRepository) GetEndingBetween(from, to time.Time) ([]models.Assessment, error) {
	var items []models.Assessment
	err := r.db.
		Where("status = ? AND ends_at > ? AND ends_at <= ?", models.AssessmentStatusActive, from, to).
		Order("ends_at ASC").
		Find(&items).Error
	return items, err
}

// Update updates an assessment
func (r *AssessmentRepository) Update(a *models.Assessment) error {
	return r.db.Omit("Organization", "Questionnaire").Save(a).Error
}

// Delete deletes an assessment
func (r *AssessmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assessment{}, "id = ?", id).Error
}

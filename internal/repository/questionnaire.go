package repository

import (
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionnaireRepository handles database operations for questionnaires and their questions
type QuestionnaireRepository struct {
	db *gorm.DB
}

// NewQuestionnaireRepository creates a new questionnaire repository
func NewQuestionnaireRepository(db *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create creates a questionnaire together with its questions
func (r *QuestionnaireRepository) Create(q *models.Questionnaire) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(q).Error
	})
}

// GetByID retrieves a questionnaire by ID with questions ordered by position
func (r *QuestionnaireRepository) GetByID(id uuid.UUID) (*models.Questionnaire, error) {
	var q models.Questionnaire
	err := r.db.Preload("Questions", orderedQuestions).First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetTemplateByName retrieves a global template by name
func (r *QuestionnaireRepository) GetTemplateByName(name string) (*models.Questionnaire, error) {
	var q models.Questionnaire
	err := r.db.Preload("Questions", orderedQuestions).
		First(&q, "organization_id IS NULL AND name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetByOrganizationAndName retrieves an organization's questionnaire by name
func (r *QuestionnaireRepository) GetByOrganizationAndName(orgID uuid.UUID, name string) (*models.Questionnaire, error) {
	var q models.Questionnaire
	err := r.db.First(&q, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetAvailable lists the organization's questionnaires plus global templates.
// A nil orgID lists templates only.
func (r *QuestionnaireRepository) GetAvailable(orgID *uuid.UUID, limit, offset int) ([]models.Questionnaire, int64, error) {
	var items []models.Questionnaire
	var total int64

	base := r.db.Model(&models.Questionnaire{})
	if orgID != nil {
		base = base.Where("organization_id = ? OR organization_id IS NULL", *orgID)
	} else {
		base = base.Where("organization_id IS NULL")
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("is_template DESC, name ASC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update updates questionnaire metadata only; questions are left untouched
func (r *QuestionnaireRepository) Update(q *models.Questionnaire) error {
	return r.db.Model(q).Updates(map[string]interface{}{
		"name":        q.Name,
		"description": q.Description,
		"kind":        q.Kind,
	}).Error
}

// Delete deletes a questionnaire and its questions
func (r *QuestionnaireRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Question{}, "questionnaire_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Questionnaire{}, "id = ?", id).Error
	})
}

// CountAssessments counts the assessments using the questionnaire
func (r *QuestionnaireRepository) CountAssessments(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assessment{}).Where("questionnaire_id = ?", id).Count(&count).Error
	return count, err
}

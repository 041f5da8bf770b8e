package repository

import (
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponseRepository handles database operations for survey responses
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Create stores a response and its answers in one transaction
func (r *ResponseRepository) Create(resp *models.Response) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(resp).Error
	})
}

// CreateBatch stores many responses in one transaction
func (r *ResponseRepository) CreateBatch(responses []models.Response) error {
	if len(responses) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range responses {
			if err := tx.Create(&responses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountByAssessment counts the responses of an assessment
func (r *ResponseRepository) CountByAssessment(assessmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Response{}).Where("assessment_id = ?", assessmentID).Count(&count).Error
	return count, err
}

// GetAnswerRows returns every answer of an assessment joined with its response's department
func (r *ResponseRepository) GetAnswerRows(assessmentID uuid.UUID) ([]models.AnswerRow, error) {
	var rows []models.AnswerRow
	err := r.db.Table("answers").
		Select("answers.response_id, answers.question_id, answers.value, responses.department").
		Joins("JOIN responses ON responses.id = answers.response_id").
		Where("responses.assessment_id = ?", assessmentID).
		Order("responses.submitted_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

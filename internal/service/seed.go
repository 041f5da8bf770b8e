package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/logger"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DevSeedService generates synthetic responses for local testing
type DevSeedService struct {
	assessments repository.AssessmentRepositoryInterface
	responses   repository.ResponseRepositoryInterface
	cache       CacheInvalidator
	validator   *validator.Validate

	mu   sync.Mutex
	rand *rand.Rand
}

// NewDevSeedService creates a new dev seed service
func NewDevSeedService(assessments repository.AssessmentRepositoryInterface, responses repository.ResponseRepositoryInterface, cache CacheInvalidator, validator *validator.Validate) *DevSeedService {
	return &DevSeedService{
		assessments: assessments,
		responses:   responses,
		cache:       cache,
		validator:   validator,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedResponsesRequest asks for count random responses
type SeedResponsesRequest struct {
	AssessmentID uuid.UUID `json:"assessment_id" validate:"required"`
	Count        int       `json:"count" validate:"min=1,max=500"`
	Departments  []string  `json:"departments,omitempty" validate:"max=50,dive,max=100"`
}

// SeedResponsesResult reports how many responses were stored
type SeedResponsesResult struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
	Created      int       `json:"created"`
}

// SeedResponses stores count random, valid responses for an assessment.
// Departments default to the assessment's allowed list.
func (s *DevSeedService) SeedResponses(ctx context.Context, identity *auth.Identity, req *SeedResponsesRequest) (*SeedResponsesResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	a, err := s.assessments.GetWithQuestionnaire(req.AssessmentID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssessmentNotFound, "get assessment")
	}
	if authorizeOrganization(identity, a.OrganizationID) != nil {
		return nil, apperrors.ErrAssessmentNotFound
	}
	if a.Questionnaire == nil || len(a.Questionnaire.Questions) == 0 {
		return nil, apperrors.NewValidationError("assessment_id", "questionnaire has no questions")
	}

	departments := []string(cleanDepartments(req.Departments))
	if len(departments) == 0 {
		departments = []string(a.Departments)
	}
	if len(a.Departments) > 0 {
		for _, d := range departments {
			if !a.Departments.Contains(d) {
				return nil, apperrors.ErrUnknownDepartment
			}
		}
	}

	q := a.Questionnaire
	span := q.ScaleMax - q.ScaleMin + 1
	now := time.Now().UTC()
	batch := make([]models.Response, req.Count)
	s.mu.Lock()
	for i := range batch {
		// a per-respondent bias keeps answers of one response correlated
		bias := s.rand.Intn(span)
		answers := make([]models.Answer, len(q.Questions))
		for j, question := range q.Questions {
			offset := bias + s.rand.Intn(3) - 1
			if offset < 0 {
				offset = 0
			} else if offset >= span {
				offset = span - 1
			}
			answers[j] = models.Answer{QuestionID: question.ID, Value: q.ScaleMin + offset}
		}
		dept := ""
		if len(departments) > 0 {
			dept = departments[s.rand.Intn(len(departments))]
		}
		batch[i] = models.Response{
			AssessmentID: a.ID,
			Department:   dept,
			SubmittedAt:  now.Add(-time.Duration(s.rand.Intn(72*60)) * time.Minute),
			Answers:      answers,
		}
	}
	s.mu.Unlock()

	if err := s.responses.CreateBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to seed responses: %w", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(a.ID)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assessment_id": a.ID,
		"count":         req.Count,
	}).Info("Seeded development responses")

	return &SeedResponsesResult{AssessmentID: a.ID, Created: req.Count}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/logger"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/ratelimit"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=response.go -destination=../mocks/cache_mocks.go -package=mocks CacheInvalidator

// CacheInvalidator drops cached analytics when new answers arrive
type CacheInvalidator interface {
	Invalidate(assessmentID uuid.UUID)
}

// PublicResponseDependencies groups the collaborators of PublicResponseService
type PublicResponseDependencies struct {
	Assessments   repository.AssessmentRepositoryInterface
	Responses     repository.ResponseRepositoryInterface
	Subscriptions repository.SubscriptionRepositoryInterface
	Organizations repository.OrganizationRepositoryInterface
	Plans         *PlanCatalog
	Limiter       ratelimit.Limiter
	Cache         CacheInvalidator
	Metrics       *observability.Metrics
	Validator     *validator.Validate
}

// PublicResponseService serves the anonymous survey page and stores submissions
type PublicResponseService struct {
	PublicResponseDependencies
	now func() time.Time
}

// NewPublicResponseService creates a new public response service
func NewPublicResponseService(deps PublicResponseDependencies) *PublicResponseService {
	if deps.Limiter == nil {
		deps.Limiter = ratelimit.Unlimited{}
	}
	return &PublicResponseService{PublicResponseDependencies: deps, now: time.Now}
}

// PublicQuestion is a question as shown to respondents
type PublicQuestion struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Position int       `json:"position"`
}

// PublicAssessmentResponse is what the anonymous survey page renders
type PublicAssessmentResponse struct {
	Title            string                   `json:"title"`
	OrganizationName string                   `json:"organization_name"`
	Kind             models.QuestionnaireKind `json:"kind"`
	ScaleMin         int                      `json:"scale_min"`
	ScaleMax         int                      `json:"scale_max"`
	EndsAt           *string                  `json:"ends_at,omitempty"`
	Departments      []string                 `json:"departments"`
	Questions        []PublicQuestion         `json:"questions"`
}

// AnswerInput is one answer of a submission
type AnswerInput struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Value      int       `json:"value"`
}

// SubmitResponseRequest is an anonymous submission
type SubmitResponseRequest struct {
	Department string        `json:"department,omitempty" validate:"max=100"`
	Answers    []AnswerInput `json:"answers" validate:"required,min=1,dive"`
}

// SubmitResponseResult acknowledges a stored submission
type SubmitResponseResult struct {
	ResponseID  uuid.UUID `json:"response_id"`
	SubmittedAt string    `json:"submitted_at"`
}

// GetPublicAssessment returns the survey behind token if it is open now
func (s *PublicResponseService) GetPublicAssessment(ctx context.Context, token string) (*PublicAssessmentResponse, error) {
	a, err := s.openAssessment(token)
	if err != nil {
		return nil, err
	}

	resp := &PublicAssessmentResponse{
		Title:       a.Title,
		Kind:        a.Questionnaire.Kind,
		ScaleMin:    a.Questionnaire.ScaleMin,
		ScaleMax:    a.Questionnaire.ScaleMax,
		EndsAt:      formatTimePtr(a.EndsAt),
		Departments: []string(a.Departments),
		Questions:   make([]PublicQuestion, len(a.Questionnaire.Questions)),
	}
	if resp.Departments == nil {
		resp.Departments = []string{}
	}
	for i, q := range a.Questionnaire.Questions {
		resp.Questions[i] = PublicQuestion{ID: q.ID, Text: q.Text, Position: q.Position}
	}
	if org, err := s.Organizations.GetByID(a.OrganizationID); err == nil {
		resp.OrganizationName = org.Name
	} else {
		logger.WithContext(ctx).WithError(err).Warn("Failed to load organization for public assessment")
	}
	return resp, nil
}

// Submit stores one anonymous response. clientKey identifies the caller for
// rate limiting, usually the client IP.
func (s *PublicResponseService) Submit(ctx context.Context, token, clientKey string, req *SubmitResponseRequest) (*SubmitResponseResult, error) {
	allowed, err := s.Limiter.Allow(ctx, "submit:"+clientKey)
	if err != nil {
		// fail open
		logger.WithContext(ctx).WithError(err).Warn("Rate limiter unavailable")
	} else if !allowed {
		s.Metrics.RecordRateLimited()
		return nil, apperrors.ErrRateLimited
	}

	if err := s.Validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	a, err := s.openAssessment(token)
	if err != nil {
		return nil, err
	}

	department := strings.TrimSpace(req.Department)
	if len(a.Departments) > 0 && !a.Departments.Contains(department) {
		return nil, apperrors.ErrUnknownDepartment
	}

	answers, err := buildAnswers(a.Questionnaire, req.Answers)
	if err != nil {
		return nil, err
	}

	if err := s.checkEntitlement(a); err != nil {
		return nil, err
	}

	resp := &models.Response{
		AssessmentID: a.ID,
		Department:   department,
		SubmittedAt:  s.now().UTC(),
		Answers:      answers,
	}
	if err := s.Responses.Create(resp); err != nil {
		return nil, fmt.Errorf("failed to store response: %w", err)
	}

	s.Metrics.RecordSubmission()
	if s.Cache != nil {
		s.Cache.Invalidate(a.ID)
	}

	return &SubmitResponseResult{ResponseID: resp.ID, SubmittedAt: formatTime(resp.SubmittedAt)}, nil
}

// openAssessment resolves token to an assessment accepting responses now
func (s *PublicResponseService) openAssessment(token string) (*models.Assessment, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrAssessmentNotFound
	}
	a, err := s.Assessments.GetByPublicToken(token)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssessmentNotFound, "get assessment")
	}
	if !a.IsOpenAt(s.now()) || a.Questionnaire == nil {
		return nil, apperrors.ErrAssessmentNotOpen
	}
	return a, nil
}

// buildAnswers requires exactly one in-scale answer for every question
func buildAnswers(q *models.Questionnaire, inputs []AnswerInput) ([]models.Answer, error) {
	if len(inputs) != len(q.Questions) {
		return nil, apperrors.ErrIncompleteResponse
	}
	known := make(map[uuid.UUID]bool, len(q.Questions))
	for _, question := range q.Questions {
		known[question.ID] = true
	}

	seen := make(map[uuid.UUID]bool, len(inputs))
	answers := make([]models.Answer, 0, len(inputs))
	for _, in := range inputs {
		if !known[in.QuestionID] || seen[in.QuestionID] {
			return nil, apperrors.ErrIncompleteResponse
		}
		if in.Value < q.ScaleMin || in.Value > q.ScaleMax {
			return nil, apperrors.ErrAnswerOutOfScale
		}
		seen[in.QuestionID] = true
		answers = append(answers, models.Answer{QuestionID: in.QuestionID, Value: in.Value})
	}
	return answers, nil
}

// checkEntitlement requires an active or trialing subscription and enforces
// the plan's respondents per assessment
func (s *PublicResponseService) checkEntitlement(a *models.Assessment) error {
	if s.Plans == nil || s.Subscriptions == nil {
		return nil
	}
	sub, err := s.Subscriptions.GetByOrganizationID(a.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubscriptionRequired
		}
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if !sub.Status.IsEntitled() {
		return apperrors.ErrSubscriptionRequired
	}
	plan, err := s.Plans.Get(sub.PlanID)
	if err != nil {
		return err
	}
	if plan.MaxRespondents <= 0 {
		return nil
	}
	count, err := s.Responses.CountByAssessment(a.ID)
	if err != nil {
		return fmt.Errorf("failed to count responses: %w", err)
	}
	if !plan.AllowsRespondents(count) {
		return apperrors.ErrPlanLimitReached
	}
	return nil
}

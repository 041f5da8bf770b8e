package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/logger"
	"psicomapa-backend/internal/notify"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transition triggers reported to metrics
const (
	TriggerManual   = "manual"
	TriggerSchedule = "schedule"
)

// AssessmentDependencies groups the collaborators of AssessmentService
type AssessmentDependencies struct {
	Assessments    repository.AssessmentRepositoryInterface
	Questionnaires repository.QuestionnaireRepositoryInterface
	Responses      repository.ResponseRepositoryInterface
	Subscriptions  repository.SubscriptionRepositoryInterface
	Profiles       repository.ProfileRepositoryInterface
	Organizations  repository.OrganizationRepositoryInterface
	Plans          *PlanCatalog
	Mailer         notify.Mailer
	Events         notify.Publisher
	Metrics        *observability.Metrics
	AppURL         string
	Validator      *validator.Validate
}

// AssessmentService manages the lifecycle of survey campaigns
type AssessmentService struct {
	AssessmentDependencies
	now func() time.Time
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(deps AssessmentDependencies) *AssessmentService {
	return &AssessmentService{AssessmentDependencies: deps, now: time.Now}
}

// CreateAssessmentRequest represents the request to create an assessment
type CreateAssessmentRequest struct {
	QuestionnaireID uuid.UUID  `json:"questionnaire_id" validate:"required"`
	Title           string     `json:"title" validate:"required,min=1,max=200"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	Departments     []string   `json:"departments,omitempty" validate:"max=100,dive,max=100"`
}

// UpdateAssessmentRequest changes a draft assessment
type UpdateAssessmentRequest = CreateAssessmentRequest

// AssessmentResponse represents an assessment
type AssessmentResponse struct {
	ID                uuid.UUID               `json:"id"`
	OrganizationID    uuid.UUID               `json:"organization_id"`
	QuestionnaireID   uuid.UUID               `json:"questionnaire_id"`
	QuestionnaireName string                  `json:"questionnaire_name,omitempty"`
	Title             string                  `json:"title"`
	Status            models.AssessmentStatus `json:"status"`
	PublicToken       string                  `json:"public_token,omitempty"`
	PublicURL         string                  `json:"public_url,omitempty"`
	StartsAt          *string                 `json:"starts_at,omitempty"`
	EndsAt            *string                 `json:"ends_at,omitempty"`
	ClosedAt          *string                 `json:"closed_at,omitempty"`
	Departments       []string                `json:"departments"`
	Respondents       *int64                  `json:"respondents,omitempty"`
	CreatedAt         string                  `json:"created_at"`
	UpdatedAt         string                  `json:"updated_at"`
}

// AssessmentListResponse is a paginated list of assessments
type AssessmentListResponse struct {
	Assessments []AssessmentResponse `json:"assessments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a draft assessment in the caller's organization
func (s *AssessmentService) Create(identity *auth.Identity, orgID *uuid.UUID, req *CreateAssessmentRequest) (*AssessmentResponse, error) {
	resolved, err := resolveOrganization(identity, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	q, err := s.questionnaireFor(resolved, req.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	a := &models.Assessment{
		OrganizationID:  resolved,
		QuestionnaireID: q.ID,
		Title:           strings.TrimSpace(req.Title),
		Status:          models.AssessmentStatusDraft,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Departments:     cleanDepartments(req.Departments),
	}
	if identity != nil {
		createdBy := identity.UserID
		a.CreatedBy = &createdBy
	}

	if err := s.Assessments.Create(a); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	a.Questionnaire = q
	return s.toResponse(a, nil), nil
}

func (s *AssessmentService) validateRequest(req *CreateAssessmentRequest) error {
	if err := s.Validator.Struct(req); err != nil {
		return validationFailed(err)
	}
	if req.StartsAt != nil && req.EndsAt != nil && !req.EndsAt.After(*req.StartsAt) {
		return apperrors.NewValidationError("ends_at", "must be after starts_at")
	}
	return nil
}

// questionnaireFor loads a questionnaire usable by orgID
func (s *AssessmentService) questionnaireFor(orgID, questionnaireID uuid.UUID) (*models.Questionnaire, error) {
	q, err := s.Questionnaires.GetByID(questionnaireID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrQuestionnaireNotFound, "get questionnaire")
	}
	if q.OrganizationID != nil && *q.OrganizationID != orgID {
		return nil, apperrors.ErrQuestionnaireNotFound
	}
	if len(q.Questions) == 0 {
		return nil, apperrors.NewValidationError("questionnaire_id", "questionnaire has no questions")
	}
	return q, nil
}

// cleanDepartments trims, drops blanks and removes duplicates keeping order
func cleanDepartments(in []string) models.StringList {
	out := make(models.StringList, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, d := range in {
		d = strings.TrimSpace(d)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// GetByID returns an assessment with its respondent count
func (s *AssessmentService) GetByID(identity *auth.Identity, id uuid.UUID) (*AssessmentResponse, error) {
	a, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}
	count, err := s.Responses.CountByAssessment(a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count responses: %w", err)
	}
	return s.toResponse(a, &count), nil
}

// List returns an organization's assessments, optionally filtered by status
func (s *AssessmentService) List(identity *auth.Identity, orgID *uuid.UUID, status string, page, pageSize int) (*AssessmentListResponse, error) {
	resolved, err := resolveOrganization(identity, orgID)
	if err != nil {
		return nil, err
	}
	st := models.AssessmentStatus(status)
	if st != "" && !st.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be draft, active or closed")
	}
	page, pageSize, offset := paginate(page, pageSize)

	items, total, err := s.Assessments.GetByOrganizationID(resolved, st, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessments: %w", err)
	}
	responses := make([]AssessmentResponse, len(items))
	for i := range items {
		responses[i] = *s.toResponse(&items[i], nil)
	}
	return &AssessmentListResponse{Assessments: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update changes a draft assessment
func (s *AssessmentService) Update(identity *auth.Identity, id uuid.UUID, req *UpdateAssessmentRequest) (*AssessmentResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	a, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}
	if a.Status != models.AssessmentStatusDraft {
		return nil, apperrors.ErrAssessmentNotEditable
	}
	if req.QuestionnaireID != a.QuestionnaireID {
		q, err := s.questionnaireFor(a.OrganizationID, req.QuestionnaireID)
		if err != nil {
			return nil, err
		}
		a.QuestionnaireID = q.ID
		a.Questionnaire = q
	}

	a.Title = strings.TrimSpace(req.Title)
	a.StartsAt = req.StartsAt
	a.EndsAt = req.EndsAt
	a.Departments = cleanDepartments(req.Departments)

	if err := s.Assessments.Update(a); err != nil {
		return nil, fmt.Errorf("failed to update assessment: %w", err)
	}
	return s.toResponse(a, nil), nil
}

// Activate opens a draft assessment for responses. The organization needs an
// entitled subscription whose plan still allows another active assessment.
func (s *AssessmentService) Activate(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*AssessmentResponse, error) {
	a, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransitionTo(models.AssessmentStatusActive) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	now := s.now()
	if a.EndsAt != nil && !a.EndsAt.After(now) {
		return nil, apperrors.NewValidationError("ends_at", "is already in the past")
	}

	plan, err := s.entitledPlan(a.OrganizationID)
	if err != nil {
		return nil, err
	}
	active, err := s.Assessments.CountActive(a.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active assessments: %w", err)
	}
	if !plan.AllowsActiveAssessments(active) {
		return nil, apperrors.ErrPlanLimitReached
	}

	token := newPublicToken()
	a.PublicToken = &token
	a.Status = models.AssessmentStatusActive
	if a.StartsAt == nil {
		a.StartsAt = &now
	}
	if err := s.Assessments.Update(a); err != nil {
		return nil, fmt.Errorf("failed to activate assessment: %w", err)
	}

	s.Metrics.RecordTransition(string(models.AssessmentStatusActive), TriggerManual)
	s.Events.Publish(ctx, notify.NewEvent(notify.EventAssessmentActivated, a.OrganizationID.String(), map[string]interface{}{
		"assessment_id": a.ID.String(),
		"title":         a.Title,
		"public_url":    s.publicURL(token),
		"ends_at":       formatTimePtr(a.EndsAt),
		"plan_id":       plan.ID,
	}))
	logger.WithContext(ctx).WithField("assessment_id", a.ID).Info("Assessment activated")

	return s.toResponse(a, nil), nil
}

// entitledPlan returns the organization's plan when its subscription allows paid features
func (s *AssessmentService) entitledPlan(orgID uuid.UUID) (*Plan, error) {
	sub, err := s.Subscriptions.GetByOrganizationID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionRequired
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if !sub.Status.IsEntitled() {
		return nil, apperrors.ErrSubscriptionRequired
	}
	return s.Plans.Get(sub.PlanID)
}

// Close stops collecting responses
func (s *AssessmentService) Close(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*AssessmentResponse, error) {
	a, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransitionTo(models.AssessmentStatusClosed) {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	count, err := s.closeAssessment(ctx, a, TriggerManual)
	if err != nil {
		return nil, err
	}
	return s.toResponse(a, &count), nil
}

// closeAssessment persists the closed state, then notifies. Notification
// failures are logged only.
func (s *AssessmentService) closeAssessment(ctx context.Context, a *models.Assessment, trigger string) (int64, error) {
	now := s.now()
	a.Status = models.AssessmentStatusClosed
	a.ClosedAt = &now
	if err := s.Assessments.Update(a); err != nil {
		return 0, fmt.Errorf("failed to close assessment: %w", err)
	}
	s.Metrics.RecordTransition(string(models.AssessmentStatusClosed), trigger)

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assessment_id": a.ID,
		"trigger":       trigger,
	})

	count, err := s.Responses.CountByAssessment(a.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to count responses of closed assessment")
	}

	s.Events.Publish(ctx, notify.NewEvent(notify.EventAssessmentClosed, a.OrganizationID.String(), map[string]interface{}{
		"assessment_id": a.ID.String(),
		"title":         a.Title,
		"respondents":   count,
		"trigger":       trigger,
	}))
	s.emailAdmins(ctx, a, count)

	log.WithField("respondents", count).Info("Assessment closed")
	return count, nil
}

func (s *AssessmentService) emailAdmins(ctx context.Context, a *models.Assessment, respondents int64) {
	log := logger.WithContext(ctx).WithField("assessment_id", a.ID)

	admins, err := s.Profiles.GetActiveByRole(a.OrganizationID, models.RoleOrgAdmin)
	if err != nil {
		log.WithError(err).Warn("Failed to load organization admins")
		return
	}
	if len(admins) == 0 {
		return
	}
	orgName := ""
	if org, err := s.Organizations.GetByID(a.OrganizationID); err == nil {
		orgName = org.Name
	}

	to := make([]string, len(admins))
	for i, p := range admins {
		to[i] = p.Email
	}
	msg, err := notify.AssessmentClosedEmail(to, notify.AssessmentClosedData{
		OrganizationName: orgName,
		AssessmentTitle:  a.Title,
		Respondents:      respondents,
		AppURL:           fmt.Sprintf("%s/avaliacoes/%s", strings.TrimRight(s.AppURL, "/"), a.ID),
	})
	if err != nil {
		log.WithError(err).Error("Failed to render assessment closed email")
		return
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.Metrics.RecordEmail("assessment_closed", "error")
		log.WithError(err).Warn("Failed to send assessment closed email")
		return
	}
	s.Metrics.RecordEmail("assessment_closed", "sent")
}

// CloseExpired closes every active assessment whose end date has passed and
// returns how many were closed
func (s *AssessmentService) CloseExpired(ctx context.Context) (int, error) {
	expired, err := s.Assessments.GetExpired(s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to get expired assessments: %w", err)
	}

	closed := 0
	for i := range expired {
		if _, err := s.closeAssessment(ctx, &expired[i], TriggerSchedule); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("assessment_id", expired[i].ID).Error("Failed to close expired assessment")
			continue
		}
		closed++
	}
	return closed, nil
}

// NotifyClosingSoon publishes a reminder for active assessments ending within window
func (s *AssessmentService) NotifyClosingSoon(ctx context.Context, window time.Duration) (int, error) {
	now := s.now()
	ending, err := s.Assessments.GetEndingBetween(now, now.Add(window))
	if err != nil {
		return 0, fmt.Errorf("failed to get assessments ending soon: %w", err)
	}

	for i := range ending {
		a := &ending[i]
		count, err := s.Responses.CountByAssessment(a.ID)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("assessment_id", a.ID).Warn("Failed to count responses")
		}
		data := map[string]interface{}{
			"assessment_id": a.ID.String(),
			"title":         a.Title,
			"ends_at":       formatTimePtr(a.EndsAt),
			"respondents":   count,
		}
		if a.PublicToken != nil {
			data["public_url"] = s.publicURL(*a.PublicToken)
		}
		s.Events.Publish(ctx, notify.NewEvent(notify.EventAssessmentClosingSoon, a.OrganizationID.String(), data))
	}
	return len(ending), nil
}

// Delete removes a draft assessment
func (s *AssessmentService) Delete(identity *auth.Identity, id uuid.UUID) error {
	a, err := s.load(identity, id)
	if err != nil {
		return err
	}
	if a.Status != models.AssessmentStatusDraft {
		return apperrors.ErrAssessmentNotEditable
	}
	if err := s.Assessments.Delete(a.ID); err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	return nil
}

// load fetches an assessment and hides other tenants' assessments as not found
func (s *AssessmentService) load(identity *auth.Identity, id uuid.UUID) (*models.Assessment, error) {
	a, err := s.Assessments.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssessmentNotFound, "get assessment")
	}
	if authorizeOrganization(identity, a.OrganizationID) != nil {
		return nil, apperrors.ErrAssessmentNotFound
	}
	return a, nil
}

func (s *AssessmentService) publicURL(token string) string {
	return fmt.Sprintf("%s/pesquisa/%s", strings.TrimRight(s.AppURL, "/"), token)
}

func (s *AssessmentService) toResponse(a *models.Assessment, respondents *int64) *AssessmentResponse {
	resp := &AssessmentResponse{
		ID:              a.ID,
		OrganizationID:  a.OrganizationID,
		QuestionnaireID: a.QuestionnaireID,
		Title:           a.Title,
		Status:          a.Status,
		StartsAt:        formatTimePtr(a.StartsAt),
		EndsAt:          formatTimePtr(a.EndsAt),
		ClosedAt:        formatTimePtr(a.ClosedAt),
		Departments:     []string(a.Departments),
		Respondents:     respondents,
		CreatedAt:       formatTime(a.CreatedAt),
		UpdatedAt:       formatTime(a.UpdatedAt),
	}
	if resp.Departments == nil {
		resp.Departments = []string{}
	}
	if a.Questionnaire != nil {
		resp.QuestionnaireName = a.Questionnaire.Name
	}
	if a.PublicToken != nil {
		resp.PublicToken = *a.PublicToken
		resp.PublicURL = s.publicURL(*a.PublicToken)
	}
	return resp
}

// newPublicToken returns an unguessable 32 hex character token
func newPublicToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

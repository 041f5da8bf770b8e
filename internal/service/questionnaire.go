package service

import (
	"errors"
	"fmt"
	"strings"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionnaireService handles questionnaires and their questions
type QuestionnaireService struct {
	repo      repository.QuestionnaireRepositoryInterface
	validator *validator.Validate
}

// NewQuestionnaireService creates a new questionnaire service
func NewQuestionnaireService(repo repository.QuestionnaireRepositoryInterface, validator *validator.Validate) *QuestionnaireService {
	return &QuestionnaireService{repo: repo, validator: validator}
}

// QuestionRequest is one item of a questionnaire being created
type QuestionRequest struct {
	Text      string          `json:"text" validate:"required,max=1000"`
	Dimension string          `json:"dimension" validate:"required,max=100"`
	Position  int             `json:"position" validate:"min=1"`
	Polarity  models.Polarity `json:"polarity" validate:"omitempty,oneof=negative positive"`
}

// CreateQuestionnaireRequest represents the request to create a questionnaire
type CreateQuestionnaireRequest struct {
	Name        string                   `json:"name" validate:"required,min=1,max=200"`
	Description string                   `json:"description,omitempty"`
	Kind        models.QuestionnaireKind `json:"kind" validate:"required,oneof=psychosocial climate"`
	ScaleMin    int                      `json:"scale_min"`
	ScaleMax    int                      `json:"scale_max"`
	IsTemplate  bool                     `json:"is_template"`
	Questions   []QuestionRequest        `json:"questions" validate:"required,min=1,dive"`
}

// UpdateQuestionnaireRequest changes questionnaire metadata only
type UpdateQuestionnaireRequest struct {
	Name        string                   `json:"name" validate:"required,min=1,max=200"`
	Description string                   `json:"description,omitempty"`
	Kind        models.QuestionnaireKind `json:"kind" validate:"required,oneof=psychosocial climate"`
}

// CloneQuestionnaireRequest copies a questionnaire into the caller's organization
type CloneQuestionnaireRequest struct {
	Name string `json:"name,omitempty" validate:"max=200"`
}

// QuestionResponse represents a question
type QuestionResponse struct {
	ID        uuid.UUID       `json:"id"`
	Text      string          `json:"text"`
	Dimension string          `json:"dimension"`
	Position  int             `json:"position"`
	Polarity  models.Polarity `json:"polarity"`
}

// QuestionnaireResponse represents a questionnaire with its questions
type QuestionnaireResponse struct {
	ID             uuid.UUID                `json:"id"`
	OrganizationID *uuid.UUID               `json:"organization_id,omitempty"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description"`
	Kind           models.QuestionnaireKind `json:"kind"`
	ScaleMin       int                      `json:"scale_min"`
	ScaleMax       int                      `json:"scale_max"`
	IsTemplate     bool                     `json:"is_template"`
	Dimensions     []string                 `json:"dimensions"`
	Questions      []QuestionResponse       `json:"questions,omitempty"`
	CreatedAt      string                   `json:"created_at"`
	UpdatedAt      string                   `json:"updated_at"`
}

// QuestionnaireListResponse is a paginated list of questionnaires
type QuestionnaireListResponse struct {
	Questionnaires []QuestionnaireResponse `json:"questionnaires"`
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	PageSize       int                     `json:"page_size"`
}

// Create creates a questionnaire with its questions. Platform admins may
// create global templates by setting is_template.
func (s *QuestionnaireService) Create(identity *auth.Identity, req *CreateQuestionnaireRequest) (*QuestionnaireResponse, error) {
	if req.ScaleMin == 0 && req.ScaleMax == 0 {
		req.ScaleMin, req.ScaleMax = 1, 5
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if err := validateQuestions(req.ScaleMin, req.ScaleMax, req.Questions); err != nil {
		return nil, err
	}

	var orgID *uuid.UUID
	if req.IsTemplate {
		if !identity.IsPlatformAdmin() {
			return nil, apperrors.ErrForbidden
		}
		existing, err := s.repo.GetTemplateByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing template: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrQuestionnaireExists
		}
	} else {
		resolved, err := resolveOrganization(identity, nil)
		if err != nil {
			return nil, err
		}
		if err := s.ensureNameFree(resolved, req.Name); err != nil {
			return nil, err
		}
		orgID = &resolved
	}

	q := &models.Questionnaire{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Kind:           req.Kind,
		ScaleMin:       req.ScaleMin,
		ScaleMax:       req.ScaleMax,
		IsTemplate:     req.IsTemplate,
		Questions:      make([]models.Question, len(req.Questions)),
	}
	for i, item := range req.Questions {
		polarity := item.Polarity
		if polarity == "" {
			polarity = models.PolarityNegative
		}
		q.Questions[i] = models.Question{
			Text:      strings.TrimSpace(item.Text),
			Dimension: strings.TrimSpace(item.Dimension),
			Position:  item.Position,
			Polarity:  polarity,
		}
	}

	if err := s.repo.Create(q); err != nil {
		return nil, fmt.Errorf("failed to create questionnaire: %w", err)
	}
	return toQuestionnaireResponse(q, true), nil
}

// validateQuestions checks the scale and that positions are unique
func validateQuestions(scaleMin, scaleMax int, questions []QuestionRequest) error {
	if scaleMin >= scaleMax {
		return apperrors.NewValidationError("scale_max", "must be greater than scale_min")
	}
	if scaleMax-scaleMin > 10 {
		return apperrors.NewValidationError("scale_max", "scale cannot have more than 11 points")
	}
	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if seen[q.Position] {
			return apperrors.NewValidationError("questions", fmt.Sprintf("duplicate position %d", q.Position))
		}
		seen[q.Position] = true
	}
	return nil
}

func (s *QuestionnaireService) ensureNameFree(orgID uuid.UUID, name string) error {
	existing, err := s.repo.GetByOrganizationAndName(orgID, strings.TrimSpace(name))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing questionnaire: %w", err)
	}
	if existing != nil {
		return apperrors.ErrQuestionnaireExists
	}
	return nil
}

// GetByID returns a questionnaire visible to the caller
func (s *QuestionnaireService) GetByID(identity *auth.Identity, id uuid.UUID) (*QuestionnaireResponse, error) {
	q, err := s.loadVisible(identity, id)
	if err != nil {
		return nil, err
	}
	return toQuestionnaireResponse(q, true), nil
}

// ListAvailable lists the caller organization's questionnaires plus global templates
func (s *QuestionnaireService) ListAvailable(identity *auth.Identity, page, pageSize int) (*QuestionnaireListResponse, error) {
	if identity == nil {
		return nil, apperrors.ErrForbidden
	}
	page, pageSize, offset := paginate(page, pageSize)

	items, total, err := s.repo.GetAvailable(identity.OrganizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get questionnaires: %w", err)
	}

	responses := make([]QuestionnaireResponse, len(items))
	for i := range items {
		responses[i] = *toQuestionnaireResponse(&items[i], false)
	}
	return &QuestionnaireListResponse{Questionnaires: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update changes name, description and kind
func (s *QuestionnaireService) Update(identity *auth.Identity, id uuid.UUID, req *UpdateQuestionnaireRequest) (*QuestionnaireResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	q, err := s.loadWritable(identity, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if q.OrganizationID != nil && name != q.Name {
		if err := s.ensureNameFree(*q.OrganizationID, name); err != nil {
			return nil, err
		}
	}

	q.Name = name
	q.Description = req.Description
	q.Kind = req.Kind
	if err := s.repo.Update(q); err != nil {
		return nil, fmt.Errorf("failed to update questionnaire: %w", err)
	}
	return toQuestionnaireResponse(q, true), nil
}

// Delete removes a questionnaire unless an assessment uses it
func (s *QuestionnaireService) Delete(identity *auth.Identity, id uuid.UUID) error {
	q, err := s.loadWritable(identity, id)
	if err != nil {
		return err
	}
	count, err := s.repo.CountAssessments(q.ID)
	if err != nil {
		return fmt.Errorf("failed to count assessments: %w", err)
	}
	if count > 0 {
		return apperrors.ErrQuestionnaireInUse
	}
	if err := s.repo.Delete(q.ID); err != nil {
		return fmt.Errorf("failed to delete questionnaire: %w", err)
	}
	return nil
}

// Clone copies a visible questionnaire, usually a template, into the
// caller's organization so it can be customised.
func (s *QuestionnaireService) Clone(identity *auth.Identity, id uuid.UUID, req *CloneQuestionnaireRequest) (*QuestionnaireResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	orgID, err := resolveOrganization(identity, nil)
	if err != nil {
		return nil, err
	}
	src, err := s.loadVisible(identity, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = src.Name
	}
	if err := s.ensureNameFree(orgID, name); err != nil {
		return nil, err
	}

	clone := &models.Questionnaire{
		OrganizationID: &orgID,
		Name:           name,
		Description:    src.Description,
		Kind:           src.Kind,
		ScaleMin:       src.ScaleMin,
		ScaleMax:       src.ScaleMax,
		Questions:      make([]models.Question, len(src.Questions)),
	}
	for i, q := range src.Questions {
		clone.Questions[i] = models.Question{
			Text:      q.Text,
			Dimension: q.Dimension,
			Position:  q.Position,
			Polarity:  q.Polarity,
		}
	}

	if err := s.repo.Create(clone); err != nil {
		return nil, fmt.Errorf("failed to clone questionnaire: %w", err)
	}
	return toQuestionnaireResponse(clone, true), nil
}

// loadVisible returns templates and the caller organization's questionnaires
func (s *QuestionnaireService) loadVisible(identity *auth.Identity, id uuid.UUID) (*models.Questionnaire, error) {
	q, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrQuestionnaireNotFound, "get questionnaire")
	}
	if q.IsTemplate || q.OrganizationID == nil {
		return q, nil
	}
	if authorizeOrganization(identity, *q.OrganizationID) != nil {
		return nil, apperrors.ErrQuestionnaireNotFound
	}
	return q, nil
}

// loadWritable is loadVisible restricted to what the caller may change
func (s *QuestionnaireService) loadWritable(identity *auth.Identity, id uuid.UUID) (*models.Questionnaire, error) {
	q, err := s.loadVisible(identity, id)
	if err != nil {
		return nil, err
	}
	if q.OrganizationID == nil && !identity.IsPlatformAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return q, nil
}

func toQuestionnaireResponse(q *models.Questionnaire, withQuestions bool) *QuestionnaireResponse {
	resp := &QuestionnaireResponse{
		ID:             q.ID,
		OrganizationID: q.OrganizationID,
		Name:           q.Name,
		Description:    q.Description,
		Kind:           q.Kind,
		ScaleMin:       q.ScaleMin,
		ScaleMax:       q.ScaleMax,
		IsTemplate:     q.IsTemplate,
		Dimensions:     dimensionsOf(q.Questions),
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
	if withQuestions {
		resp.Questions = make([]QuestionResponse, len(q.Questions))
		for i, item := range q.Questions {
			resp.Questions[i] = QuestionResponse{
				ID:        item.ID,
				Text:      item.Text,
				Dimension: item.Dimension,
				Position:  item.Position,
				Polarity:  item.Polarity,
			}
		}
	}
	return resp
}

// dimensionsOf lists dimensions in order of first appearance
func dimensionsOf(questions []models.Question) []string {
	seen := make(map[string]bool)
	dims := make([]string, 0)
	for _, q := range questions {
		if !seen[q.Dimension] {
			seen[q.Dimension] = true
			dims = append(dims, q.Dimension)
		}
	}
	return dims
}

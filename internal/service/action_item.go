package service

import (
	"fmt"
	"strings"
	"time"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ActionItemService manages the action plan of an assessment
type ActionItemService struct {
	repo        repository.ActionItemRepositoryInterface
	assessments repository.AssessmentRepositoryInterface
	validator   *validator.Validate
}

// NewActionItemService creates a new action item service
func NewActionItemService(repo repository.ActionItemRepositoryInterface, assessments repository.AssessmentRepositoryInterface, validator *validator.Validate) *ActionItemService {
	return &ActionItemService{repo: repo, assessments: assessments, validator: validator}
}

// CreateActionItemRequest represents the request to create an action item
type CreateActionItemRequest struct {
	Dimension   string              `json:"dimension" validate:"required,max=100"`
	Description string              `json:"description" validate:"required,max=2000"`
	Owner       string              `json:"owner,omitempty" validate:"max=200"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	Status      models.ActionStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress done"`
}

// UpdateActionItemRequest changes the given fields of an action item
type UpdateActionItemRequest struct {
	Description *string              `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	Owner       *string              `json:"owner,omitempty" validate:"omitempty,max=200"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	Status      *models.ActionStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress done"`
}

// ActionItemResponse represents an action item
type ActionItemResponse struct {
	ID           uuid.UUID           `json:"id"`
	AssessmentID uuid.UUID           `json:"assessment_id"`
	Dimension    string              `json:"dimension"`
	Description  string              `json:"description"`
	Owner        string              `json:"owner"`
	DueDate      *string             `json:"due_date,omitempty"`
	Status       models.ActionStatus `json:"status"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

// Create adds an action item for one of the assessment's dimensions
func (s *ActionItemService) Create(identity *auth.Identity, assessmentID uuid.UUID, req *CreateActionItemRequest) (*ActionItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	a, err := s.loadAssessment(identity, assessmentID)
	if err != nil {
		return nil, err
	}

	dimension := strings.TrimSpace(req.Dimension)
	if a.Questionnaire != nil && !models.StringList(dimensionsOf(a.Questionnaire.Questions)).Contains(dimension) {
		return nil, apperrors.NewValidationError("dimension", "is not a dimension of this assessment's questionnaire")
	}

	status := req.Status
	if status == "" {
		status = models.ActionStatusPending
	}
	item := &models.ActionItem{
		AssessmentID: a.ID,
		Dimension:    dimension,
		Description:  strings.TrimSpace(req.Description),
		Owner:        strings.TrimSpace(req.Owner),
		DueDate:      req.DueDate,
		Status:       status,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}
	return toActionItemResponse(item), nil
}

// ListByAssessment returns the action plan of an assessment
func (s *ActionItemService) ListByAssessment(identity *auth.Identity, assessmentID uuid.UUID) ([]ActionItemResponse, error) {
	a, err := s.loadAssessment(identity, assessmentID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.GetByAssessmentID(a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get action items: %w", err)
	}
	responses := make([]ActionItemResponse, len(items))
	for i := range items {
		responses[i] = *toActionItemResponse(&items[i])
	}
	return responses, nil
}

// Update changes an action item
func (s *ActionItemService) Update(identity *auth.Identity, id uuid.UUID, req *UpdateActionItemRequest) (*ActionItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	item, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Owner != nil {
		item.Owner = strings.TrimSpace(*req.Owner)
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return toActionItemResponse(item), nil
}

// Delete removes an action item
func (s *ActionItemService) Delete(identity *auth.Identity, id uuid.UUID) error {
	item, err := s.load(identity, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(item.ID); err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	return nil
}

func (s *ActionItemService) loadAssessment(identity *auth.Identity, id uuid.UUID) (*models.Assessment, error) {
	a, err := s.assessments.GetWithQuestionnaire(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssessmentNotFound, "get assessment")
	}
	if authorizeOrganization(identity, a.OrganizationID) != nil {
		return nil, apperrors.ErrAssessmentNotFound
	}
	return a, nil
}

func (s *ActionItemService) load(identity *auth.Identity, id uuid.UUID) (*models.ActionItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrActionItemNotFound, "get action item")
	}
	a, err := s.assessments.GetByID(item.AssessmentID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrActionItemNotFound, "get assessment")
	}
	if authorizeOrganization(identity, a.OrganizationID) != nil {
		return nil, apperrors.ErrActionItemNotFound
	}
	return item, nil
}

func toActionItemResponse(item *models.ActionItem) *ActionItemResponse {
	return &ActionItemResponse{
		ID:           item.ID,
		AssessmentID: item.AssessmentID,
		Dimension:    item.Dimension,
		Description:  item.Description,
		Owner:        item.Owner,
		DueDate:      formatTimePtr(item.DueDate),
		Status:       item.Status,
		CreatedAt:    formatTime(item.CreatedAt),
		UpdatedAt:    formatTime(item.UpdatedAt),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/notify"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	events    notify.Publisher
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, events notify.Publisher, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		events:    events,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Slug          string `json:"slug,omitempty" validate:"omitempty,max=100"`
	CNPJ          string `json:"cnpj,omitempty" validate:"omitempty,cnpj"`
	Sector        string `json:"sector,omitempty" validate:"max=100"`
	EmployeeCount int    `json:"employee_count" validate:"min=0"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	CNPJ          string `json:"cnpj,omitempty" validate:"omitempty,cnpj"`
	Sector        string `json:"sector,omitempty" validate:"max=100"`
	EmployeeCount int    `json:"employee_count" validate:"min=0"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	CNPJ          string    `json:"cnpj,omitempty"`
	Sector        string    `json:"sector"`
	EmployeeCount int       `json:"employee_count"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new organization. Only platform admins onboard tenants.
func (s *OrganizationService) Create(ctx context.Context, identity *auth.Identity, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if !identity.IsPlatformAdmin() {
		return nil, apperrors.ErrForbidden
	}

	req.CNPJ = OnlyDigits(req.CNPJ)
	if req.Slug == "" {
		req.Slug = Slugify(req.Name)
	} else {
		req.Slug = Slugify(req.Slug)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if req.Slug == "" {
		return nil, apperrors.NewValidationError("slug", "cannot be derived from the name")
	}

	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}
	if req.CNPJ != "" {
		existing, err = s.repo.GetByCNPJ(req.CNPJ)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing organization by cnpj: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrOrganizationExists
		}
	}

	org := &models.Organization{
		Name:          strings.TrimSpace(req.Name),
		Slug:          req.Slug,
		Sector:        req.Sector,
		EmployeeCount: req.EmployeeCount,
	}
	if req.CNPJ != "" {
		cnpj := req.CNPJ
		org.CNPJ = &cnpj
	}

	if err := s.repo.Create(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.events.Publish(ctx, notify.NewEvent(notify.EventOrganizationCreated, org.ID.String(), map[string]interface{}{
		"name":           org.Name,
		"slug":           org.Slug,
		"sector":         org.Sector,
		"employee_count": org.EmployeeCount,
		"created_by":     identity.Email,
	}))

	return toOrganizationResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(identity *auth.Identity, id uuid.UUID) (*OrganizationResponse, error) {
	if err := authorizeOrganization(identity, id); err != nil {
		return nil, err
	}
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrganizationNotFound, "get organization")
	}
	return toOrganizationResponse(org), nil
}

// GetBySlug retrieves an organization by slug
func (s *OrganizationService) GetBySlug(identity *auth.Identity, slug string) (*OrganizationResponse, error) {
	org, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrganizationNotFound, "get organization")
	}
	if err := authorizeOrganization(identity, org.ID); err != nil {
		// do not reveal that the slug exists
		return nil, apperrors.ErrOrganizationNotFound
	}
	return toOrganizationResponse(org), nil
}

// GetAll lists organizations. Platform admins see every tenant, optionally
// filtered by query; other callers see their own organization only.
func (s *OrganizationService) GetAll(identity *auth.Identity, query string, page, pageSize int) (*OrganizationListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	if !identity.IsPlatformAdmin() {
		orgID, err := resolveOrganization(identity, nil)
		if err != nil {
			return nil, err
		}
		org, err := s.repo.GetByID(orgID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrOrganizationNotFound, "get organization")
		}
		return &OrganizationListResponse{
			Organizations: []OrganizationResponse{*toOrganizationResponse(org)},
			Total:         1,
			Page:          page,
			PageSize:      pageSize,
		}, nil
	}

	var (
		orgs  []models.Organization
		total int64
		err   error
	)
	if query = strings.TrimSpace(query); query != "" {
		orgs, total, err = s.repo.Search(query, pageSize, offset)
	} else {
		orgs, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *toOrganizationResponse(&orgs[i])
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates an organization
func (s *OrganizationService) Update(identity *auth.Identity, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := authorizeOrganization(identity, id); err != nil {
		return nil, err
	}
	req.CNPJ = OnlyDigits(req.CNPJ)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrganizationNotFound, "get organization")
	}

	if req.CNPJ != "" && (org.CNPJ == nil || *org.CNPJ != req.CNPJ) {
		other, err := s.repo.GetByCNPJ(req.CNPJ)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing organization by cnpj: %w", err)
		}
		if other != nil && other.ID != org.ID {
			return nil, apperrors.ErrOrganizationExists
		}
	}

	org.Name = strings.TrimSpace(req.Name)
	org.Sector = req.Sector
	org.EmployeeCount = req.EmployeeCount
	if req.CNPJ != "" {
		cnpj := req.CNPJ
		org.CNPJ = &cnpj
	} else {
		org.CNPJ = nil
	}

	if err := s.repo.Update(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return toOrganizationResponse(org), nil
}

// Delete deletes an organization and, through cascades, all of its data
func (s *OrganizationService) Delete(identity *auth.Identity, id uuid.UUID) error {
	if !identity.IsPlatformAdmin() {
		return apperrors.ErrForbidden
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return notFound(err, apperrors.ErrOrganizationNotFound, "get organization")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	resp := &OrganizationResponse{
		ID:            org.ID,
		Name:          org.Name,
		Slug:          org.Slug,
		Sector:        org.Sector,
		EmployeeCount: org.EmployeeCount,
		CreatedAt:     formatTime(org.CreatedAt),
		UpdatedAt:     formatTime(org.UpdatedAt),
	}
	if org.CNPJ != nil {
		resp.CNPJ = *org.CNPJ
	}
	return resp
}

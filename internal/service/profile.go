package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/logger"
	"psicomapa-backend/internal/notify"
	"psicomapa-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService manages the users of an organization
type ProfileService struct {
	repo      repository.ProfileRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	mailer    notify.Mailer
	appURL    string
	validator *validator.Validate
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepositoryInterface, orgs repository.OrganizationRepositoryInterface, mailer notify.Mailer, appURL string, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		repo:      repo,
		orgs:      orgs,
		mailer:    mailer,
		appURL:    appURL,
		validator: validator,
	}
}

// CreateProfileRequest invites a user. UserID is the auth provider's id for
// the account created by the invitation.
type CreateProfileRequest struct {
	UserID         uuid.UUID   `json:"user_id" validate:"required"`
	OrganizationID *uuid.UUID  `json:"organization_id,omitempty"`
	Email          string      `json:"email" validate:"required,email,max=255"`
	FullName       string      `json:"full_name" validate:"required,min=1,max=200"`
	Role           models.Role `json:"role" validate:"required,oneof=platform_admin org_admin manager viewer"`
}

// UpdateRoleRequest changes a profile's role
type UpdateRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=platform_admin org_admin manager viewer"`
}

// ProfileResponse represents a profile
type ProfileResponse struct {
	ID             uuid.UUID   `json:"id"`
	OrganizationID *uuid.UUID  `json:"organization_id,omitempty"`
	Email          string      `json:"email"`
	FullName       string      `json:"full_name"`
	Role           models.Role `json:"role"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

// ProfileListResponse is a paginated list of profiles
type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// MeResponse is the signed-in user's profile with derived permissions
type MeResponse struct {
	Profile      ProfileResponse       `json:"profile"`
	Organization *OrganizationResponse `json:"organization,omitempty"`
	Permissions  auth.Permissions      `json:"permissions"`
}

// Create creates the profile and sends the invitation email
func (s *ProfileService) Create(ctx context.Context, identity *auth.Identity, req *CreateProfileRequest) (*ProfileResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	orgID, err := resolveOrganization(identity, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if req.Role == models.RolePlatformAdmin && !identity.IsPlatformAdmin() {
		return nil, apperrors.ErrForbidden
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrganizationNotFound, "get organization")
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProfileExists
	}

	profile := &models.Profile{
		OrganizationID: &orgID,
		Email:          req.Email,
		FullName:       strings.TrimSpace(req.FullName),
		Role:           req.Role,
		IsActive:       true,
	}
	profile.ID = req.UserID

	if err := s.repo.Create(profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProfileExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.sendInvitation(ctx, profile, org)

	return toProfileResponse(profile), nil
}

func (s *ProfileService) sendInvitation(ctx context.Context, profile *models.Profile, org *models.Organization) {
	log := logger.WithContext(ctx).WithField("profile_id", profile.ID)
	msg, err := notify.InvitationEmail(profile.Email, notify.InvitationData{
		FullName:         profile.FullName,
		OrganizationName: org.Name,
		Role:             roleLabel(profile.Role),
		AppURL:           s.appURL,
	})
	if err != nil {
		log.WithError(err).Error("Failed to render invitation email")
		return
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.WithError(err).Warn("Failed to send invitation email")
	}
}

// GetByID retrieves a profile within the caller's organization
func (s *ProfileService) GetByID(identity *auth.Identity, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// ListByOrganization lists the profiles of an organization
func (s *ProfileService) ListByOrganization(identity *auth.Identity, orgID *uuid.UUID, page, pageSize int) (*ProfileListResponse, error) {
	resolved, err := resolveOrganization(identity, orgID)
	if err != nil {
		return nil, err
	}
	page, pageSize, offset := paginate(page, pageSize)

	profiles, total, err := s.repo.GetByOrganizationID(resolved, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *toProfileResponse(&profiles[i])
	}
	return &ProfileListResponse{Profiles: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateRole changes a profile's role. Callers cannot change their own role
// and only platform admins grant platform_admin.
func (s *ProfileService) UpdateRole(identity *auth.Identity, id uuid.UUID, req *UpdateRoleRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if identity != nil && identity.UserID == id {
		return nil, apperrors.NewValidationError("role", "you cannot change your own role")
	}
	if req.Role == models.RolePlatformAdmin && !identity.IsPlatformAdmin() {
		return nil, apperrors.ErrForbidden
	}

	profile, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}
	if profile.Role == models.RolePlatformAdmin && !identity.IsPlatformAdmin() {
		return nil, apperrors.ErrForbidden
	}

	profile.Role = req.Role
	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toProfileResponse(profile), nil
}

// Deactivate blocks a profile from signing in
func (s *ProfileService) Deactivate(identity *auth.Identity, id uuid.UUID) (*ProfileResponse, error) {
	if identity != nil && identity.UserID == id {
		return nil, apperrors.NewValidationError("id", "you cannot deactivate yourself")
	}
	profile, err := s.load(identity, id)
	if err != nil {
		return nil, err
	}
	if profile.Role == models.RolePlatformAdmin && !identity.IsPlatformAdmin() {
		return nil, apperrors.ErrForbidden
	}

	profile.IsActive = false
	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toProfileResponse(profile), nil
}

// Delete removes a profile
func (s *ProfileService) Delete(identity *auth.Identity, id uuid.UUID) error {
	if identity != nil && identity.UserID == id {
		return apperrors.NewValidationError("id", "you cannot delete yourself")
	}
	profile, err := s.load(identity, id)
	if err != nil {
		return err
	}
	if profile.Role == models.RolePlatformAdmin && !identity.IsPlatformAdmin() {
		return apperrors.ErrForbidden
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// Me returns the signed-in profile, its organization and permission flags
func (s *ProfileService) Me(identity *auth.Identity) (*MeResponse, error) {
	if identity == nil {
		return nil, apperrors.ErrMissingToken
	}
	profile, err := s.repo.GetByID(identity.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrProfileNotFound, "get profile")
	}

	resp := &MeResponse{
		Profile:     *toProfileResponse(profile),
		Permissions: auth.PermissionsFor(profile.Role),
	}
	if profile.OrganizationID != nil {
		org, err := s.orgs.GetByID(*profile.OrganizationID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get organization: %w", err)
		}
		if org != nil {
			resp.Organization = toOrganizationResponse(org)
		}
	}
	return resp, nil
}

// load fetches a profile and hides profiles of other tenants as not found
func (s *ProfileService) load(identity *auth.Identity, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrProfileNotFound, "get profile")
	}
	if identity.IsPlatformAdmin() {
		return profile, nil
	}
	if profile.OrganizationID == nil || authorizeOrganization(identity, *profile.OrganizationID) != nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

func toProfileResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Email:          p.Email,
		FullName:       p.FullName,
		Role:           p.Role,
		IsActive:       p.IsActive,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RolePlatformAdmin:
		return "Administrador da plataforma"
	case models.RoleOrgAdmin:
		return "Administrador"
	case models.RoleManager:
		return "Gestor"
	default:
		return "Visualizador"
	}
}

package auth

import (
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
)

// Identity is the request-scoped view of the signed-in profile
type Identity struct {
	UserID         uuid.UUID
	Email          string
	Role           models.Role
	OrganizationID *uuid.UUID
}

// NewIdentity builds an identity from a stored profile
func NewIdentity(p *models.Profile) *Identity {
	return &Identity{
		UserID:         p.ID,
		Email:          p.Email,
		Role:           p.Role,
		OrganizationID: p.OrganizationID,
	}
}

// IsPlatformAdmin reports whether the identity operates across tenants
func (i *Identity) IsPlatformAdmin() bool {
	return i != nil && i.Role == models.RolePlatformAdmin
}

// HasRole reports whether the identity has at least min
func (i *Identity) HasRole(min models.Role) bool {
	return i != nil && i.Role.AtLeast(min)
}

// CanAccessOrganization reports whether the identity may see orgID's data
func (i *Identity) CanAccessOrganization(orgID uuid.UUID) bool {
	if i == nil {
		return false
	}
	if i.IsPlatformAdmin() {
		return true
	}
	return i.OrganizationID != nil && *i.OrganizationID == orgID
}

// Permissions are the capability flags the client uses to shape navigation
type Permissions struct {
	PlatformAdmin      bool `json:"platform_admin"`
	ManageOrganization bool `json:"manage_organization"`
	ManageUsers        bool `json:"manage_users"`
	ManageBilling      bool `json:"manage_billing"`
	ManageAssessments  bool `json:"manage_assessments"`
	ManageActionPlans  bool `json:"manage_action_plans"`
	ViewAnalytics      bool `json:"view_analytics"`
	ExportReports      bool `json:"export_reports"`
}

// PermissionsFor derives the flags from a role
func PermissionsFor(role models.Role) Permissions {
	return Permissions{
		PlatformAdmin:      role == models.RolePlatformAdmin,
		ManageOrganization: role.AtLeast(models.RoleOrgAdmin),
		ManageUsers:        role.AtLeast(models.RoleOrgAdmin),
		ManageBilling:      role.AtLeast(models.RoleOrgAdmin),
		ManageAssessments:  role.AtLeast(models.RoleManager),
		ManageActionPlans:  role.AtLeast(models.RoleManager),
		ViewAnalytics:      role.AtLeast(models.RoleViewer),
		ExportReports:      role.AtLeast(models.RoleViewer),
	}
}

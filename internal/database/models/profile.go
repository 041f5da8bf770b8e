package models

import (
	"github.com/google/uuid"
)

// Role is the access level of a profile
type Role string

const (
	RolePlatformAdmin Role = "platform_admin"
	RoleOrgAdmin      Role = "org_admin"
	RoleManager       Role = "manager"
	RoleViewer        Role = "viewer"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RolePlatformAdmin, RoleOrgAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

// Rank orders roles from least to most privileged
func (r Role) Rank() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleManager:
		return 2
	case RoleOrgAdmin:
		return 3
	case RolePlatformAdmin:
		return 4
	}
	return 0
}

// AtLeast reports whether r grants at least the privileges of min
func (r Role) AtLeast(min Role) bool {
	return r.Rank() >= min.Rank() && r.Rank() > 0
}

// Profile mirrors an auth user inside the application. The ID is the
// auth provider's user id (the JWT subject).
type Profile struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName       string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Role           Role       `json:"role" gorm:"type:varchar(50);not null;default:'viewer'"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

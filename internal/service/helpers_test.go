package service_test

import (
	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
)

func platformAdmin() *auth.Identity {
	return &auth.Identity{UserID: uuid.New(), Email: "admin@psicomapa.com.br", Role: models.RolePlatformAdmin}
}

func member(orgID uuid.UUID, role models.Role) *auth.Identity {
	return &auth.Identity{UserID: uuid.New(), Email: "rh@acme.com.br", Role: role, OrganizationID: &orgID}
}

package handlers_test

import (
	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withIdentity stands in for the auth middleware
func withIdentity(identity *auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity != nil {
			auth.SetIdentity(c, identity)
		}
		c.Next()
	}
}

func newIdentity(role models.Role) *auth.Identity {
	orgID := uuid.New()
	return &auth.Identity{
		UserID:         uuid.New(),
		Email:          "gestor@acme.com.br",
		Role:           role,
		OrganizationID: &orgID,
	}
}

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const identityKey = "auth_identity"

// ProfileLookup loads the profile mirroring an auth user
type ProfileLookup interface {
	GetByID(id uuid.UUID) (*models.Profile, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service  *AuthService
	profiles ProfileLookup
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, profiles ProfileLookup) *AuthMiddleware {
	return &AuthMiddleware{service: service, profiles: profiles}
}

// RequireAuth validates the bearer token, loads the profile and sets the identity
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		userID, _ := claims.UserID()
		profile, err := m.profiles.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Profile not provisioned"})
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load profile")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		if !profile.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Profile is inactive"})
			return
		}

		SetIdentity(c, NewIdentity(profile))
		c.Next()
	}
}

// RequireRole rejects identities below min
func (m *AuthMiddleware) RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !identity.HasRole(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Insufficient permissions",
				"required": string(min),
			})
			return
		}
		c.Next()
	}
}

// SetIdentity stores identity on the gin context and the request context
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)

	ctx := context.WithValue(c.Request.Context(), logger.EmailKey, identity.Email)
	if identity.OrganizationID != nil {
		ctx = context.WithValue(ctx, logger.OrganizationKey, identity.OrganizationID.String())
	}
	c.Request = c.Request.WithContext(ctx)
}

// GetIdentity is a helper function to extract the identity from context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok && identity != nil
}

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"psicomapa-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-supabase-secret"

type stubProfiles struct {
	profiles map[uuid.UUID]*models.Profile
	err      error
}

func (s *stubProfiles) GetByID(id uuid.UUID) (*models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func newTestProfile(role models.Role, active bool) *models.Profile {
	orgID := uuid.New()
	p := &models.Profile{
		OrganizationID: &orgID,
		Email:          "ana@empresa.com.br",
		FullName:       "Ana Souza",
		Role:           role,
		IsActive:       active,
	}
	p.ID = uuid.New()
	return p
}

func TestAuthService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewAuthService("")
		assert.Error(t, err)
	})

	service, err := NewAuthService(testSecret)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		userID := uuid.New()
		token, err := service.GenerateJWT(userID, "ana@empresa.com.br", time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "ana@empresa.com.br", claims.Email)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, userID, id)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := service.GenerateJWT(uuid.New(), "ana@empresa.com.br", -time.Minute)
		require.NoError(t, err)
		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewAuthService("another-secret")
		token, err := other.GenerateJWT(uuid.New(), "ana@empresa.com.br", time.Hour)
		require.NoError(t, err)
		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := &AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				Audience:  jwt.ClaimStrings{"anon"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		claims := &AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "service-role",
				Audience:  jwt.ClaimStrings{supabaseAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testSecret)
	require.NoError(t, err)

	active := newTestProfile(models.RoleManager, true)
	inactive := newTestProfile(models.RoleManager, false)
	profiles := &stubProfiles{profiles: map[uuid.UUID]*models.Profile{
		active.ID:   active,
		inactive.ID: inactive,
	}}

	newRouter := func(lookup ProfileLookup) *gin.Engine {
		m := NewAuthMiddleware(service, lookup)
		router := gin.New()
		router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
			identity, ok := GetIdentity(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"email": identity.Email, "role": identity.Role})
		})
		return router
	}

	do := func(router *gin.Engine, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	router := newRouter(profiles)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(router, "").Code)
	})

	t.Run("not a bearer header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(router, "Basic abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(router, "Bearer abc.def.ghi").Code)
	})

	t.Run("active profile", func(t *testing.T) {
		token, _ := service.GenerateJWT(active.ID, active.Email, time.Hour)
		w := do(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "manager")
	})

	t.Run("inactive profile", func(t *testing.T) {
		token, _ := service.GenerateJWT(inactive.ID, inactive.Email, time.Hour)
		assert.Equal(t, http.StatusForbidden, do(router, "Bearer "+token).Code)
	})

	t.Run("unprovisioned profile", func(t *testing.T) {
		token, _ := service.GenerateJWT(uuid.New(), "ghost@empresa.com.br", time.Hour)
		assert.Equal(t, http.StatusForbidden, do(router, "Bearer "+token).Code)
	})

	t.Run("lookup failure", func(t *testing.T) {
		failing := newRouter(&stubProfiles{err: errors.New("connection refused")})
		token, _ := service.GenerateJWT(active.ID, active.Email, time.Hour)
		assert.Equal(t, http.StatusInternalServerError, do(failing, "Bearer "+token).Code)
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(nil, nil)

	run := func(identity *Identity, min models.Role) int {
		router := gin.New()
		router.GET("/admin", func(c *gin.Context) {
			if identity != nil {
				SetIdentity(c, identity)
			}
			c.Next()
		}, m.RequireRole(min), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, run(nil, models.RoleViewer))
	assert.Equal(t, http.StatusForbidden, run(&Identity{Role: models.RoleViewer}, models.RoleManager))
	assert.Equal(t, http.StatusNoContent, run(&Identity{Role: models.RoleManager}, models.RoleManager))
	assert.Equal(t, http.StatusNoContent, run(&Identity{Role: models.RolePlatformAdmin}, models.RoleOrgAdmin))
}

func TestIdentity(t *testing.T) {
	orgID := uuid.New()
	member := &Identity{Role: models.RoleOrgAdmin, OrganizationID: &orgID}
	admin := &Identity{Role: models.RolePlatformAdmin}
	orphan := &Identity{Role: models.RoleManager}

	assert.True(t, member.CanAccessOrganization(orgID))
	assert.False(t, member.CanAccessOrganization(uuid.New()))
	assert.True(t, admin.CanAccessOrganization(uuid.New()))
	assert.False(t, orphan.CanAccessOrganization(orgID))

	var nilIdentity *Identity
	assert.False(t, nilIdentity.CanAccessOrganization(orgID))
	assert.False(t, nilIdentity.HasRole(models.RoleViewer))
}

func TestPermissionsFor(t *testing.T) {
	viewer := PermissionsFor(models.RoleViewer)
	assert.True(t, viewer.ViewAnalytics)
	assert.True(t, viewer.ExportReports)
	assert.False(t, viewer.ManageAssessments)

	manager := PermissionsFor(models.RoleManager)
	assert.True(t, manager.ManageAssessments)
	assert.False(t, manager.ManageBilling)

	orgAdmin := PermissionsFor(models.RoleOrgAdmin)
	assert.True(t, orgAdmin.ManageUsers)
	assert.False(t, orgAdmin.PlatformAdmin)

	assert.True(t, PermissionsFor(models.RolePlatformAdmin).PlatformAdmin)
}

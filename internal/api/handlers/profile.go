package handlers

import (
	"net/http"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for the users of an organization
type ProfileHandler struct {
	service service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me handles GET /api/v1/me
// @Summary Current user
// @Description Returns the signed-in profile, its organization and permission flags
// @Tags profiles
// @Produce json
// @Success 200 {object} service.MeResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	me, err := h.service.Me(identity)
	if err != nil {
		respondError(c, err, "get current profile")
		return
	}

	c.JSON(http.StatusOK, me)
}

// CreateProfile handles POST /api/v1/profiles
// @Summary Invite a user
// @Description Creates the profile for an auth user and emails the invitation
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body service.CreateProfileRequest true "Profile data"
// @Success 201 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /api/v1/profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var req service.CreateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err, "create profile")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// ListProfiles handles GET /api/v1/profiles
// @Summary List the users of an organization
// @Tags profiles
// @Produce json
// @Param organization_id query string false "Organization (platform admins only)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProfileListResponse
// @Security BearerAuth
// @Router /api/v1/profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	orgID, ok := organizationQuery(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	profiles, err := h.service.ListByOrganization(identity, orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "get profiles")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfile handles GET /api/v1/profiles/:id
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} service.ProfileResponse
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "profile")
	if !ok {
		return
	}

	profile, err := h.service.GetByID(identity, id)
	if err != nil {
		respondError(c, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateRole handles PUT /api/v1/profiles/:id/role
// @Summary Change a user's role
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /api/v1/profiles/{id}/role [put]
func (h *ProfileHandler) UpdateRole(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "profile")
	if !ok {
		return
	}
	var req service.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.service.UpdateRole(identity, id, &req)
	if err != nil {
		respondError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeactivateProfile handles POST /api/v1/profiles/:id/deactivate
// @Summary Block a user
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} service.ProfileResponse
// @Security BearerAuth
// @Router /api/v1/profiles/{id}/deactivate [post]
func (h *ProfileHandler) DeactivateProfile(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "profile")
	if !ok {
		return
	}

	profile, err := h.service.Deactivate(identity, id)
	if err != nil {
		respondError(c, err, "deactivate profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/v1/profiles/:id
// @Summary Remove a user
// @Tags profiles
// @Param id path string true "Profile ID (UUID)"
// @Success 204 "Profile removed"
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "profile")
	if !ok {
		return
	}

	if err := h.service.Delete(identity, id); err != nil {
		respondError(c, err, "delete profile")
		return
	}

	c.Status(http.StatusNoContent)
}

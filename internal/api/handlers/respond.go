package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"psicomapa-backend/internal/auth"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// statusFor maps a service error onto an HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		return http.StatusConflict
	case apperrors.IsValidation(err), apperrors.IsBusinessRule(err),
		errors.Is(err, apperrors.ErrInvalidWebhookSignature):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsPaymentRequired(err):
		return http.StatusPaymentRequired
	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status it maps to. Unexpected errors are
// logged and reported as "<action> failed" with the cause in details.
func respondError(c *gin.Context, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error(action + " failed")
		c.JSON(status, gin.H{"error": "Failed to " + action, "details": err.Error()})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// identityOrAbort returns the authenticated identity or writes a 401
func identityOrAbort(c *gin.Context) (*auth.Identity, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return identity, true
}

// uuidParam parses a path parameter, writing a 400 when it is not a UUID
func uuidParam(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// organizationQuery reads the optional organization_id query parameter
// platform admins use to act on a tenant
func organizationQuery(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("organization_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization_id: invalid UUID format"})
		return nil, false
	}
	return &id, true
}

// pagination parses page and page_size. Out of range values are left to the
// service, which clamps them.
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}

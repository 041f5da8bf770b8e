package handlers

import (
	"net/http"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DevHandler exposes development helpers. Never registered in production.
type DevHandler struct {
	service service.DevSeedServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(service service.DevSeedServiceInterface) *DevHandler {
	return &DevHandler{service: service}
}

// SeedResponses handles POST /api/dev/seed-responses
// @Summary Generate random responses for an assessment
// @Tags dev
// @Accept json
// @Produce json
// @Param seed body service.SeedResponsesRequest true "Assessment and count"
// @Success 201 {object} service.SeedResponsesResult
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /api/dev/seed-responses [post]
func (h *DevHandler) SeedResponses(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var req service.SeedResponsesRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.SeedResponses(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err, "seed responses")
		return
	}

	c.JSON(http.StatusCreated, result)
}

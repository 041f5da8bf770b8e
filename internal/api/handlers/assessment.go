package handlers

import (
	"net/http"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssessmentHandler handles HTTP requests for assessments
type AssessmentHandler struct {
	service service.AssessmentServiceInterface
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(service service.AssessmentServiceInterface) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// CreateAssessment handles POST /api/v1/assessments
// @Summary Create a draft assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization (platform admins only)"
// @Param assessment body service.CreateAssessmentRequest true "Assessment data"
// @Success 201 {object} service.AssessmentResponse
// @Failure 400 {object} ErrorResponse "Invalid assessment"
// @Failure 404 {object} ErrorResponse "Questionnaire not found"
// @Security BearerAuth
// @Router /api/v1/assessments [post]
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	orgID, ok := organizationQuery(c)
	if !ok {
		return
	}
	var req service.CreateAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.service.Create(identity, orgID, &req)
	if err != nil {
		respondError(c, err, "create assessment")
		return
	}

	c.JSON(http.StatusCreated, a)
}

// ListAssessments handles GET /api/v1/assessments
// @Summary List the organization's assessments
// @Tags assessments
// @Produce json
// @Param organization_id query string false "Organization (platform admins only)"
// @Param status query string false "draft, active or closed"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AssessmentListResponse
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Security BearerAuth
// @Router /api/v1/assessments [get]
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	orgID, ok := organizationQuery(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.List(identity, orgID, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err, "get assessments")
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetAssessment handles GET /api/v1/assessments/:id
// @Summary Get an assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment ID (UUID)"
// @Success 200 {object} service.AssessmentResponse
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Security BearerAuth
// @Router /api/v1/assessments/{id} [get]
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}

	a, err := h.service.GetByID(identity, id)
	if err != nil {
		respondError(c, err, "get assessment")
		return
	}

	c.JSON(http.StatusOK, a)
}

// UpdateAssessment handles PUT /api/v1/assessments/:id
// @Summary Update a draft assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID (UUID)"
// @Param assessment body service.UpdateAssessmentRequest true "Assessment data"
// @Success 200 {object} service.AssessmentResponse
// @Failure 400 {object} ErrorResponse "Assessment is not a draft"
// @Security BearerAuth
// @Router /api/v1/assessments/{id} [put]
func (h *AssessmentHandler) UpdateAssessment(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}
	var req service.UpdateAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.service.Update(identity, id, &req)
	if err != nil {
		respondError(c, err, "update assessment")
		return
	}

	c.JSON(http.StatusOK, a)
}

// ActivateAssessment handles POST /api/v1/assessments/:id/activate
// @Summary Open an assessment for responses
// @Description Requires an active subscription and a free slot in the plan
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment ID (UUID)"
// @Success 200 {object} service.AssessmentResponse
// @Failure 400 {object} ErrorResponse "Invalid status transition"
// @Failure 402 {object} ErrorResponse "Subscription required or plan limit reached"
// @Security BearerAuth
// @Router /api/v1/assessments/{id}/activate [post]
func (h *AssessmentHandler) ActivateAssessment(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}

	a, err := h.service.Activate(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err, "activate assessment")
		return
	}

	c.JSON(http.StatusOK, a)
}

// CloseAssessment handles POST /api/v1/assessments/:id/close
// @Summary Stop collecting responses
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment ID (UUID)"
// @Success 200 {object} service.AssessmentResponse
// @Failure 400 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /api/v1/assessments/{id}/close [post]
func (h *AssessmentHandler) CloseAssessment(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}

	a, err := h.service.Close(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err, "close assessment")
		return
	}

	c.JSON(http.StatusOK, a)
}

// DeleteAssessment handles DELETE /api/v1/assessments/:id
// @Summary Delete a draft assessment
// @Tags assessments
// @Param id path string true "Assessment ID (UUID)"
// @Success 204 "Assessment deleted"
// @Failure 400 {object} ErrorResponse "Assessment is not a draft"
// @Security BearerAuth
// @Router /api/v1/assessments/{id} [delete]
func (h *AssessmentHandler) DeleteAssessment(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}

	if err := h.service.Delete(identity, id); err != nil {
		respondError(c, err, "delete assessment")
		return
	}

	c.Status(http.StatusNoContent)
}

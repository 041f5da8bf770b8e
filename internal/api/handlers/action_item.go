package handlers

import (
	"net/http"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActionItemHandler handles HTTP requests for the action plan of an assessment
type ActionItemHandler struct {
	service service.ActionItemServiceInterface
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(service service.ActionItemServiceInterface) *ActionItemHandler {
	return &ActionItemHandler{service: service}
}

// CreateActionItem handles POST /api/v1/assessments/:id/action-items
// @Summary Add an action to the assessment's plan
// @Tags action-items
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID (UUID)"
// @Param item body service.CreateActionItemRequest true "Action item"
// @Success 201 {object} service.ActionItemResponse
// @Failure 400 {object} ErrorResponse "Invalid action item"
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Security BearerAuth
// @Router /api/v1/assessments/{id}/action-items [post]
func (h *ActionItemHandler) CreateActionItem(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assessmentID, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}
	var req service.CreateActionItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(identity, assessmentID, &req)
	if err != nil {
		respondError(c, err, "create action item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListActionItems handles GET /api/v1/assessments/:id/action-items
// @Summary The action plan of an assessment
// @Tags action-items
// @Produce json
// @Param id path string true "Assessment ID (UUID)"
// @Success 200 {array} service.ActionItemResponse
// @Security BearerAuth
// @Router /api/v1/assessments/{id}/action-items [get]
func (h *ActionItemHandler) ListActionItems(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assessmentID, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}

	items, err := h.service.ListByAssessment(identity, assessmentID)
	if err != nil {
		respondError(c, err, "get action items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"action_items": items})
}

// UpdateActionItem handles PATCH /api/v1/action-items/:id
// @Summary Change an action item
// @Tags action-items
// @Accept json
// @Produce json
// @Param id path string true "Action item ID (UUID)"
// @Param item body service.UpdateActionItemRequest true "Fields to change"
// @Success 200 {object} service.ActionItemResponse
// @Security BearerAuth
// @Router /api/v1/action-items/{id} [patch]
func (h *ActionItemHandler) UpdateActionItem(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "action item")
	if !ok {
		return
	}
	var req service.UpdateActionItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Update(identity, id, &req)
	if err != nil {
		respondError(c, err, "update action item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteActionItem handles DELETE /api/v1/action-items/:id
// @Summary Remove an action item
// @Tags action-items
// @Param id path string true "Action item ID (UUID)"
// @Success 204 "Action item removed"
// @Security BearerAuth
// @Router /api/v1/action-items/{id} [delete]
func (h *ActionItemHandler) DeleteActionItem(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "action item")
	if !ok {
		return
	}

	if err := h.service.Delete(identity, id); err != nil {
		respondError(c, err, "delete action item")
		return
	}

	c.Status(http.StatusNoContent)
}

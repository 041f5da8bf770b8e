package handlers

import (
	"net/http"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuestionnaireHandler handles HTTP requests for questionnaires
type QuestionnaireHandler struct {
	service service.QuestionnaireServiceInterface
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(service service.QuestionnaireServiceInterface) *QuestionnaireHandler {
	return &QuestionnaireHandler{service: service}
}

// CreateQuestionnaire handles POST /api/v1/questionnaires
// @Summary Create a questionnaire with its questions
// @Tags questionnaires
// @Accept json
// @Produce json
// @Param questionnaire body service.CreateQuestionnaireRequest true "Questionnaire data"
// @Success 201 {object} service.QuestionnaireResponse
// @Failure 400 {object} ErrorResponse "Invalid questionnaire"
// @Failure 409 {object} ErrorResponse "Name already used"
// @Security BearerAuth
// @Router /api/v1/questionnaires [post]
func (h *QuestionnaireHandler) CreateQuestionnaire(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var req service.CreateQuestionnaireRequest
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.service.Create(identity, &req)
	if err != nil {
		respondError(c, err, "create questionnaire")
		return
	}

	c.JSON(http.StatusCreated, q)
}

// ListQuestionnaires handles GET /api/v1/questionnaires
// @Summary List the organization's questionnaires and the global templates
// @Tags questionnaires
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.QuestionnaireListResponse
// @Security BearerAuth
// @Router /api/v1/questionnaires [get]
func (h *QuestionnaireHandler) ListQuestionnaires(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.ListAvailable(identity, page, pageSize)
	if err != nil {
		respondError(c, err, "get questionnaires")
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetQuestionnaire handles GET /api/v1/questionnaires/:id
// @Summary Get a questionnaire with its questions
// @Tags questionnaires
// @Produce json
// @Param id path string true "Questionnaire ID (UUID)"
// @Success 200 {object} service.QuestionnaireResponse
// @Failure 404 {object} ErrorResponse "Questionnaire not found"
// @Security BearerAuth
// @Router /api/v1/questionnaires/{id} [get]
func (h *QuestionnaireHandler) GetQuestionnaire(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "questionnaire")
	if !ok {
		return
	}

	q, err := h.service.GetByID(identity, id)
	if err != nil {
		respondError(c, err, "get questionnaire")
		return
	}

	c.JSON(http.StatusOK, q)
}

// UpdateQuestionnaire handles PUT /api/v1/questionnaires/:id
// @Summary Update questionnaire metadata
// @Tags questionnaires
// @Accept json
// @Produce json
// @Param id path string true "Questionnaire ID (UUID)"
// @Param questionnaire body service.UpdateQuestionnaireRequest true "Metadata"
// @Success 200 {object} service.QuestionnaireResponse
// @Security BearerAuth
// @Router /api/v1/questionnaires/{id} [put]
func (h *QuestionnaireHandler) UpdateQuestionnaire(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "questionnaire")
	if !ok {
		return
	}
	var req service.UpdateQuestionnaireRequest
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.service.Update(identity, id, &req)
	if err != nil {
		respondError(c, err, "update questionnaire")
		return
	}

	c.JSON(http.StatusOK, q)
}

// DeleteQuestionnaire handles DELETE /api/v1/questionnaires/:id
// @Summary Delete a questionnaire
// @Description Refused while an assessment uses it
// @Tags questionnaires
// @Param id path string true "Questionnaire ID (UUID)"
// @Success 204 "Questionnaire deleted"
// @Failure 400 {object} ErrorResponse "Questionnaire in use"
// @Security BearerAuth
// @Router /api/v1/questionnaires/{id} [delete]
func (h *QuestionnaireHandler) DeleteQuestionnaire(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "questionnaire")
	if !ok {
		return
	}

	if err := h.service.Delete(identity, id); err != nil {
		respondError(c, err, "delete questionnaire")
		return
	}

	c.Status(http.StatusNoContent)
}

// CloneQuestionnaire handles POST /api/v1/questionnaires/:id/clone
// @Summary Copy a questionnaire or template into the organization
// @Tags questionnaires
// @Accept json
// @Produce json
// @Param id path string true "Questionnaire ID (UUID)"
// @Param clone body service.CloneQuestionnaireRequest false "Optional new name"
// @Success 201 {object} service.QuestionnaireResponse
// @Security BearerAuth
// @Router /api/v1/questionnaires/{id}/clone [post]
func (h *QuestionnaireHandler) CloneQuestionnaire(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "questionnaire")
	if !ok {
		return
	}
	var req service.CloneQuestionnaireRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	q, err := h.service.Clone(identity, id, &req)
	if err != nil {
		respondError(c, err, "clone questionnaire")
		return
	}

	c.JSON(http.StatusCreated, q)
}

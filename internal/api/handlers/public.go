package handlers

import (
	"net/http"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicSurveyHandler serves the anonymous survey pages. No authentication.
type PublicSurveyHandler struct {
	service service.PublicResponseServiceInterface
}

// NewPublicSurveyHandler creates a new public survey handler
func NewPublicSurveyHandler(service service.PublicResponseServiceInterface) *PublicSurveyHandler {
	return &PublicSurveyHandler{service: service}
}

// GetPublicAssessment handles GET /api/public/assessments/:token
// @Summary Survey behind a public link
// @Description Returns the questions only while the assessment is open
// @Tags public
// @Produce json
// @Param token path string true "Public token"
// @Success 200 {object} service.PublicAssessmentResponse
// @Failure 400 {object} ErrorResponse "Assessment is not accepting responses"
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Router /api/public/assessments/{token} [get]
func (h *PublicSurveyHandler) GetPublicAssessment(c *gin.Context) {
	survey, err := h.service.GetPublicAssessment(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err, "get survey")
		return
	}

	c.JSON(http.StatusOK, survey)
}

// SubmitResponse handles POST /api/public/assessments/:token/responses
// @Summary Submit an anonymous response
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Public token"
// @Param response body service.SubmitResponseRequest true "Answers"
// @Success 201 {object} service.SubmitResponseResult
// @Failure 400 {object} ErrorResponse "Incomplete or invalid answers"
// @Failure 402 {object} ErrorResponse "Plan respondent limit reached"
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Failure 429 {object} ErrorResponse "Too many submissions"
// @Router /api/public/assessments/{token}/responses [post]
func (h *PublicSurveyHandler) SubmitResponse(c *gin.Context) {
	var req service.SubmitResponseRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Submit(c.Request.Context(), c.Param("token"), c.ClientIP(), &req)
	if err != nil {
		respondError(c, err, "submit response")
		return
	}

	c.JSON(http.StatusCreated, result)
}

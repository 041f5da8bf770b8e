package handlers

import (
	"net/http"
	"strconv"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves aggregated results and the downloadable reports
type AnalyticsHandler struct {
	analytics service.AnalyticsServiceInterface
	reports   service.ReportServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics service.AnalyticsServiceInterface, reports service.ReportServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, reports: reports}
}

// GetAnalytics handles GET /api/v1/assessments/:id/analytics
// @Summary Aggregated risk indicators of an assessment
// @Tags analytics
// @Produce json
// @Param id path string true "Assessment ID (UUID)"
// @Success 200 {object} service.AnalyticsResponse
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Security BearerAuth
// @Router /api/v1/assessments/{id}/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}

	result, err := h.analytics.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondError(c, err, "compute analytics")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DownloadXLSX handles GET /api/v1/assessments/:id/report.xlsx
// @Summary Spreadsheet report
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Assessment ID (UUID)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Security BearerAuth
// @Router /api/v1/assessments/{id}/report.xlsx [get]
func (h *AnalyticsHandler) DownloadXLSX(c *gin.Context) {
	h.download(c, service.FormatXLSX)
}

// DownloadPDF handles GET /api/v1/assessments/:id/report.pdf
// @Summary NR-1 PDF report
// @Tags analytics
// @Produce application/pdf
// @Param id path string true "Assessment ID (UUID)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Assessment not found"
// @Security BearerAuth
// @Router /api/v1/assessments/{id}/report.pdf [get]
func (h *AnalyticsHandler) DownloadPDF(c *gin.Context) {
	h.download(c, service.FormatPDF)
}

func (h *AnalyticsHandler) download(c *gin.Context, format string) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "assessment")
	if !ok {
		return
	}

	file, err := h.reports.Generate(c.Request.Context(), identity, id, format)
	if err != nil {
		respondError(c, err, "generate report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(file.Content)))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

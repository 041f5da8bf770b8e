package handlers_test

import (
	"net/http"
	"testing"

	"psicomapa-backend/internal/analytics"
	"psicomapa-backend/internal/api/handlers"
	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/mocks"
	"psicomapa-backend/internal/service"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnalyticsHandlerTestSuite covers analytics, report downloads and action plans
type AnalyticsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	analytics   *mocks.MockAnalyticsServiceInterface
	reports     *mocks.MockReportServiceInterface
	actionItems *mocks.MockActionItemServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	identity    *auth.Identity
}

// SetupTest sets up the test suite
func (suite *AnalyticsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.analytics = mocks.NewMockAnalyticsServiceInterface(suite.ctrl)
	suite.reports = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.actionItems = mocks.NewMockActionItemServiceInterface(suite.ctrl)
	suite.identity = newIdentity(models.RoleViewer)

	analyticsHandler := handlers.NewAnalyticsHandler(suite.analytics, suite.reports)
	actionItemHandler := handlers.NewActionItemHandler(suite.actionItems)

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1", withIdentity(suite.identity))
	assessments := v1.Group("/assessments")
	{
		assessments.GET("/:id/analytics", analyticsHandler.GetAnalytics)
		assessments.GET("/:id/report.xlsx", analyticsHandler.DownloadXLSX)
		assessments.GET("/:id/report.pdf", analyticsHandler.DownloadPDF)
		assessments.GET("/:id/action-items", actionItemHandler.ListActionItems)
		assessments.POST("/:id/action-items", actionItemHandler.CreateActionItem)
	}
	v1.PATCH("/action-items/:id", actionItemHandler.UpdateActionItem)
	v1.DELETE("/action-items/:id", actionItemHandler.DeleteActionItem)
}

// TearDownTest cleans up after each test
func (suite *AnalyticsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetAnalytics tests the GetAnalytics handler
func (suite *AnalyticsHandlerTestSuite) TestGetAnalytics() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.analytics.EXPECT().Get(gomock.Any(), suite.identity, id).Return(&service.AnalyticsResponse{
			AssessmentID: id,
			Title:        "NR-1 2026",
			Status:       models.AssessmentStatusClosed,
			Result: &analytics.Result{
				ScaleMin: 1,
				ScaleMax: 5,
				Summary: analytics.Summary{
					Respondents:     12,
					OverallRiskMean: 3.9,
					Level:           analytics.LevelHigh,
				},
				Dimensions:            []analytics.DimensionResult{{Dimension: "Demandas", RiskMean: 3.9, Level: analytics.LevelHigh}},
				SuppressedDepartments: 2,
				MinGroupSize:          3,
			},
		}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/assessments/"+id.String()+"/analytics", nil)

		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, "NR-1 2026", resp["title"])
		assert.Equal(t, float64(2), resp["suppressed_departments"])
		summary := resp["summary"].(map[string]interface{})
		assert.Equal(t, float64(12), summary["respondents"])
		assert.Equal(t, "high", summary["level"])
	})

	suite.T().Run("Cross tenant", func(t *testing.T) {
		id := uuid.New()
		suite.analytics.EXPECT().Get(gomock.Any(), suite.identity, id).Return(nil, apperrors.ErrAssessmentNotFound)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/assessments/"+id.String()+"/analytics", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "assessment not found")
	})
}

// TestDownloadReports tests the report download handlers
func (suite *AnalyticsHandlerTestSuite) TestDownloadReports() {
	suite.T().Run("XLSX", func(t *testing.T) {
		id := uuid.New()
		content := []byte("PK\x03\x04xlsx")
		suite.reports.EXPECT().Generate(gomock.Any(), suite.identity, id, service.FormatXLSX).Return(&service.ReportFile{
			Filename:    "psicomapa-nr-1-2026.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/assessments/"+id.String()+"/report.xlsx", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="psicomapa-nr-1-2026.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, content, rec.Body.Bytes())
	})

	suite.T().Run("PDF", func(t *testing.T) {
		id := uuid.New()
		suite.reports.EXPECT().Generate(gomock.Any(), suite.identity, id, service.FormatPDF).Return(&service.ReportFile{
			Filename:    "relatorio.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.3"),
		}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/assessments/"+id.String()+"/report.pdf", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, "8", rec.Header().Get("Content-Length"))
	})

	suite.T().Run("Failure", func(t *testing.T) {
		id := uuid.New()
		suite.reports.EXPECT().Generate(gomock.Any(), suite.identity, id, service.FormatPDF).Return(nil, apperrors.ErrAssessmentNotFound)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/assessments/"+id.String()+"/report.pdf", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "assessment not found")
	})
}

// TestActionItems tests the action plan handlers
func (suite *AnalyticsHandlerTestSuite) TestActionItems() {
	suite.T().Run("Create", func(t *testing.T) {
		assessmentID := uuid.New()
		suite.actionItems.EXPECT().
			Create(suite.identity, assessmentID, gomock.Any()).
			DoAndReturn(func(_ *auth.Identity, _ uuid.UUID, req *service.CreateActionItemRequest) (*service.ActionItemResponse, error) {
				assert.Equal(t, "Demandas", req.Dimension)
				return &service.ActionItemResponse{ID: uuid.New(), AssessmentID: assessmentID, Dimension: req.Dimension, Status: models.ActionStatusPending}, nil
			})

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/assessments/"+assessmentID.String()+"/action-items", map[string]string{
			"dimension":   "Demandas",
			"description": "Revisar metas trimestrais",
			"owner":       "RH",
		})

		var resp service.ActionItemResponse
		testutils.AssertJSONResponse(t, rec, http.StatusCreated, &resp)
		assert.Equal(t, models.ActionStatusPending, resp.Status)
	})

	suite.T().Run("List", func(t *testing.T) {
		assessmentID := uuid.New()
		suite.actionItems.EXPECT().ListByAssessment(suite.identity, assessmentID).Return([]service.ActionItemResponse{
			{Dimension: "Demandas"},
			{Dimension: "Liderança"},
		}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/assessments/"+assessmentID.String()+"/action-items", nil)

		var resp struct {
			ActionItems []service.ActionItemResponse `json:"action_items"`
		}
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Len(t, resp.ActionItems, 2)
	})

	suite.T().Run("Update", func(t *testing.T) {
		id := uuid.New()
		suite.actionItems.EXPECT().
			Update(suite.identity, id, gomock.Any()).
			DoAndReturn(func(_ *auth.Identity, _ uuid.UUID, req *service.UpdateActionItemRequest) (*service.ActionItemResponse, error) {
				if assert.NotNil(t, req.Status) {
					assert.Equal(t, models.ActionStatusDone, *req.Status)
				}
				assert.Nil(t, req.Description)
				return &service.ActionItemResponse{ID: id, Status: models.ActionStatusDone}, nil
			})

		rec := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/action-items/"+id.String(), map[string]string{"status": "done"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	suite.T().Run("Delete not found", func(t *testing.T) {
		id := uuid.New()
		suite.actionItems.EXPECT().Delete(suite.identity, id).Return(apperrors.ErrActionItemNotFound)

		rec := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/action-items/"+id.String(), nil)
		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "action item not found")
	})

	suite.T().Run("Delete invalid id", func(t *testing.T) {
		rec := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/action-items/abc", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid action item ID")
	})
}

func TestAnalyticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

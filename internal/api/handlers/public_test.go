package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"psicomapa-backend/internal/api/handlers"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/mocks"
	"psicomapa-backend/internal/service"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PublicSurveyHandlerTestSuite defines the test suite for the anonymous survey endpoints
type PublicSurveyHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPublicResponseServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PublicSurveyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPublicResponseServiceInterface(suite.ctrl)
	handler := handlers.NewPublicSurveyHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	public := suite.httpSuite.Router.Group("/api/public")
	public.GET("/assessments/:token", handler.GetPublicAssessment)
	public.POST("/assessments/:token/responses", handler.SubmitResponse)
}

// TearDownTest cleans up after each test
func (suite *PublicSurveyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetPublicAssessment tests the GetPublicAssessment handler
func (suite *PublicSurveyHandlerTestSuite) TestGetPublicAssessment() {
	suite.T().Run("Open", func(t *testing.T) {
		suite.mockService.EXPECT().GetPublicAssessment(gomock.Any(), "tok123").Return(&service.PublicAssessmentResponse{
			Title:            "Pesquisa de clima",
			OrganizationName: "Acme",
			ScaleMin:         1,
			ScaleMax:         5,
			Departments:      []string{"RH"},
			Questions:        []service.PublicQuestion{{ID: uuid.New(), Text: "Q1", Position: 1}},
		}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/assessments/tok123", nil)

		var resp service.PublicAssessmentResponse
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, "Acme", resp.OrganizationName)
		assert.Len(t, resp.Questions, 1)
	})

	suite.T().Run("Unknown token", func(t *testing.T) {
		suite.mockService.EXPECT().GetPublicAssessment(gomock.Any(), "missing").Return(nil, apperrors.ErrAssessmentNotFound)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/assessments/missing", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "assessment not found")
	})

	suite.T().Run("Closed", func(t *testing.T) {
		suite.mockService.EXPECT().GetPublicAssessment(gomock.Any(), "closed").Return(nil, apperrors.ErrAssessmentNotOpen)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/assessments/closed", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "not accepting responses")
	})
}

// TestSubmitResponse tests the SubmitResponse handler
func (suite *PublicSurveyHandlerTestSuite) TestSubmitResponse() {
	questionID := uuid.New()
	body := map[string]interface{}{
		"department": "RH",
		"answers":    []map[string]interface{}{{"question_id": questionID.String(), "value": 4}},
	}

	suite.T().Run("Created", func(t *testing.T) {
		responseID := uuid.New()
		suite.mockService.EXPECT().
			Submit(gomock.Any(), "tok123", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, req *service.SubmitResponseRequest) (*service.SubmitResponseResult, error) {
				assert.Equal(t, "RH", req.Department)
				if assert.Len(t, req.Answers, 1) {
					assert.Equal(t, questionID, req.Answers[0].QuestionID)
					assert.Equal(t, 4, req.Answers[0].Value)
				}
				return &service.SubmitResponseResult{ResponseID: responseID}, nil
			})

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/public/assessments/tok123/responses", body)

		var resp service.SubmitResponseResult
		testutils.AssertJSONResponse(t, rec, http.StatusCreated, &resp)
		assert.Equal(t, responseID, resp.ResponseID)
	})

	suite.T().Run("Rate limited", func(t *testing.T) {
		suite.mockService.EXPECT().Submit(gomock.Any(), "tok123", gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRateLimited)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/public/assessments/tok123/responses", body)
		testutils.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "rate limit exceeded")
	})

	suite.T().Run("Incomplete", func(t *testing.T) {
		suite.mockService.EXPECT().Submit(gomock.Any(), "tok123", gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrIncompleteResponse)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/public/assessments/tok123/responses", body)
		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "exactly once")
	})

	suite.T().Run("Respondent limit", func(t *testing.T) {
		suite.mockService.EXPECT().Submit(gomock.Any(), "tok123", gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrSubscriptionRequired)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/public/assessments/tok123/responses", body)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		rec := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/public/assessments/tok123/responses", []byte(`{"answers":`), map[string]string{"Content-Type": "application/json"})
		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request body")
	})
}

func TestPublicSurveyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PublicSurveyHandlerTestSuite))
}

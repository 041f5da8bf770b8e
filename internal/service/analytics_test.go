package service_test

import (
	"context"
	"testing"

	"psicomapa-backend/internal/analytics"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/mocks"
	"psicomapa-backend/internal/service"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AnalyticsServiceTestSuite defines the test suite for AnalyticsService
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAssessments  *mocks.MockAssessmentRepositoryInterface
	mockResponses    *mocks.MockResponseRepositoryInterface
	analyticsService *service.AnalyticsService
	factories        *testutils.FactorySet
	orgID            uuid.UUID
	assessment       *models.Assessment
}

// SetupTest sets up the test suite
func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssessments = mocks.NewMockAssessmentRepositoryInterface(suite.ctrl)
	suite.mockResponses = mocks.NewMockResponseRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.analyticsService = service.NewAnalyticsService(suite.mockAssessments, suite.mockResponses, service.AnalyticsOptions{MinGroupSize: 3}, nil, nil)

	suite.orgID = uuid.New()
	q := suite.factories.Questionnaire.Create(nil)
	suite.assessment = suite.factories.Assessment.Active(suite.orgID, q.ID)
	suite.assessment.Questionnaire = q
}

// TearDownTest cleans up after each test
func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// rows answers every negative item with 5 and every positive item with 1,
// three respondents in RH and one in TI
func (suite *AnalyticsServiceTestSuite) rows() []models.AnswerRow {
	var rows []models.AnswerRow
	add := func(department string) {
		responseID := uuid.New()
		for _, q := range suite.assessment.Questionnaire.Questions {
			value := 5
			if q.Polarity == models.PolarityPositive {
				value = 1
			}
			rows = append(rows, models.AnswerRow{ResponseID: responseID, QuestionID: q.ID, Value: value, Department: department})
		}
	}
	add("RH")
	add("RH")
	add("RH")
	add("TI")
	return rows
}

// TestGet tests aggregation with small department suppression
func (suite *AnalyticsServiceTestSuite) TestGet() {
	suite.mockAssessments.EXPECT().GetWithQuestionnaire(suite.assessment.ID).Return(suite.assessment, nil)
	suite.mockResponses.EXPECT().GetAnswerRows(suite.assessment.ID).Return(suite.rows(), nil)

	response, err := suite.analyticsService.Get(context.Background(), member(suite.orgID, models.RoleViewer), suite.assessment.ID)

	suite.NoError(err)
	suite.Equal(suite.assessment.Title, response.Title)
	suite.Equal(models.QuestionnaireKindPsychosocial, response.Kind)
	suite.Equal(4, response.Summary.Respondents)
	suite.Equal(5.0, response.Summary.OverallRiskMean)
	suite.Equal(analytics.LevelHigh, response.Summary.Level)
	suite.Len(response.Departments, 1)
	suite.Equal("RH", response.Departments[0].Department)
	suite.Equal(1, response.SuppressedDepartments)
	suite.Len(response.Dimensions, 2)
}

// TestGetUsesCache tests that a second read does not hit the database again
func (suite *AnalyticsServiceTestSuite) TestGetUsesCache() {
	suite.mockAssessments.EXPECT().GetWithQuestionnaire(suite.assessment.ID).Return(suite.assessment, nil).Times(2)
	suite.mockResponses.EXPECT().GetAnswerRows(suite.assessment.ID).Return(suite.rows(), nil).Times(1)

	identity := member(suite.orgID, models.RoleViewer)
	first, err := suite.analyticsService.Get(context.Background(), identity, suite.assessment.ID)
	suite.NoError(err)
	second, err := suite.analyticsService.Get(context.Background(), identity, suite.assessment.ID)
	suite.NoError(err)

	suite.Same(first.Result, second.Result)
}

// TestInvalidate tests that invalidation forces a recompute
func (suite *AnalyticsServiceTestSuite) TestInvalidate() {
	suite.mockResponses.EXPECT().GetAnswerRows(suite.assessment.ID).Return(suite.rows(), nil).Times(2)

	_, err := suite.analyticsService.Compute(context.Background(), suite.assessment)
	suite.NoError(err)
	suite.analyticsService.Invalidate(suite.assessment.ID)
	_, err = suite.analyticsService.Compute(context.Background(), suite.assessment)
	suite.NoError(err)
}

// TestInvalidateDuringCompute tests that a submission landing while answers
// are being aggregated is not hidden behind a stale cache entry
func (suite *AnalyticsServiceTestSuite) TestInvalidateDuringCompute() {
	gomock.InOrder(
		suite.mockResponses.EXPECT().GetAnswerRows(suite.assessment.ID).DoAndReturn(func(id uuid.UUID) ([]models.AnswerRow, error) {
			suite.analyticsService.Invalidate(id)
			return suite.rows()[:4], nil
		}),
		suite.mockResponses.EXPECT().GetAnswerRows(suite.assessment.ID).Return(suite.rows(), nil),
	)

	stale, err := suite.analyticsService.Compute(context.Background(), suite.assessment)
	suite.NoError(err)
	suite.Equal(1, stale.Summary.Respondents)

	fresh, err := suite.analyticsService.Compute(context.Background(), suite.assessment)
	suite.NoError(err)
	suite.Equal(4, fresh.Summary.Respondents)

	cached, err := suite.analyticsService.Compute(context.Background(), suite.assessment)
	suite.NoError(err)
	suite.Same(fresh, cached)
}

// TestGetEmptyAssessment tests an assessment without responses
func (suite *AnalyticsServiceTestSuite) TestGetEmptyAssessment() {
	suite.mockAssessments.EXPECT().GetWithQuestionnaire(suite.assessment.ID).Return(suite.assessment, nil)
	suite.mockResponses.EXPECT().GetAnswerRows(suite.assessment.ID).Return(nil, nil)

	response, err := suite.analyticsService.Get(context.Background(), member(suite.orgID, models.RoleViewer), suite.assessment.ID)

	suite.NoError(err)
	suite.Equal(0, response.Summary.Respondents)
	suite.Empty(response.Departments)
	suite.Len(response.Questions, 4)
}

// TestGetOtherTenant tests that other tenants' analytics look missing
func (suite *AnalyticsServiceTestSuite) TestGetOtherTenant() {
	suite.mockAssessments.EXPECT().GetWithQuestionnaire(suite.assessment.ID).Return(suite.assessment, nil)

	_, err := suite.analyticsService.Get(context.Background(), member(uuid.New(), models.RoleOrgAdmin), suite.assessment.ID)

	suite.ErrorIs(err, apperrors.ErrAssessmentNotFound)
}

// TestGetNotFound tests a missing assessment
func (suite *AnalyticsServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockAssessments.EXPECT().GetWithQuestionnaire(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.analyticsService.Get(context.Background(), platformAdmin(), id)

	suite.ErrorIs(err, apperrors.ErrAssessmentNotFound)
}

// TestAnalyticsServiceTestSuite runs the test suite
func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

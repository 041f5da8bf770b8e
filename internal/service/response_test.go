package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

// PublicResponseServiceTestSuite defines the test suite for PublicResponseService
type PublicResponseServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAssessments   *mocks.MockAssessmentRepositoryInterface
	mockResponses     *mocks.MockResponseRepositoryInterface
	mockSubscriptions *mocks.MockSubscriptionRepositoryInterface
	mockOrgs          *mocks.MockOrganizationRepositoryInterface
	mockLimiter       *mocks.MockLimiter
	mockCache         *mocks.MockCacheInvalidator
	responseService   *service.PublicResponseService
	factories         *testutils.FactorySet
	org               *models.Organization
	assessment        *models.Assessment
	token             string
}

// SetupTest sets up the test suite
func (suite *PublicResponseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssessments = mocks.NewMockAssessmentRepositoryInterface(suite.ctrl)
	suite.mockResponses = mocks.NewMockResponseRepositoryInterface(suite.ctrl)
	suite.mockSubscriptions = mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockLimiter = mocks.NewMockLimiter(suite.ctrl)
	suite.mockCache = mocks.NewMockCacheInvalidator(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	suite.org = suite.factories.Organization.Create()
	q := suite.factories.Questionnaire.Create(nil)
	suite.assessment = suite.factories.Assessment.Active(suite.org.ID, q.ID)
	suite.assessment.Questionnaire = q
	suite.assessment.Departments = models.StringList{"RH", "Produção"}
	suite.token = *suite.assessment.PublicToken

	suite.responseService = service.NewPublicResponseService(service.PublicResponseDependencies{
		Assessments:   suite.mockAssessments,
		Responses:     suite.mockResponses,
		Subscriptions: suite.mockSubscriptions,
		Organizations: suite.mockOrgs,
		Plans:         testCatalog(suite.T()),
		Limiter:       suite.mockLimiter,
		Cache:         suite.mockCache,
		Validator:     service.NewValidator(),
	})
}

// TearDownTest cleans up after each test
func (suite *PublicResponseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PublicResponseServiceTestSuite) fullRequest(value int) *service.SubmitResponseRequest {
	req := &service.SubmitResponseRequest{Department: " RH "}
	for _, q := range suite.assessment.Questionnaire.Questions {
		req.Answers = append(req.Answers, service.AnswerInput{QuestionID: q.ID, Value: value})
	}
	return req
}

func (suite *PublicResponseServiceTestSuite) expectAllowed() {
	suite.mockLimiter.EXPECT().Allow(gomock.Any(), "submit:203.0.113.7").Return(true, nil)
}

// TestGetPublicAssessment tests the anonymous survey view
func (suite *PublicResponseServiceTestSuite) TestGetPublicAssessment() {
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)

	response, err := suite.responseService.GetPublicAssessment(context.Background(), suite.token)

	suite.NoError(err)
	suite.Equal(suite.org.Name, response.OrganizationName)
	suite.Equal([]string{"RH", "Produção"}, response.Departments)
	suite.Len(response.Questions, 4)
	suite.Equal(1, response.ScaleMin)
	suite.Equal(5, response.ScaleMax)
}

// TestGetPublicAssessmentClosed tests that closed assessments are not served
func (suite *PublicResponseServiceTestSuite) TestGetPublicAssessmentClosed() {
	suite.assessment.Status = models.AssessmentStatusClosed
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)

	_, err := suite.responseService.GetPublicAssessment(context.Background(), suite.token)

	suite.ErrorIs(err, apperrors.ErrAssessmentNotOpen)
}

// TestGetPublicAssessmentEnded tests an active assessment past its end date
func (suite *PublicResponseServiceTestSuite) TestGetPublicAssessmentEnded() {
	ended := time.Now().Add(-time.Minute)
	suite.assessment.EndsAt = &ended
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)

	_, err := suite.responseService.GetPublicAssessment(context.Background(), suite.token)

	suite.ErrorIs(err, apperrors.ErrAssessmentNotOpen)
}

// TestGetPublicAssessmentUnknownToken tests an unknown token
func (suite *PublicResponseServiceTestSuite) TestGetPublicAssessmentUnknownToken() {
	suite.mockAssessments.EXPECT().GetByPublicToken("nope").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.responseService.GetPublicAssessment(context.Background(), "nope")
	suite.ErrorIs(err, apperrors.ErrAssessmentNotFound)

	_, err = suite.responseService.GetPublicAssessment(context.Background(), "  ")
	suite.ErrorIs(err, apperrors.ErrAssessmentNotFound)
}

// TestSubmit tests storing a complete response
func (suite *PublicResponseServiceTestSuite) TestSubmit() {
	suite.expectAllowed()
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(suite.factories.Subscription.Create(suite.org.ID), nil)
	suite.mockResponses.EXPECT().CountByAssessment(suite.assessment.ID).Return(int64(10), nil)
	suite.mockResponses.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Response) error {
		suite.Equal("RH", r.Department)
		suite.Len(r.Answers, 4)
		r.ID = uuid.New()
		return nil
	})
	suite.mockCache.EXPECT().Invalidate(suite.assessment.ID)

	result, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(3))

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, result.ResponseID)
	suite.NotEmpty(result.SubmittedAt)
}

// TestSubmitRateLimited tests the per client limit
func (suite *PublicResponseServiceTestSuite) TestSubmitRateLimited() {
	suite.mockLimiter.EXPECT().Allow(gomock.Any(), "submit:203.0.113.7").Return(false, nil)

	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(3))

	suite.ErrorIs(err, apperrors.ErrRateLimited)
}

// TestSubmitLimiterErrorFailsOpen tests that a broken limiter does not block respondents
func (suite *PublicResponseServiceTestSuite) TestSubmitLimiterErrorFailsOpen() {
	suite.mockLimiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, errors.New("redis: connection refused"))
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(suite.factories.Subscription.Create(suite.org.ID), nil)
	suite.mockResponses.EXPECT().CountByAssessment(suite.assessment.ID).Return(int64(0), nil)
	suite.mockResponses.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockCache.EXPECT().Invalidate(suite.assessment.ID)

	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(3))

	suite.NoError(err)
}

// TestSubmitUnknownDepartment tests department validation
func (suite *PublicResponseServiceTestSuite) TestSubmitUnknownDepartment() {
	suite.expectAllowed()
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)

	req := suite.fullRequest(3)
	req.Department = "Financeiro"
	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", req)

	suite.ErrorIs(err, apperrors.ErrUnknownDepartment)
	suite.True(apperrors.IsBusinessRule(err))
}

// TestSubmitIncomplete tests that every question must be answered once
func (suite *PublicResponseServiceTestSuite) TestSubmitIncomplete() {
	suite.mockLimiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil).Times(2)

	missing := suite.fullRequest(3)
	missing.Answers = missing.Answers[:3]
	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", missing)
	suite.ErrorIs(err, apperrors.ErrIncompleteResponse)

	duplicated := suite.fullRequest(3)
	duplicated.Answers[3] = duplicated.Answers[0]
	_, err = suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", duplicated)
	suite.ErrorIs(err, apperrors.ErrIncompleteResponse)
}

// TestSubmitOutOfScale tests answers outside the questionnaire scale
func (suite *PublicResponseServiceTestSuite) TestSubmitOutOfScale() {
	suite.expectAllowed()
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)

	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(6))

	suite.ErrorIs(err, apperrors.ErrAnswerOutOfScale)
}

// TestSubmitNoAnswers tests request validation
func (suite *PublicResponseServiceTestSuite) TestSubmitNoAnswers() {
	suite.expectAllowed()

	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", &service.SubmitResponseRequest{})

	suite.True(apperrors.IsValidation(err))
}

// TestSubmitRespondentLimit tests the plan's respondents per assessment
func (suite *PublicResponseServiceTestSuite) TestSubmitRespondentLimit() {
	suite.expectAllowed()
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(suite.factories.Subscription.Create(suite.org.ID), nil)
	suite.mockResponses.EXPECT().CountByAssessment(suite.assessment.ID).Return(int64(50), nil)

	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(3))

	suite.ErrorIs(err, apperrors.ErrPlanLimitReached)
}

// TestSubmitWithoutSubscription tests that a lapsed tenant stops collecting
func (suite *PublicResponseServiceTestSuite) TestSubmitWithoutSubscription() {
	suite.expectAllowed()
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(3))

	suite.ErrorIs(err, apperrors.ErrSubscriptionRequired)
}

// TestSubmitLapsedSubscription tests that only active or trialing tenants collect responses
func (suite *PublicResponseServiceTestSuite) TestSubmitLapsedSubscription() {
	for _, status := range []models.SubscriptionStatus{
		models.SubscriptionStatusCanceled,
		models.SubscriptionStatusPastDue,
		models.SubscriptionStatusUnpaid,
		models.SubscriptionStatusIncomplete,
	} {
		sub := suite.factories.Subscription.Create(suite.org.ID)
		sub.Status = status
		suite.expectAllowed()
		suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)
		suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(sub, nil)

		_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(3))

		suite.ErrorIs(err, apperrors.ErrSubscriptionRequired, string(status))
	}
}

// TestSubmitTrialingSubscription tests that a trial tenant collects responses
func (suite *PublicResponseServiceTestSuite) TestSubmitTrialingSubscription() {
	sub := suite.factories.Subscription.Create(suite.org.ID)
	sub.Status = models.SubscriptionStatusTrialing
	suite.expectAllowed()
	suite.mockAssessments.EXPECT().GetByPublicToken(suite.token).Return(suite.assessment, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(sub, nil)
	suite.mockResponses.EXPECT().CountByAssessment(suite.assessment.ID).Return(int64(0), nil)
	suite.mockResponses.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockCache.EXPECT().Invalidate(suite.assessment.ID)

	_, err := suite.responseService.Submit(context.Background(), suite.token, "203.0.113.7", suite.fullRequest(3))

	suite.NoError(err)
}

// TestPublicResponseServiceTestSuite runs the test suite
func TestPublicResponseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PublicResponseServiceTestSuite))
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/mocks"
	"psicomapa-backend/internal/notify"
	"psicomapa-backend/internal/service"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssessmentServiceTestSuite defines the test suite for AssessmentService
type AssessmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssessments    *mocks.MockAssessmentRepositoryInterface
	mockQuestionnaires *mocks.MockQuestionnaireRepositoryInterface
	mockResponses      *mocks.MockResponseRepositoryInterface
	mockSubscriptions  *mocks.MockSubscriptionRepositoryInterface
	mockProfiles       *mocks.MockProfileRepositoryInterface
	mockOrgs           *mocks.MockOrganizationRepositoryInterface
	mockMailer         *mocks.MockMailer
	mockPublisher      *mocks.MockPublisher
	assessmentService  *service.AssessmentService
	factories          *testutils.FactorySet
	org                *models.Organization
	questionnaire      *models.Questionnaire
}

// SetupTest sets up the test suite
func (suite *AssessmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssessments = mocks.NewMockAssessmentRepositoryInterface(suite.ctrl)
	suite.mockQuestionnaires = mocks.NewMockQuestionnaireRepositoryInterface(suite.ctrl)
	suite.mockResponses = mocks.NewMockResponseRepositoryInterface(suite.ctrl)
	suite.mockSubscriptions = mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)
	suite.mockPublisher = mocks.NewMockPublisher(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.org = suite.factories.Organization.Create()
	suite.questionnaire = suite.factories.Questionnaire.Create(nil)

	suite.assessmentService = service.NewAssessmentService(service.AssessmentDependencies{
		Assessments:    suite.mockAssessments,
		Questionnaires: suite.mockQuestionnaires,
		Responses:      suite.mockResponses,
		Subscriptions:  suite.mockSubscriptions,
		Profiles:       suite.mockProfiles,
		Organizations:  suite.mockOrgs,
		Plans:          testCatalog(suite.T()),
		Mailer:         suite.mockMailer,
		Events:         suite.mockPublisher,
		AppURL:         "https://app.psicomapa.com.br/",
		Validator:      service.NewValidator(),
	})
}

// TearDownTest cleans up after each test
func (suite *AssessmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateAssessment tests creating a draft from a template
func (suite *AssessmentServiceTestSuite) TestCreateAssessment() {
	identity := member(suite.org.ID, models.RoleManager)
	suite.mockQuestionnaires.EXPECT().GetByID(suite.questionnaire.ID).Return(suite.questionnaire, nil)
	suite.mockAssessments.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Assessment) error {
		suite.Equal(suite.org.ID, a.OrganizationID)
		suite.Equal(identity.UserID, *a.CreatedBy)
		a.ID = uuid.New()
		return nil
	})

	response, err := suite.assessmentService.Create(identity, nil, &service.CreateAssessmentRequest{
		QuestionnaireID: suite.questionnaire.ID,
		Title:           " Avaliação 2026 ",
		Departments:     []string{"RH", " Produção ", "", "RH"},
	})

	suite.NoError(err)
	suite.Equal("Avaliação 2026", response.Title)
	suite.Equal(models.AssessmentStatusDraft, response.Status)
	suite.Equal([]string{"RH", "Produção"}, response.Departments)
	suite.Equal(suite.questionnaire.Name, response.QuestionnaireName)
	suite.Empty(response.PublicURL)
}

// TestCreateAssessmentForeignQuestionnaire tests that another tenant's questionnaire cannot be used
func (suite *AssessmentServiceTestSuite) TestCreateAssessmentForeignQuestionnaire() {
	otherOrg := uuid.New()
	foreign := suite.factories.Questionnaire.Create(&otherOrg)
	suite.mockQuestionnaires.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	_, err := suite.assessmentService.Create(member(suite.org.ID, models.RoleManager), nil, &service.CreateAssessmentRequest{
		QuestionnaireID: foreign.ID,
		Title:           "Avaliação",
	})

	suite.ErrorIs(err, apperrors.ErrQuestionnaireNotFound)
}

// TestCreateAssessmentInvalidWindow tests that ends_at must follow starts_at
func (suite *AssessmentServiceTestSuite) TestCreateAssessmentInvalidWindow() {
	start := time.Now().Add(48 * time.Hour)
	end := start.Add(-time.Hour)

	_, err := suite.assessmentService.Create(member(suite.org.ID, models.RoleManager), nil, &service.CreateAssessmentRequest{
		QuestionnaireID: suite.questionnaire.ID,
		Title:           "Avaliação",
		StartsAt:        &start,
		EndsAt:          &end,
	})

	suite.True(apperrors.IsValidation(err))
}

// TestGetByIDIncludesRespondents tests the respondent count on reads
func (suite *AssessmentServiceTestSuite) TestGetByIDIncludesRespondents() {
	a := suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.mockResponses.EXPECT().CountByAssessment(a.ID).Return(int64(17), nil)

	response, err := suite.assessmentService.GetByID(member(suite.org.ID, models.RoleViewer), a.ID)

	suite.NoError(err)
	suite.Equal(int64(17), *response.Respondents)
	suite.Equal("https://app.psicomapa.com.br/pesquisa/"+*a.PublicToken, response.PublicURL)
}

// TestGetByIDOtherTenant tests that other tenants' assessments look missing
func (suite *AssessmentServiceTestSuite) TestGetByIDOtherTenant() {
	a := suite.factories.Assessment.Create(uuid.New(), suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.assessmentService.GetByID(member(suite.org.ID, models.RoleOrgAdmin), a.ID)

	suite.ErrorIs(err, apperrors.ErrAssessmentNotFound)
}

// TestListInvalidStatus tests status filter validation
func (suite *AssessmentServiceTestSuite) TestListInvalidStatus() {
	_, err := suite.assessmentService.List(member(suite.org.ID, models.RoleViewer), nil, "archived", 1, 20)
	suite.True(apperrors.IsValidation(err))
}

// TestList tests listing with a status filter
func (suite *AssessmentServiceTestSuite) TestList() {
	items := []models.Assessment{*suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)}
	suite.mockAssessments.EXPECT().GetByOrganizationID(suite.org.ID, models.AssessmentStatusActive, 20, 0).Return(items, int64(1), nil)

	response, err := suite.assessmentService.List(member(suite.org.ID, models.RoleViewer), nil, "active", 1, 20)

	suite.NoError(err)
	suite.Len(response.Assessments, 1)
	suite.Equal(int64(1), response.Total)
}

// TestUpdateActiveAssessment tests that only drafts are editable
func (suite *AssessmentServiceTestSuite) TestUpdateActiveAssessment() {
	a := suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.assessmentService.Update(member(suite.org.ID, models.RoleManager), a.ID, &service.UpdateAssessmentRequest{
		QuestionnaireID: suite.questionnaire.ID,
		Title:           "Novo título",
	})

	suite.ErrorIs(err, apperrors.ErrAssessmentNotEditable)
}

// TestActivate tests opening a draft for responses
func (suite *AssessmentServiceTestSuite) TestActivate() {
	a := suite.factories.Assessment.Create(suite.org.ID, suite.questionnaire.ID)
	sub := suite.factories.Subscription.Create(suite.org.ID)

	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(sub, nil)
	suite.mockAssessments.EXPECT().CountActive(suite.org.ID).Return(int64(0), nil)
	suite.mockAssessments.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Assessment) error {
		suite.Equal(models.AssessmentStatusActive, updated.Status)
		suite.NotNil(updated.StartsAt)
		return nil
	})
	suite.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notify.Event) {
		suite.Equal(notify.EventAssessmentActivated, event.Type)
		suite.Equal("basic", event.Data["plan_id"])
	})

	response, err := suite.assessmentService.Activate(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.NoError(err)
	suite.Equal(models.AssessmentStatusActive, response.Status)
	suite.Len(response.PublicToken, 32)
	suite.Equal("https://app.psicomapa.com.br/pesquisa/"+response.PublicToken, response.PublicURL)
}

// TestActivateWithoutSubscription tests that activation needs a subscription
func (suite *AssessmentServiceTestSuite) TestActivateWithoutSubscription() {
	a := suite.factories.Assessment.Create(suite.org.ID, suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.assessmentService.Activate(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.ErrorIs(err, apperrors.ErrSubscriptionRequired)
	suite.True(apperrors.IsPaymentRequired(err))
}

// TestActivatePastDueSubscription tests that a delinquent subscription blocks activation
func (suite *AssessmentServiceTestSuite) TestActivatePastDueSubscription() {
	a := suite.factories.Assessment.Create(suite.org.ID, suite.questionnaire.ID)
	sub := suite.factories.Subscription.Create(suite.org.ID)
	sub.Status = models.SubscriptionStatusPastDue
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(sub, nil)

	_, err := suite.assessmentService.Activate(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.ErrorIs(err, apperrors.ErrSubscriptionRequired)
}

// TestActivatePlanLimit tests the active assessment cap of the plan
func (suite *AssessmentServiceTestSuite) TestActivatePlanLimit() {
	a := suite.factories.Assessment.Create(suite.org.ID, suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(suite.org.ID).Return(suite.factories.Subscription.Create(suite.org.ID), nil)
	suite.mockAssessments.EXPECT().CountActive(suite.org.ID).Return(int64(1), nil)

	_, err := suite.assessmentService.Activate(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.ErrorIs(err, apperrors.ErrPlanLimitReached)
}

// TestActivateTwice tests that active assessments cannot be activated again
func (suite *AssessmentServiceTestSuite) TestActivateTwice() {
	a := suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.assessmentService.Activate(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

// TestActivateEndDateInPast tests activating an assessment that already ended
func (suite *AssessmentServiceTestSuite) TestActivateEndDateInPast() {
	a := suite.factories.Assessment.Create(suite.org.ID, suite.questionnaire.ID)
	past := time.Now().Add(-time.Hour)
	a.EndsAt = &past
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.assessmentService.Activate(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.True(apperrors.IsValidation(err))
}

// TestClose tests closing an active assessment and notifying admins
func (suite *AssessmentServiceTestSuite) TestClose() {
	a := suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)
	admin := suite.factories.Profile.WithRole(suite.org.ID, models.RoleOrgAdmin)

	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.mockAssessments.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockResponses.EXPECT().CountByAssessment(a.ID).Return(int64(42), nil)
	suite.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notify.Event) {
		suite.Equal(notify.EventAssessmentClosed, event.Type)
		suite.Equal(service.TriggerManual, event.Data["trigger"])
	})
	suite.mockProfiles.EXPECT().GetActiveByRole(suite.org.ID, models.RoleOrgAdmin).Return([]models.Profile{*admin}, nil)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *notify.Message) error {
		suite.Equal([]string{admin.Email}, msg.To)
		return nil
	})

	response, err := suite.assessmentService.Close(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.NoError(err)
	suite.Equal(models.AssessmentStatusClosed, response.Status)
	suite.NotNil(response.ClosedAt)
	suite.Equal(int64(42), *response.Respondents)
}

// TestCloseDraft tests that drafts cannot be closed
func (suite *AssessmentServiceTestSuite) TestCloseDraft() {
	a := suite.factories.Assessment.Create(suite.org.ID, suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.assessmentService.Close(context.Background(), member(suite.org.ID, models.RoleManager), a.ID)

	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

// TestCloseExpired tests the scheduled close of ended assessments
func (suite *AssessmentServiceTestSuite) TestCloseExpired() {
	ok := *suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)
	failing := *suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)

	suite.mockAssessments.EXPECT().GetExpired(gomock.Any()).Return([]models.Assessment{ok, failing}, nil)
	suite.mockAssessments.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Assessment) error {
		if a.ID == failing.ID {
			return errors.New("deadlock detected")
		}
		return nil
	}).Times(2)
	suite.mockResponses.EXPECT().CountByAssessment(ok.ID).Return(int64(3), nil)
	suite.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notify.Event) {
		suite.Equal(service.TriggerSchedule, event.Data["trigger"])
	})
	suite.mockProfiles.EXPECT().GetActiveByRole(suite.org.ID, models.RoleOrgAdmin).Return(nil, nil)

	closed, err := suite.assessmentService.CloseExpired(context.Background())

	suite.NoError(err)
	suite.Equal(1, closed)
}

// TestNotifyClosingSoon tests the reminder events
func (suite *AssessmentServiceTestSuite) TestNotifyClosingSoon() {
	a := suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)
	end := time.Now().Add(24 * time.Hour)
	a.EndsAt = &end

	suite.mockAssessments.EXPECT().GetEndingBetween(gomock.Any(), gomock.Any()).DoAndReturn(func(from, to time.Time) ([]models.Assessment, error) {
		suite.Equal(48*time.Hour, to.Sub(from))
		return []models.Assessment{*a}, nil
	})
	suite.mockResponses.EXPECT().CountByAssessment(a.ID).Return(int64(8), nil)
	suite.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notify.Event) {
		suite.Equal(notify.EventAssessmentClosingSoon, event.Type)
		suite.Equal("https://app.psicomapa.com.br/pesquisa/"+*a.PublicToken, event.Data["public_url"])
		suite.Equal(int64(8), event.Data["respondents"])
	})

	count, err := suite.assessmentService.NotifyClosingSoon(context.Background(), 48*time.Hour)

	suite.NoError(err)
	suite.Equal(1, count)
}

// TestDelete tests deleting drafts only
func (suite *AssessmentServiceTestSuite) TestDelete() {
	draft := suite.factories.Assessment.Create(suite.org.ID, suite.questionnaire.ID)
	active := suite.factories.Assessment.Active(suite.org.ID, suite.questionnaire.ID)
	suite.mockAssessments.EXPECT().GetByID(draft.ID).Return(draft, nil)
	suite.mockAssessments.EXPECT().Delete(draft.ID).Return(nil)
	suite.mockAssessments.EXPECT().GetByID(active.ID).Return(active, nil)

	identity := member(suite.org.ID, models.RoleManager)
	suite.NoError(suite.assessmentService.Delete(identity, draft.ID))
	suite.ErrorIs(suite.assessmentService.Delete(identity, active.ID), apperrors.ErrAssessmentNotEditable)
}

// TestAssessmentServiceTestSuite runs the test suite
func TestAssessmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceTestSuite))
}

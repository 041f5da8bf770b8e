//go:build integration
// +build integration

package repository

import (
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestMain cleans up the shared Postgres container after the integration run
func TestMain(m *testing.M) {
	log.Println("Starting repository integration tests...")
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// PostgresRepositoryTestSuite runs against a real Postgres container
type PostgresRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
}

func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
}

func (suite *PostgresRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PostgresRepositoryTestSuite) TestDuplicateWebhookEventIsTranslated() {
	repo := NewWebhookEventRepository(suite.baseTestSuite.DB)
	event := models.StripeWebhookEvent{EventID: "evt_pg", Type: "invoice.paid", ProcessedAt: time.Now()}
	suite.Require().NoError(repo.Create(&event))

	dup := event
	err := repo.Create(&dup)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (suite *PostgresRepositoryTestSuite) TestAnswerRowsAndUpsert() {
	db := suite.baseTestSuite.DB
	org := suite.factories.Organization.Create()
	suite.Require().NoError(NewOrganizationRepository(db).Create(org))
	q := suite.factories.Questionnaire.Create(&org.ID)
	suite.Require().NoError(NewQuestionnaireRepository(db).Create(q))
	a := suite.factories.Assessment.Active(org.ID, q.ID)
	suite.Require().NoError(NewAssessmentRepository(db).Create(a))

	responses := NewResponseRepository(db)
	suite.Require().NoError(responses.Create(suite.factories.Response.Create(a.ID, q.Questions, "RH", 5)))
	rows, err := responses.GetAnswerRows(a.ID)
	suite.NoError(err)
	suite.Len(rows, len(q.Questions))

	subs := NewSubscriptionRepository(db)
	sub := suite.factories.Subscription.Create(org.ID)
	suite.Require().NoError(subs.Upsert(sub))
	sub2 := suite.factories.Subscription.Create(org.ID)
	sub2.Status = models.SubscriptionStatusCanceled
	suite.Require().NoError(subs.Upsert(sub2))
	got, err := subs.GetByOrganizationID(org.ID)
	suite.NoError(err)
	suite.Equal(models.SubscriptionStatusCanceled, got.Status)
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

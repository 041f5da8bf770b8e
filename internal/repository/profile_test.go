package repository

import (
	"testing"

	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProfileRepositoryTestSuite tests the ProfileRepository
type ProfileRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProfileRepository
	factories     *testutils.FactorySet
	org           *models.Organization
}

func (suite *ProfileRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupSQLiteTestSuite(suite.T())
	suite.repo = NewProfileRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ProfileRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(NewOrganizationRepository(suite.baseTestSuite.DB).Create(suite.org))
}

func (suite *ProfileRepositoryTestSuite) TestCreateKeepsAuthUserID() {
	p := suite.factories.Profile.Create(suite.org.ID)
	authID := p.ID

	suite.NoError(suite.repo.Create(p))
	suite.Equal(authID, p.ID)
}

func (suite *ProfileRepositoryTestSuite) TestGetByEmailIsCaseInsensitive() {
	p := suite.factories.Profile.Create(suite.org.ID)
	p.Email = "ana@acme.com.br"
	suite.Require().NoError(suite.repo.Create(p))

	got, err := suite.repo.GetByEmail("ANA@acme.com.br")
	suite.NoError(err)
	suite.Equal(p.ID, got.ID)
}

func (suite *ProfileRepositoryTestSuite) TestGetActiveByRole() {
	admin := suite.factories.Profile.WithRole(suite.org.ID, models.RoleOrgAdmin)
	inactive := suite.factories.Profile.WithRole(suite.org.ID, models.RoleOrgAdmin)
	viewer := suite.factories.Profile.WithRole(suite.org.ID, models.RoleViewer)
	for _, p := range []*models.Profile{admin, inactive, viewer} {
		suite.Require().NoError(suite.repo.Create(p))
	}
	inactive.IsActive = false
	suite.Require().NoError(suite.repo.Update(inactive))

	admins, err := suite.repo.GetActiveByRole(suite.org.ID, models.RoleOrgAdmin)
	suite.NoError(err)
	suite.Len(admins, 1)
	suite.Equal(admin.ID, admins[0].ID)
}

func (suite *ProfileRepositoryTestSuite) TestGetByOrganizationID() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Profile.Create(suite.org.ID)))
	}

	profiles, total, err := suite.repo.GetByOrganizationID(suite.org.ID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(profiles, 2)

	none, total, err := suite.repo.GetByOrganizationID(uuid.New(), 20, 0)
	suite.NoError(err)
	suite.Zero(total)
	suite.Empty(none)
}

func TestProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryTestSuite))
}

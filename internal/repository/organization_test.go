package repository

import (
	"testing"

	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupSQLiteTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
}

// TestCreateDuplicateSlug tests the unique slug constraint
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateSlug() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Organization.WithSlug("acme")))

	err := suite.repo.Create(suite.factories.Organization.WithSlug("acme"))
	suite.Error(err)
}

// TestOrganizationsWithoutCNPJ tests that several organizations may omit the CNPJ
func (suite *OrganizationRepositoryTestSuite) TestOrganizationsWithoutCNPJ() {
	suite.NoError(suite.repo.Create(suite.factories.Organization.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Organization.Create()))
}

// TestGetBySlugAndCNPJ tests the lookup helpers
func (suite *OrganizationRepositoryTestSuite) TestGetBySlugAndCNPJ() {
	org := suite.factories.Organization.WithCNPJ("11222333000181")
	org.Slug = "padaria-central"
	suite.Require().NoError(suite.repo.Create(org))

	bySlug, err := suite.repo.GetBySlug("padaria-central")
	suite.NoError(err)
	suite.Equal(org.ID, bySlug.ID)

	byCNPJ, err := suite.repo.GetByCNPJ("11222333000181")
	suite.NoError(err)
	suite.Equal(org.ID, byCNPJ.ID)

	_, err = suite.repo.GetBySlug("missing")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllAndSearch tests pagination and search
func (suite *OrganizationRepositoryTestSuite) TestGetAllAndSearch() {
	for _, slug := range []string{"alpha", "beta", "gamma"} {
		org := suite.factories.Organization.WithSlug(slug)
		org.Name = "Org " + slug
		suite.Require().NoError(suite.repo.Create(org))
	}

	orgs, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(orgs, 2)
	suite.Equal("Org alpha", orgs[0].Name)

	found, total, err := suite.repo.Search("BET", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("beta", found[0].Slug)
}

// TestUpdateAndDelete tests updating and deleting
func (suite *OrganizationRepositoryTestSuite) TestUpdateAndDelete() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(org))

	org.Name = "Renamed"
	suite.NoError(suite.repo.Update(org))

	got, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("Renamed", got.Name)

	suite.NoError(suite.repo.Delete(org.ID))
	_, err = suite.repo.GetByID(org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteCascadesProfiles tests that profiles go away with their organization
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascadesProfiles() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(org))
	profiles := NewProfileRepository(suite.baseTestSuite.DB)
	p := suite.factories.Profile.WithRole(org.ID, models.RoleOrgAdmin)
	suite.Require().NoError(profiles.Create(p))

	suite.NoError(suite.repo.Delete(org.ID))

	_, err := profiles.GetByID(p.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}

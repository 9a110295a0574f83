package repository

import (
	"testing"

	"synthex-backend/internal/database/models"
	"synthex-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkspaceRepositoryTestSuite tests the WorkspaceRepository
type WorkspaceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkspaceRepository
	factories     *testutils.FactorySet

	org *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *WorkspaceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWorkspaceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkspaceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds the owning organization
func (suite *WorkspaceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
}

// TearDownTest runs after each test
func (suite *WorkspaceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a workspace
func (suite *WorkspaceRepositoryTestSuite) TestCreate() {
	workspace := suite.factories.Workspace.Create(suite.org.ID)

	err := suite.repo.Create(workspace)

	suite.NoError(err)
	suite.Equal(suite.org.ID, workspace.OrganizationID)
}

// TestCreateDuplicateSlug tests that a slug is unique within its
// organization
func (suite *WorkspaceRepositoryTestSuite) TestCreateDuplicateSlug() {
	ws1 := suite.factories.Workspace.Create(suite.org.ID)
	suite.NoError(suite.repo.Create(ws1))

	ws2 := suite.factories.Workspace.Create(suite.org.ID)
	ws2.Slug = ws1.Slug

	err := suite.repo.Create(ws2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestCreateSameSlugOtherOrganization tests that slugs only collide
// inside the same organization
func (suite *WorkspaceRepositoryTestSuite) TestCreateSameSlugOtherOrganization() {
	ws1 := suite.factories.Workspace.Create(suite.org.ID)
	suite.NoError(suite.repo.Create(ws1))

	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)

	ws2 := suite.factories.Workspace.Create(otherOrg.ID)
	ws2.Slug = ws1.Slug

	err := suite.repo.Create(ws2)

	suite.NoError(err)
}

// TestGetBySlug tests the organization-scoped slug lookup
func (suite *WorkspaceRepositoryTestSuite) TestGetBySlug() {
	workspace := suite.factories.Workspace.Create(suite.org.ID)
	suite.NoError(suite.repo.Create(workspace))

	retrieved, err := suite.repo.GetBySlug(suite.org.ID, workspace.Slug)

	suite.NoError(err)
	suite.Equal(workspace.ID, retrieved.ID)
}

// TestCountByOrganizationID tests the plan quota counter
func (suite *WorkspaceRepositoryTestSuite) TestCountByOrganizationID() {
	suite.NoError(suite.repo.Create(suite.factories.Workspace.Create(suite.org.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Workspace.Create(suite.org.ID)))

	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)
	suite.NoError(suite.repo.Create(suite.factories.Workspace.Create(otherOrg.ID)))

	count, err := suite.repo.CountByOrganizationID(suite.org.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestDelete tests deleting a workspace
func (suite *WorkspaceRepositoryTestSuite) TestDelete() {
	workspace := suite.factories.Workspace.Create(suite.org.ID)
	suite.NoError(suite.repo.Create(workspace))

	err := suite.repo.Delete(workspace.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(workspace.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestWorkspaceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceRepositoryTestSuite))
}

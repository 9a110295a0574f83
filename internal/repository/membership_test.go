package repository

import (
	"testing"

	"synthex-backend/internal/database/models"
	"synthex-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet

	org  *models.Organization
	user *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds an organization and a user
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)

	suite.user = suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.user).Error)
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a membership
func (suite *MembershipRepositoryTestSuite) TestCreate() {
	member := suite.factories.Membership.Create(suite.org.ID, suite.user.ID, models.RoleOwner)

	err := suite.repo.Create(member)

	suite.NoError(err)
}

// TestGetByOrgAndUser tests the role lookup used by the authorization
// middleware
func (suite *MembershipRepositoryTestSuite) TestGetByOrgAndUser() {
	member := suite.factories.Membership.Create(suite.org.ID, suite.user.ID, models.RoleAdmin)
	suite.NoError(suite.repo.Create(member))

	retrieved, err := suite.repo.GetByOrgAndUser(suite.org.ID, suite.user.ID)

	suite.NoError(err)
	suite.Equal(models.RoleAdmin, retrieved.Role)
}

// TestGetByOrgAndUserNotAMember tests lookup for a non-member
func (suite *MembershipRepositoryTestSuite) TestGetByOrgAndUserNotAMember() {
	outsider := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(outsider).Error)

	retrieved, err := suite.repo.GetByOrgAndUser(suite.org.ID, outsider.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestCountOwners tests the owner counter behind the last-owner guard
func (suite *MembershipRepositoryTestSuite) TestCountOwners() {
	owner := suite.factories.Membership.Create(suite.org.ID, suite.user.ID, models.RoleOwner)
	suite.NoError(suite.repo.Create(owner))

	admin := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(admin).Error)
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(suite.org.ID, admin.ID, models.RoleAdmin)))

	count, err := suite.repo.CountOwners(suite.org.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpdateRole tests promoting a member
func (suite *MembershipRepositoryTestSuite) TestUpdateRole() {
	member := suite.factories.Membership.Create(suite.org.ID, suite.user.ID, models.RoleMember)
	suite.NoError(suite.repo.Create(member))

	err := suite.repo.UpdateRole(member.ID, models.RoleAdmin)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.RoleAdmin, retrieved.Role)
}

// TestGetOrganizationsByUserID tests listing a user's memberships
func (suite *MembershipRepositoryTestSuite) TestGetOrganizationsByUserID() {
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(suite.org.ID, suite.user.ID, models.RoleOwner)))

	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(otherOrg.ID, suite.user.ID, models.RoleMember)))

	memberships, err := suite.repo.GetOrganizationsByUserID(suite.user.ID)

	suite.NoError(err)
	suite.Len(memberships, 2)
}

// Run the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}

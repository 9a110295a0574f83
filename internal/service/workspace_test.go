package service_test

import (
	"testing"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/mocks"
	"synthex-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WorkspaceServiceTestSuite defines the test suite for WorkspaceService
type WorkspaceServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockWorkspaceRepositoryInterface
	mockOrgRepo      *mocks.MockOrganizationRepositoryInterface
	mockAuditRepo    *mocks.MockAuditLogRepositoryInterface
	workspaceService *service.WorkspaceService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWorkspaceRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	suite.workspaceService = service.NewWorkspaceService(
		suite.mockRepo,
		suite.mockOrgRepo,
		service.NewAuditService(suite.mockAuditRepo),
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *WorkspaceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkspaceServiceTestSuite) freeOrg() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanFree,
	}
}

// TestCreateWorkspace tests creating a workspace within the plan limit
func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace() {
	org := suite.freeOrg()
	req := &service.CreateWorkspaceRequest{
		Name: "Main",
		Slug: "main",
	}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockRepo.EXPECT().CountByOrganizationID(org.ID).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().GetBySlug(org.ID, req.Slug).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(workspace *models.Workspace) error {
			workspace.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.workspaceService.Create(org.ID, uuid.New(), req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "main", response.Slug)
	assert.Equal(suite.T(), "UTC", response.Timezone)
}

// TestCreateWorkspacePlanLimit tests that the free tier workspace cap is enforced
func (suite *WorkspaceServiceTestSuite) TestCreateWorkspacePlanLimit() {
	org := suite.freeOrg()
	limits := service.LimitsForTier(models.PlanFree)
	req := &service.CreateWorkspaceRequest{
		Name: "Second",
		Slug: "second",
	}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockRepo.EXPECT().CountByOrganizationID(org.ID).Return(int64(limits.MaxWorkspaces), nil).Times(1)

	response, err := suite.workspaceService.Create(org.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsPlanLimit(err))
}

// TestCreateWorkspaceDuplicateSlug tests creating a workspace with a taken slug
func (suite *WorkspaceServiceTestSuite) TestCreateWorkspaceDuplicateSlug() {
	org := suite.freeOrg()
	req := &service.CreateWorkspaceRequest{
		Name: "Main",
		Slug: "main",
	}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockRepo.EXPECT().CountByOrganizationID(org.ID).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().
		GetBySlug(org.ID, req.Slug).
		Return(&models.Workspace{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).
		Times(1)

	response, err := suite.workspaceService.Create(org.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateWorkspaceUppercaseSlug tests that slugs must be lowercase
func (suite *WorkspaceServiceTestSuite) TestCreateWorkspaceUppercaseSlug() {
	req := &service.CreateWorkspaceRequest{
		Name: "Main",
		Slug: "Main",
	}

	response, err := suite.workspaceService.Create(uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetByIDNotFound tests retrieving a non-existent workspace
func (suite *WorkspaceServiceTestSuite) TestGetByIDNotFound() {
	workspaceID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(workspaceID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.workspaceService.GetByID(workspaceID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestWorkspaceServiceTestSuite runs the test suite
func TestWorkspaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}

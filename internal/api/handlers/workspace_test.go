package handlers

import (
	"net/http"
	"testing"

	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/mocks"
	"synthex-backend/internal/service"
	"synthex-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkspaceHandlerTestSuite defines the test suite for WorkspaceHandler
type WorkspaceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockWorkspaceServiceInterface
	handler     *WorkspaceHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkspaceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockWorkspaceServiceInterface(suite.ctrl)
	suite.handler = NewWorkspaceHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", testAuth(suite.userID))
	workspaces := v1.Group("/organizations/:id/workspaces")
	{
		workspaces.POST("", suite.handler.CreateWorkspace)
		workspaces.GET("", suite.handler.ListWorkspaces)
		workspaces.GET("/:workspace_id", suite.handler.GetWorkspace)
		workspaces.PUT("/:workspace_id", suite.handler.UpdateWorkspace)
		workspaces.DELETE("/:workspace_id", suite.handler.DeleteWorkspace)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkspaceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkspaceHandlerTestSuite) workspacesURL() string {
	return "/api/v1/organizations/" + suite.orgID.String() + "/workspaces"
}

// TestCreateWorkspace tests creating a workspace
func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace() {
	requestBody := map[string]interface{}{
		"name": "Main",
		"slug": "main",
	}

	expected := &service.WorkspaceResponse{
		ID:             uuid.New(),
		OrganizationID: suite.orgID,
		Name:           "Main",
		Slug:           "main",
		Timezone:       "UTC",
	}

	suite.mockService.EXPECT().
		Create(suite.orgID, suite.userID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.workspacesURL(), requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.WorkspaceResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "main", response.Slug)
	assert.Equal(suite.T(), "UTC", response.Timezone)
}

// TestCreateWorkspacePlanLimit tests the workspace limit status mapping
func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspacePlanLimit() {
	requestBody := map[string]interface{}{
		"name": "Overflow",
		"slug": "overflow",
	}

	suite.mockService.EXPECT().
		Create(suite.orgID, suite.userID, gomock.Any()).
		Return(nil, &apperrors.PlanLimitError{Resource: "workspaces", Limit: 1}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.workspacesURL(), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusPaymentRequired, "plan limit reached")
}

// TestCreateWorkspaceDuplicateSlug tests creating a workspace with a taken slug
func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspaceDuplicateSlug() {
	requestBody := map[string]interface{}{
		"name": "Main",
		"slug": "main",
	}

	suite.mockService.EXPECT().
		Create(suite.orgID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrWorkspaceExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.workspacesURL(), requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestGetWorkspaceCrossOrganization tests that another tenant's workspace reads as not found
func (suite *WorkspaceHandlerTestSuite) TestGetWorkspaceCrossOrganization() {
	workspaceID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(workspaceID).
		Return(&service.WorkspaceResponse{
			ID:             workspaceID,
			OrganizationID: uuid.New(),
			Slug:           "foreign",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.workspacesURL()+"/"+workspaceID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "workspace not found")
}

// TestGetWorkspaceNotFound tests getting a non-existent workspace
func (suite *WorkspaceHandlerTestSuite) TestGetWorkspaceNotFound() {
	workspaceID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(workspaceID).
		Return(nil, apperrors.ErrWorkspaceNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.workspacesURL()+"/"+workspaceID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteWorkspace tests deleting a workspace
func (suite *WorkspaceHandlerTestSuite) TestDeleteWorkspace() {
	workspaceID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(workspaceID).
		Return(&service.WorkspaceResponse{ID: workspaceID, OrganizationID: suite.orgID}, nil).
		Times(1)
	suite.mockService.EXPECT().
		Delete(workspaceID, suite.userID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", suite.workspacesURL()+"/"+workspaceID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestWorkspaceHandlerTestSuite runs the test suite
func TestWorkspaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceHandlerTestSuite))
}

package handlers

import (
	"net/http"
	"testing"

	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/mocks"
	"synthex-backend/internal/service"
	"synthex-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// testAuth injects an authenticated user the way the auth middleware does
func testAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	handler     *OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", testAuth(suite.userID))
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("", suite.handler.ListMyOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
		orgs.POST("/:id/members", suite.handler.AddMember)
		orgs.GET("/:id/members", suite.handler.GetMembers)
		orgs.PUT("/:id/members/:member_id", suite.handler.UpdateMemberRole)
		orgs.DELETE("/:id/members/:member_id", suite.handler.RemoveMember)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":         "acme",
		"display_name": "Acme Marketing",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:          orgID,
		Name:        "acme",
		DisplayName: "Acme Marketing",
		CreatedAt:   "2026-01-01T00:00:00Z",
		UpdatedAt:   "2026-01-01T00:00:00Z",
	}

	suite.mockService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), expectedResponse.DisplayName, response.DisplayName)
}

// TestCreateOrganizationConflict tests creating an organization whose name is taken
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationConflict() {
	requestBody := map[string]interface{}{
		"name":         "acme",
		"display_name": "Acme Marketing",
	}

	suite.mockService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrOrganizationExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestGetOrganizationNotFound tests getting a non-existent organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetOrganizationInvalidID tests a malformed organization id
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestAddMemberLastOwnerDemotion tests the last-owner guard status mapping
func (suite *OrganizationHandlerTestSuite) TestAddMemberLastOwnerDemotion() {
	orgID := uuid.New()
	memberID := uuid.New()
	requestBody := map[string]interface{}{"role": "member"}

	suite.mockService.EXPECT().
		UpdateMemberRole(orgID, memberID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrLastOwner).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+orgID.String()+"/members/"+memberID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestRemoveMemberNotFound tests removing an unknown membership
func (suite *OrganizationHandlerTestSuite) TestRemoveMemberNotFound() {
	orgID := uuid.New()
	memberID := uuid.New()

	suite.mockService.EXPECT().
		RemoveMember(orgID, memberID, suite.userID).
		Return(apperrors.ErrMembershipNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String()+"/members/"+memberID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListMyOrganizations tests listing the caller's organizations
func (suite *OrganizationHandlerTestSuite) TestListMyOrganizations() {
	expected := []service.OrganizationResponse{
		{ID: uuid.New(), Name: "acme"},
		{ID: uuid.New(), Name: "globex"},
	}

	suite.mockService.EXPECT().
		GetForUser(suite.userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}

package handlers

import (
	"net/http"
	"testing"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/mocks"
	"synthex-backend/internal/service"
	"synthex-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContactHandlerTestSuite defines the test suite for ContactHandler
type ContactHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockService    *mocks.MockContactServiceInterface
	mockWorkspaces *mocks.MockWorkspaceServiceInterface
	handler        *ContactHandler
	httpSuite      *testutils.HTTPTestSuite
	userID         uuid.UUID
	orgID          uuid.UUID
	workspaceID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ContactHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.mockWorkspaces = mocks.NewMockWorkspaceServiceInterface(suite.ctrl)
	suite.handler = NewContactHandler(suite.mockService, suite.mockWorkspaces)
	suite.userID = uuid.New()
	suite.orgID = uuid.New()
	suite.workspaceID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", testAuth(suite.userID))
	contacts := v1.Group("/organizations/:id/workspaces/:workspace_id/contacts")
	{
		contacts.POST("", suite.handler.CreateContact)
		contacts.POST("/import", suite.handler.ImportContacts)
		contacts.GET("", suite.handler.ListContacts)
		contacts.GET("/:contact_id", suite.handler.GetContact)
		contacts.PUT("/:contact_id", suite.handler.UpdateContact)
		contacts.POST("/:contact_id/unsubscribe", suite.handler.UnsubscribeContact)
		contacts.POST("/:contact_id/lead-score", suite.handler.AdjustLeadScore)
		contacts.DELETE("/:contact_id", suite.handler.DeleteContact)
	}
}

// TearDownTest cleans up after each test
func (suite *ContactHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactHandlerTestSuite) contactsURL() string {
	return "/api/v1/organizations/" + suite.orgID.String() + "/workspaces/" + suite.workspaceID.String() + "/contacts"
}

// expectWorkspaceLookup satisfies the tenant check on the route
func (suite *ContactHandlerTestSuite) expectWorkspaceLookup() {
	suite.mockWorkspaces.EXPECT().
		GetByID(suite.workspaceID).
		Return(&service.WorkspaceResponse{
			ID:             suite.workspaceID,
			OrganizationID: suite.orgID,
		}, nil).
		Times(1)
}

// TestCreateContact tests creating a contact
func (suite *ContactHandlerTestSuite) TestCreateContact() {
	suite.expectWorkspaceLookup()

	requestBody := map[string]interface{}{
		"email":      "grace@example.com",
		"first_name": "Grace",
	}

	expected := &service.ContactResponse{
		ID:          uuid.New(),
		WorkspaceID: suite.workspaceID,
		Email:       "grace@example.com",
		FirstName:   "Grace",
		Status:      models.ContactActive,
	}

	suite.mockService.EXPECT().
		Create(suite.workspaceID, suite.userID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.contactsURL(), requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "grace@example.com", response.Email)
}

// TestCreateContactPlanLimit tests the contact limit status mapping
func (suite *ContactHandlerTestSuite) TestCreateContactPlanLimit() {
	suite.expectWorkspaceLookup()

	requestBody := map[string]interface{}{
		"email": "grace@example.com",
	}

	suite.mockService.EXPECT().
		Create(suite.workspaceID, suite.userID, gomock.Any()).
		Return(nil, &apperrors.PlanLimitError{Resource: "contacts", Limit: 250}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.contactsURL(), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusPaymentRequired, "plan limit reached")
}

// TestCreateContactDuplicateEmail tests creating a contact with a taken email
func (suite *ContactHandlerTestSuite) TestCreateContactDuplicateEmail() {
	suite.expectWorkspaceLookup()

	requestBody := map[string]interface{}{
		"email": "grace@example.com",
	}

	suite.mockService.EXPECT().
		Create(suite.workspaceID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrContactExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.contactsURL(), requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestCreateContactForeignWorkspace tests that a workspace from another
// organization reads as not found before the contact service is touched
func (suite *ContactHandlerTestSuite) TestCreateContactForeignWorkspace() {
	suite.mockWorkspaces.EXPECT().
		GetByID(suite.workspaceID).
		Return(&service.WorkspaceResponse{
			ID:             suite.workspaceID,
			OrganizationID: uuid.New(),
		}, nil).
		Times(1)

	requestBody := map[string]interface{}{
		"email": "grace@example.com",
	}

	recorder := suite.httpSuite.MakeRequest("POST", suite.contactsURL(), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "workspace not found")
}

// TestImportContacts tests bulk importing contacts
func (suite *ContactHandlerTestSuite) TestImportContacts() {
	suite.expectWorkspaceLookup()

	requestBody := map[string]interface{}{
		"contacts": []map[string]interface{}{
			{"email": "a@example.com"},
			{"email": "b@example.com"},
		},
	}

	suite.mockService.EXPECT().
		Import(suite.workspaceID, suite.userID, gomock.Any()).
		Return(&service.ImportContactsResponse{
			Imported: 1,
			Skipped:  1,
			Results: []service.ImportRowResult{
				{Email: "a@example.com", OK: true},
				{Email: "b@example.com", OK: false, Error: "contact already exists with this email in the workspace"},
			},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.contactsURL()+"/import", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ImportContactsResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 1, response.Imported)
	assert.Equal(suite.T(), 1, response.Skipped)
	assert.Len(suite.T(), response.Results, 2)
}

// TestGetContactCrossWorkspace tests that a contact from another workspace reads as not found
func (suite *ContactHandlerTestSuite) TestGetContactCrossWorkspace() {
	suite.expectWorkspaceLookup()
	contactID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(contactID).
		Return(&service.ContactResponse{
			ID:          contactID,
			WorkspaceID: uuid.New(),
			Email:       "foreign@example.com",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.contactsURL()+"/"+contactID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contact not found")
}

// TestUnsubscribeContact tests unsubscribing a contact
func (suite *ContactHandlerTestSuite) TestUnsubscribeContact() {
	suite.expectWorkspaceLookup()
	contactID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(contactID).
		Return(&service.ContactResponse{ID: contactID, WorkspaceID: suite.workspaceID}, nil).
		Times(1)
	suite.mockService.EXPECT().
		Unsubscribe(contactID).
		Return(&service.ContactResponse{
			ID:          contactID,
			WorkspaceID: suite.workspaceID,
			Status:      models.ContactUnsubscribed,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.contactsURL()+"/"+contactID.String()+"/unsubscribe", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.ContactUnsubscribed, response.Status)
}

// TestAdjustLeadScore tests adjusting a contact's lead score
func (suite *ContactHandlerTestSuite) TestAdjustLeadScore() {
	suite.expectWorkspaceLookup()
	contactID := uuid.New()

	requestBody := map[string]interface{}{"delta": 15}

	suite.mockService.EXPECT().
		GetByID(contactID).
		Return(&service.ContactResponse{ID: contactID, WorkspaceID: suite.workspaceID, LeadScore: 50}, nil).
		Times(1)
	suite.mockService.EXPECT().
		AdjustLeadScore(contactID, gomock.Any()).
		Return(&service.ContactResponse{ID: contactID, WorkspaceID: suite.workspaceID, LeadScore: 65}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.contactsURL()+"/"+contactID.String()+"/lead-score", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 65, response.LeadScore)
}

// TestContactHandlerTestSuite runs the test suite
func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}

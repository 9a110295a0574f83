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

// AIGenHandlerTestSuite defines the test suite for AIGenHandler
type AIGenHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAIGenServiceInterface
	handler     *AIGenHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AIGenHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAIGenServiceInterface(suite.ctrl)
	suite.handler = NewAIGenHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", testAuth(suite.userID))
	v1.POST("/organizations/:id/ai/generate", suite.handler.GenerateContent)
}

// TearDownTest cleans up after each test
func (suite *AIGenHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AIGenHandlerTestSuite) generateURL() string {
	return "/api/v1/organizations/" + suite.orgID.String() + "/ai/generate"
}

// TestGenerateContent tests generating marketing copy
func (suite *AIGenHandlerTestSuite) TestGenerateContent() {
	requestBody := map[string]interface{}{
		"kind":   "subject_line",
		"prompt": "Spring sale for returning customers",
		"tone":   "playful",
	}

	suite.mockService.EXPECT().
		Generate(gomock.Any(), suite.orgID, suite.userID, gomock.Any()).
		Return(&service.GenerateContentResponse{
			Content:  "Spring back in: your favorites are on sale",
			Provider: "anthropic",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.generateURL(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.GenerateContentResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "anthropic", response.Provider)
	assert.False(suite.T(), response.Cached)
}

// TestGenerateContentCached tests that cached responses are flagged
func (suite *AIGenHandlerTestSuite) TestGenerateContentCached() {
	requestBody := map[string]interface{}{
		"kind":   "email_body",
		"prompt": "Announce our new dashboard to existing users",
	}

	suite.mockService.EXPECT().
		Generate(gomock.Any(), suite.orgID, suite.userID, gomock.Any()).
		Return(&service.GenerateContentResponse{
			Content:  "We rebuilt the dashboard from the ground up...",
			Provider: "anthropic",
			Cached:   true,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.generateURL(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.GenerateContentResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Cached)
}

// TestGenerateContentCreditsExhausted tests the credit limit status mapping
func (suite *AIGenHandlerTestSuite) TestGenerateContentCreditsExhausted() {
	requestBody := map[string]interface{}{
		"kind":   "social_post",
		"prompt": "Short post about our webinar next week",
	}

	suite.mockService.EXPECT().
		Generate(gomock.Any(), suite.orgID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrCreditsExhausted).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.generateURL(), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusPaymentRequired, "plan limit reached")
}

// TestGenerateContentUnknownOrganization tests generating for an unknown organization
func (suite *AIGenHandlerTestSuite) TestGenerateContentUnknownOrganization() {
	requestBody := map[string]interface{}{
		"kind":   "subject_line",
		"prompt": "Spring sale for returning customers",
	}

	suite.mockService.EXPECT().
		Generate(gomock.Any(), suite.orgID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.generateURL(), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestAIGenHandlerTestSuite runs the test suite
func TestAIGenHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AIGenHandlerTestSuite))
}

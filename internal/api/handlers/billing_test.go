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

// BillingHandlerTestSuite defines the test suite for BillingHandler
type BillingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBillingServiceInterface
	handler     *BillingHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *BillingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBillingServiceInterface(suite.ctrl)
	suite.handler = NewBillingHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", testAuth(suite.userID))
	billing := v1.Group("/organizations/:id/billing")
	{
		billing.GET("", suite.handler.GetBillingOverview)
		billing.POST("/checkout", suite.handler.CreateCheckoutSession)
		billing.POST("/portal", suite.handler.CreatePortalSession)
	}
}

// TearDownTest cleans up after each test
func (suite *BillingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BillingHandlerTestSuite) billingURL() string {
	return "/api/v1/organizations/" + suite.orgID.String() + "/billing"
}

// TestCreateCheckoutSession tests starting a checkout
func (suite *BillingHandlerTestSuite) TestCreateCheckoutSession() {
	requestBody := map[string]interface{}{"tier": "starter"}

	suite.mockService.EXPECT().
		CreateCheckoutSession(suite.orgID, suite.userID, gomock.Any()).
		Return(&service.CheckoutSessionResponse{URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.billingURL()+"/checkout", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.CheckoutSessionResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Contains(suite.T(), response.URL, "checkout.stripe.com")
}

// TestCreateCheckoutSessionInvalidTier tests checking out an unknown tier
func (suite *BillingHandlerTestSuite) TestCreateCheckoutSessionInvalidTier() {
	requestBody := map[string]interface{}{"tier": "starter"}

	suite.mockService.EXPECT().
		CreateCheckoutSession(suite.orgID, suite.userID, gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "tier", Message: "unknown plan tier"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.billingURL()+"/checkout", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreatePortalSessionWithoutCustomer tests opening the portal before any checkout
func (suite *BillingHandlerTestSuite) TestCreatePortalSessionWithoutCustomer() {
	suite.mockService.EXPECT().
		CreatePortalSession(suite.orgID).
		Return(nil, apperrors.ErrSubscriptionNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.billingURL()+"/portal", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "subscription not found")
}

// TestGetBillingOverview tests the combined billing view
func (suite *BillingHandlerTestSuite) TestGetBillingOverview() {
	suite.mockService.EXPECT().
		GetOverview(suite.orgID).
		Return(&service.BillingOverviewResponse{
			PlanTier: models.PlanStarter,
			Limits:   service.LimitsForTier(models.PlanStarter),
			Usage: service.UsageResponse{
				Contacts:            120,
				Workspaces:          2,
				CampaignsThisPeriod: 5,
			},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.billingURL(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.BillingOverviewResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.PlanStarter, response.PlanTier)
	assert.Equal(suite.T(), int64(120), response.Usage.Contacts)
}

// TestGetBillingOverviewNotFound tests the overview for an unknown organization
func (suite *BillingHandlerTestSuite) TestGetBillingOverviewNotFound() {
	suite.mockService.EXPECT().
		GetOverview(suite.orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.billingURL(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestBillingHandlerTestSuite runs the test suite
func TestBillingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

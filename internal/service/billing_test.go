package service_test

import (
	"testing"
	"time"

	"synthex-backend/internal/config"
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

// BillingServiceTestSuite defines the test suite for BillingService
type BillingServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockOrgs          *mocks.MockOrganizationRepositoryInterface
	mockSubscriptions *mocks.MockSubscriptionRepositoryInterface
	mockWorkspaces    *mocks.MockWorkspaceRepositoryInterface
	mockContacts      *mocks.MockContactRepositoryInterface
	mockCampaigns     *mocks.MockCampaignRepositoryInterface
	mockAuditRepo     *mocks.MockAuditLogRepositoryInterface
	billingService    *service.BillingService
}

// SetupTest sets up the test suite
func (suite *BillingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockSubscriptions = mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl)
	suite.mockWorkspaces = mocks.NewMockWorkspaceRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockCampaigns = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)

	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{
		StripePriceStarter:      "price_starter",
		StripePriceProfessional: "price_professional",
		// enterprise deliberately unconfigured
		BillingReturnURL: "https://app.synthex.dev/billing",
	}

	suite.billingService = service.NewBillingService(
		suite.mockOrgs,
		suite.mockSubscriptions,
		suite.mockWorkspaces,
		suite.mockContacts,
		suite.mockCampaigns,
		service.NewCreditMeter(nil),
		service.NewAuditService(suite.mockAuditRepo),
		validator.New(),
		cfg,
	)
}

// TearDownTest cleans up after each test
func (suite *BillingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestTierForPrice tests mapping Stripe price ids back to plan tiers
func (suite *BillingServiceTestSuite) TestTierForPrice() {
	tier, ok := suite.billingService.TierForPrice("price_starter")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), models.PlanStarter, tier)

	tier, ok = suite.billingService.TierForPrice("price_professional")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), models.PlanProfessional, tier)

	_, ok = suite.billingService.TierForPrice("price_unknown")
	assert.False(suite.T(), ok)
}

// TestCreateCheckoutSessionInvalidTier tests that unknown tiers fail validation
func (suite *BillingServiceTestSuite) TestCreateCheckoutSessionInvalidTier() {
	req := &service.CreateCheckoutRequest{Tier: models.PlanTier("platinum")}

	response, err := suite.billingService.CreateCheckoutSession(uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateCheckoutSessionUnconfiguredPrice tests a tier with no
// configured Stripe price
func (suite *BillingServiceTestSuite) TestCreateCheckoutSessionUnconfiguredPrice() {
	req := &service.CreateCheckoutRequest{Tier: models.PlanEnterprise}

	response, err := suite.billingService.CreateCheckoutSession(uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "no Stripe price configured")
}

// TestCreatePortalSessionWithoutCustomer tests that an organization that
// never checked out has no portal
func (suite *BillingServiceTestSuite) TestCreatePortalSessionWithoutCustomer() {
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanFree,
	}

	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)

	response, err := suite.billingService.CreatePortalSession(org.ID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGetOverview tests the combined billing view
func (suite *BillingServiceTestSuite) TestGetOverview() {
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanStarter,
	}
	periodEnd := time.Now().Add(20 * 24 * time.Hour)

	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockContacts.EXPECT().CountByOrganizationID(org.ID).Return(int64(120), nil).Times(1)
	suite.mockWorkspaces.EXPECT().CountByOrganizationID(org.ID).Return(int64(2), nil).Times(1)
	suite.mockCampaigns.EXPECT().CountScheduledByOrganizationSince(org.ID, gomock.Any()).Return(int64(5), nil).Times(1)
	suite.mockSubscriptions.EXPECT().
		GetByOrganizationID(org.ID).
		Return(&models.Subscription{
			OrganizationID:   org.ID,
			Tier:             models.PlanStarter,
			Status:           models.SubscriptionActive,
			CurrentPeriodEnd: &periodEnd,
		}, nil).
		Times(1)

	overview, err := suite.billingService.GetOverview(org.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PlanStarter, overview.PlanTier)
	assert.Equal(suite.T(), int64(120), overview.Usage.Contacts)
	assert.Equal(suite.T(), int64(2), overview.Usage.Workspaces)
	assert.Equal(suite.T(), int64(5), overview.Usage.CampaignsThisPeriod)
	assert.Equal(suite.T(), service.LimitsForTier(models.PlanStarter), overview.Limits)
	assert.NotNil(suite.T(), overview.Subscription)
	assert.Equal(suite.T(), models.SubscriptionActive, overview.Subscription.Status)
}

// TestGetOverviewNoSubscription tests the view for a trial organization
func (suite *BillingServiceTestSuite) TestGetOverviewNoSubscription() {
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanFree,
	}

	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockContacts.EXPECT().CountByOrganizationID(org.ID).Return(int64(0), nil).Times(1)
	suite.mockWorkspaces.EXPECT().CountByOrganizationID(org.ID).Return(int64(1), nil).Times(1)
	suite.mockCampaigns.EXPECT().CountScheduledByOrganizationSince(org.ID, gomock.Any()).Return(int64(0), nil).Times(1)
	suite.mockSubscriptions.EXPECT().GetByOrganizationID(org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	overview, err := suite.billingService.GetOverview(org.ID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), overview.Subscription)
}

// TestBillingServiceTestSuite runs the test suite
func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

package service_test

import (
	"context"
	"testing"

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

// AIGenServiceTestSuite defines the test suite for AIGenService
type AIGenServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockOrgs      *mocks.MockOrganizationRepositoryInterface
	mockAuditRepo *mocks.MockAuditLogRepositoryInterface
	aigenService  *service.AIGenService
}

// SetupTest sets up the test suite
func (suite *AIGenServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)

	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	// No provider key configured: generation stops right after the
	// credit check, which is the part under test here.
	cfg := &config.Config{AIProvider: "anthropic"}

	suite.aigenService = service.NewAIGenService(
		suite.mockOrgs,
		service.NewAuditService(suite.mockAuditRepo),
		nil, // caching disabled
		service.NewCreditMeter(nil),
		validator.New(),
		cfg,
	)
}

// TearDownTest cleans up after each test
func (suite *AIGenServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validGenerateRequest() *service.GenerateContentRequest {
	return &service.GenerateContentRequest{
		Kind:   "subject_line",
		Prompt: "Announce our new autumn collection to existing customers",
		Tone:   "professional",
	}
}

// TestGenerateValidationError tests that a too-short prompt is rejected
func (suite *AIGenServiceTestSuite) TestGenerateValidationError() {
	req := &service.GenerateContentRequest{
		Kind:   "subject_line",
		Prompt: "short",
	}

	response, err := suite.aigenService.Generate(context.Background(), uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGenerateUnknownKind tests that unsupported content kinds are rejected
func (suite *AIGenServiceTestSuite) TestGenerateUnknownKind() {
	req := validGenerateRequest()
	req.Kind = "press_release"

	response, err := suite.aigenService.Generate(context.Background(), uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGenerateOrganizationNotFound tests generation for a missing organization
func (suite *AIGenServiceTestSuite) TestGenerateOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrgs.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.aigenService.Generate(context.Background(), orgID, uuid.New(), validGenerateRequest())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGenerateMissingProviderKey tests that an unconfigured provider key
// surfaces as a configuration error, after the credit was taken
func (suite *AIGenServiceTestSuite) TestGenerateMissingProviderKey() {
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanFree,
	}

	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)

	response, err := suite.aigenService.Generate(context.Background(), org.ID, uuid.New(), validGenerateRequest())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "ANTHROPIC_API_KEY")
}

// TestGenerateCreditsExhausted tests that the monthly credit budget is
// enforced per organization
func (suite *AIGenServiceTestSuite) TestGenerateCreditsExhausted() {
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanFree,
	}
	limits := service.LimitsForTier(models.PlanFree)

	// Each attempt consumes a credit before the provider call fails on
	// the missing key, so the budget drains to zero.
	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil).Times(limits.AICreditsPerMonth + 1)

	for i := 0; i < limits.AICreditsPerMonth; i++ {
		req := validGenerateRequest()
		_, err := suite.aigenService.Generate(context.Background(), org.ID, uuid.New(), req)
		assert.Error(suite.T(), err)
		assert.Contains(suite.T(), err.Error(), "ANTHROPIC_API_KEY")
	}

	response, err := suite.aigenService.Generate(context.Background(), org.ID, uuid.New(), validGenerateRequest())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrCreditsExhausted, err)
	assert.True(suite.T(), apperrors.IsPlanLimit(err))
}

// TestGenerateCreditsScopedByOrganization tests that one tenant's usage
// does not drain another's budget
func (suite *AIGenServiceTestSuite) TestGenerateCreditsScopedByOrganization() {
	orgA := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanFree,
	}
	orgB := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "globex",
		PlanTier:  models.PlanFree,
	}
	limits := service.LimitsForTier(models.PlanFree)

	suite.mockOrgs.EXPECT().GetByID(orgA.ID).Return(orgA, nil).Times(limits.AICreditsPerMonth + 1)
	suite.mockOrgs.EXPECT().GetByID(orgB.ID).Return(orgB, nil).Times(1)

	for i := 0; i < limits.AICreditsPerMonth; i++ {
		suite.aigenService.Generate(context.Background(), orgA.ID, uuid.New(), validGenerateRequest())
	}

	// orgA is out of credits, orgB is not
	_, err := suite.aigenService.Generate(context.Background(), orgA.ID, uuid.New(), validGenerateRequest())
	assert.Equal(suite.T(), apperrors.ErrCreditsExhausted, err)

	_, err = suite.aigenService.Generate(context.Background(), orgB.ID, uuid.New(), validGenerateRequest())
	assert.Error(suite.T(), err)
	assert.NotEqual(suite.T(), apperrors.ErrCreditsExhausted, err)
}

// TestAIGenServiceTestSuite runs the test suite
func TestAIGenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AIGenServiceTestSuite))
}

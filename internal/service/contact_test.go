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

// ContactServiceTestSuite defines the test suite for ContactService
type ContactServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockContactRepositoryInterface
	mockWorkspaces *mocks.MockWorkspaceRepositoryInterface
	mockOrgs       *mocks.MockOrganizationRepositoryInterface
	mockAuditRepo  *mocks.MockAuditLogRepositoryInterface
	contactService *service.ContactService
	validator      *validator.Validate

	org       *models.Organization
	workspace *models.Workspace
}

// SetupTest sets up the test suite
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockWorkspaces = mocks.NewMockWorkspaceRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	suite.contactService = service.NewContactService(
		suite.mockRepo,
		suite.mockWorkspaces,
		suite.mockOrgs,
		service.NewAuditService(suite.mockAuditRepo),
		suite.validator,
	)

	suite.org = &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme",
		PlanTier:  models.PlanFree,
	}
	suite.workspace = &models.Workspace{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.org.ID,
		Slug:           "main",
	}
}

// TearDownTest cleans up after each test
func (suite *ContactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactServiceTestSuite) expectTenantLookup() {
	suite.mockWorkspaces.EXPECT().GetByID(suite.workspace.ID).Return(suite.workspace, nil).Times(1)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
}

// TestCreateContact tests creating a contact within the plan limit
func (suite *ContactServiceTestSuite) TestCreateContact() {
	req := &service.CreateContactRequest{
		Email:     "grace@example.com",
		FirstName: "Grace",
	}

	suite.expectTenantLookup()
	suite.mockRepo.EXPECT().CountByOrganizationID(suite.org.ID).Return(int64(10), nil).Times(1)
	suite.mockRepo.EXPECT().GetByEmail(suite.workspace.ID, req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(contact *models.Contact) error {
			contact.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.contactService.Create(suite.workspace.ID, uuid.New(), req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Email, response.Email)
	assert.Equal(suite.T(), models.ContactActive, response.Status)
}

// TestCreateContactPlanLimit tests that the contact cap counts across the
// whole organization
func (suite *ContactServiceTestSuite) TestCreateContactPlanLimit() {
	limits := service.LimitsForTier(models.PlanFree)
	req := &service.CreateContactRequest{Email: "grace@example.com"}

	suite.expectTenantLookup()
	suite.mockRepo.EXPECT().CountByOrganizationID(suite.org.ID).Return(int64(limits.MaxContacts), nil).Times(1)

	response, err := suite.contactService.Create(suite.workspace.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsPlanLimit(err))
}

// TestCreateContactDuplicateEmail tests creating a contact with a taken email
func (suite *ContactServiceTestSuite) TestCreateContactDuplicateEmail() {
	req := &service.CreateContactRequest{Email: "grace@example.com"}

	suite.expectTenantLookup()
	suite.mockRepo.EXPECT().CountByOrganizationID(suite.org.ID).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByEmail(suite.workspace.ID, req.Email).
		Return(&models.Contact{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).
		Times(1)

	response, err := suite.contactService.Create(suite.workspace.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestImportContacts tests a bulk import with a duplicate row
func (suite *ContactServiceTestSuite) TestImportContacts() {
	req := &service.ImportContactsRequest{
		Contacts: []service.CreateContactRequest{
			{Email: "ada@example.com"},
			{Email: "taken@example.com"},
		},
	}

	suite.expectTenantLookup()
	suite.mockRepo.EXPECT().CountByOrganizationID(suite.org.ID).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().GetByEmail(suite.workspace.ID, "ada@example.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByEmail(suite.workspace.ID, "taken@example.com").
		Return(&models.Contact{}, nil).
		Times(1)

	response, err := suite.contactService.Import(suite.workspace.ID, uuid.New(), req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Imported)
	assert.Equal(suite.T(), 1, response.Skipped)
	assert.Len(suite.T(), response.Results, 2)
	assert.True(suite.T(), response.Results[0].OK)
	assert.Equal(suite.T(), "contact already exists", response.Results[1].Error)
}

// TestImportContactsStopsAtPlanLimit tests that rows past the cap are skipped
func (suite *ContactServiceTestSuite) TestImportContactsStopsAtPlanLimit() {
	limits := service.LimitsForTier(models.PlanFree)
	req := &service.ImportContactsRequest{
		Contacts: []service.CreateContactRequest{
			{Email: "ada@example.com"},
			{Email: "grace@example.com"},
		},
	}

	suite.expectTenantLookup()
	// one slot left under the free plan cap
	suite.mockRepo.EXPECT().CountByOrganizationID(suite.org.ID).Return(int64(limits.MaxContacts-1), nil).Times(1)
	suite.mockRepo.EXPECT().GetByEmail(suite.workspace.ID, "ada@example.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.contactService.Import(suite.workspace.ID, uuid.New(), req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Imported)
	assert.Equal(suite.T(), 1, response.Skipped)
	assert.Contains(suite.T(), response.Results[1].Error, "plan limit")
}

// TestUnsubscribe tests marking a contact as unsubscribed
func (suite *ContactServiceTestSuite) TestUnsubscribe() {
	contact := &models.Contact{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: suite.workspace.ID,
		Email:       "grace@example.com",
		Status:      models.ContactActive,
	}

	suite.mockRepo.EXPECT().GetByID(contact.ID).Return(contact, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.contactService.Unsubscribe(contact.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ContactUnsubscribed, response.Status)
	assert.NotNil(suite.T(), response.UnsubscribedAt)
}

// TestUnsubscribeAlreadyUnsubscribed tests that unsubscribing twice is a no-op
func (suite *ContactServiceTestSuite) TestUnsubscribeAlreadyUnsubscribed() {
	contact := &models.Contact{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: suite.workspace.ID,
		Status:      models.ContactUnsubscribed,
	}

	suite.mockRepo.EXPECT().GetByID(contact.ID).Return(contact, nil).Times(1)

	response, err := suite.contactService.Unsubscribe(contact.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ContactUnsubscribed, response.Status)
}

// TestAdjustLeadScoreClamped tests that lead scores stay within 0-100
func (suite *ContactServiceTestSuite) TestAdjustLeadScoreClamped() {
	contact := &models.Contact{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: suite.workspace.ID,
		LeadScore:   95,
	}

	suite.mockRepo.EXPECT().GetByID(contact.ID).Return(contact, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.contactService.AdjustLeadScore(contact.ID, &service.AdjustLeadScoreRequest{Delta: 20})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, response.LeadScore)
}

// TestContactServiceTestSuite runs the test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}

package service_test

import (
	"context"
	"testing"
	"time"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/mocks"
	"synthex-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CampaignServiceTestSuite defines the test suite for CampaignService
type CampaignServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockCampaignRepositoryInterface
	mockRecipients  *mocks.MockRecipientRepositoryInterface
	mockContacts    *mocks.MockContactRepositoryInterface
	mockWorkspaces  *mocks.MockWorkspaceRepositoryInterface
	mockOrgs        *mocks.MockOrganizationRepositoryInterface
	mockMailer      *mocks.MockMailer
	mockAuditRepo   *mocks.MockAuditLogRepositoryInterface
	campaignService *service.CampaignService
	validator       *validator.Validate

	org       *models.Organization
	workspace *models.Workspace
}

// SetupTest sets up the test suite
func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockRecipients = mocks.NewMockRecipientRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockWorkspaces = mocks.NewMockWorkspaceRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	suite.campaignService = service.NewCampaignService(
		suite.mockRepo,
		suite.mockRecipients,
		suite.mockContacts,
		suite.mockWorkspaces,
		suite.mockOrgs,
		suite.mockMailer,
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
func (suite *CampaignServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CampaignServiceTestSuite) draftCampaign() *models.Campaign {
	return &models.Campaign{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		WorkspaceID:  suite.workspace.ID,
		Name:         "Welcome",
		Subject:      "Hello {{first_name}}",
		BodyTemplate: "Hi {{first_name}}, welcome aboard.",
		FromEmail:    "hello@acme.com",
		Status:       models.CampaignDraft,
	}
}

// TestSchedule tests scheduling a draft campaign
func (suite *CampaignServiceTestSuite) TestSchedule() {
	campaign := suite.draftCampaign()
	req := &service.ScheduleCampaignRequest{ScheduledAt: time.Now().Add(time.Hour)}

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)
	suite.mockWorkspaces.EXPECT().GetByID(suite.workspace.ID).Return(suite.workspace, nil).Times(1)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockRepo.EXPECT().CountScheduledByOrganizationSince(suite.org.ID, gomock.Any()).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockRepo.EXPECT().Transition(campaign.ID, models.CampaignDraft, models.CampaignScheduled).Return(true, nil).Times(1)

	response, err := suite.campaignService.Schedule(campaign.ID, uuid.New(), req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CampaignScheduled, response.Status)
	assert.NotNil(suite.T(), response.ScheduledAt)
}

// TestSchedulePastTime tests that scheduling in the past is rejected
func (suite *CampaignServiceTestSuite) TestSchedulePastTime() {
	req := &service.ScheduleCampaignRequest{ScheduledAt: time.Now().Add(-time.Hour)}

	response, err := suite.campaignService.Schedule(uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestScheduleMonthlyPlanLimit tests the monthly campaign quota
func (suite *CampaignServiceTestSuite) TestScheduleMonthlyPlanLimit() {
	campaign := suite.draftCampaign()
	limits := service.LimitsForTier(models.PlanFree)
	req := &service.ScheduleCampaignRequest{ScheduledAt: time.Now().Add(time.Hour)}

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)
	suite.mockWorkspaces.EXPECT().GetByID(suite.workspace.ID).Return(suite.workspace, nil).Times(1)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockRepo.EXPECT().
		CountScheduledByOrganizationSince(suite.org.ID, gomock.Any()).
		Return(int64(limits.MaxCampaignsPerMonth), nil).
		Times(1)

	response, err := suite.campaignService.Schedule(campaign.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsPlanLimit(err))
}

// TestScheduleNonDraft tests that only drafts can be scheduled
func (suite *CampaignServiceTestSuite) TestScheduleNonDraft() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignSent
	req := &service.ScheduleCampaignRequest{ScheduledAt: time.Now().Add(time.Hour)}

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)
	suite.mockWorkspaces.EXPECT().GetByID(suite.workspace.ID).Return(suite.workspace, nil).Times(1)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockRepo.EXPECT().CountScheduledByOrganizationSince(suite.org.ID, gomock.Any()).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.campaignService.Schedule(campaign.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
}

// TestUpdateNonDraft tests that only drafts can be edited
func (suite *CampaignServiceTestSuite) TestUpdateNonDraft() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignScheduled
	req := &service.UpdateCampaignRequest{
		Name:         "Welcome v2",
		Subject:      "Hello",
		BodyTemplate: "Hi.",
		FromEmail:    "hello@acme.com",
	}

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)

	response, err := suite.campaignService.Update(campaign.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
}

// TestPause tests pausing a scheduled campaign
func (suite *CampaignServiceTestSuite) TestPause() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignScheduled

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)
	suite.mockRepo.EXPECT().Transition(campaign.ID, models.CampaignScheduled, models.CampaignPaused).Return(true, nil).Times(1)
	suite.mockWorkspaces.EXPECT().GetByID(suite.workspace.ID).Return(suite.workspace, nil).Times(1)

	response, err := suite.campaignService.Pause(campaign.ID, uuid.New())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CampaignPaused, response.Status)
}

// TestPauseSending tests pausing a campaign that is already sending
func (suite *CampaignServiceTestSuite) TestPauseSending() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignSending

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)
	suite.mockRepo.EXPECT().Transition(campaign.ID, models.CampaignSending, models.CampaignPaused).Return(true, nil).Times(1)
	suite.mockWorkspaces.EXPECT().GetByID(suite.workspace.ID).Return(suite.workspace, nil).Times(1)

	response, err := suite.campaignService.Pause(campaign.ID, uuid.New())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CampaignPaused, response.Status)
}

// TestPauseSent tests that a completed campaign cannot be paused
func (suite *CampaignServiceTestSuite) TestPauseSent() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignSent

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)

	response, err := suite.campaignService.Pause(campaign.ID, uuid.New())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
}

// TestPauseLostRace tests pausing a campaign that dispatch already claimed
func (suite *CampaignServiceTestSuite) TestPauseLostRace() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignScheduled

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)
	suite.mockRepo.EXPECT().
		Transition(campaign.ID, models.CampaignScheduled, models.CampaignPaused).
		Return(false, nil).
		Times(1)

	response, err := suite.campaignService.Pause(campaign.ID, uuid.New())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
}

// TestDeleteSentCampaign tests that sent campaigns cannot be deleted
func (suite *CampaignServiceTestSuite) TestDeleteSentCampaign() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignSent

	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(campaign, nil).Times(1)

	err := suite.campaignService.Delete(campaign.ID, uuid.New())

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
}

// TestDispatchDue tests dispatching a due campaign to its audience
func (suite *CampaignServiceTestSuite) TestDispatchDue() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignScheduled

	contact := models.Contact{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: suite.workspace.ID,
		Email:       "grace@example.com",
		FirstName:   "Grace",
		Status:      models.ContactActive,
	}

	sending := *campaign
	sending.Status = models.CampaignSending

	suite.mockRepo.EXPECT().GetDue(gomock.Any(), 10).Return([]models.Campaign{*campaign}, nil).Times(1)
	suite.mockRepo.EXPECT().Transition(campaign.ID, models.CampaignScheduled, models.CampaignSending).Return(true, nil).Times(1)
	suite.mockRepo.EXPECT().MarkStarted(campaign.ID, gomock.Any()).Return(nil).Times(1)
	suite.mockContacts.EXPECT().GetActiveByWorkspaceID(suite.workspace.ID).Return([]models.Contact{contact}, nil).Times(1)
	suite.mockRecipients.EXPECT().BulkCreate(gomock.Any()).Return(nil).Times(1)
	suite.mockRecipients.EXPECT().
		GetPendingByCampaignID(campaign.ID).
		Return([]models.CampaignRecipient{{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			CampaignID: campaign.ID,
			ContactID:  contact.ID,
			Status:     models.RecipientPending,
		}}, nil).
		Times(1)

	// pause check before the delivery
	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(&sending, nil).Times(1)

	// merge fields are rendered before handing the body to the mailer
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), suite.workspace.ID, campaign.FromEmail, contact.Email, campaign.Subject, "Hi Grace, welcome aboard.").
		Return("msg-123", nil).
		Times(1)

	suite.mockRecipients.EXPECT().MarkSent(gomock.Any(), "msg-123", gomock.Any()).Return(nil).Times(1)
	suite.mockRecipients.EXPECT().CountByStatus(campaign.ID, models.RecipientSent).Return(int64(1), nil).Times(1)
	suite.mockRecipients.EXPECT().CountByStatus(campaign.ID, models.RecipientFailed).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().MarkCompleted(campaign.ID, models.CampaignSent, 1, 0, gomock.Any()).Return(nil).Times(1)

	err := suite.campaignService.DispatchDue(context.Background())

	assert.NoError(suite.T(), err)
}

// TestDispatchDuePausedMidSend tests that a pause takes effect between
// recipients: delivered mail stays counted, the rest stays pending
func (suite *CampaignServiceTestSuite) TestDispatchDuePausedMidSend() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignScheduled

	contacts := []models.Contact{
		{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			WorkspaceID: suite.workspace.ID,
			Email:       "grace@example.com",
			FirstName:   "Grace",
			Status:      models.ContactActive,
		},
		{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			WorkspaceID: suite.workspace.ID,
			Email:       "alan@example.com",
			FirstName:   "Alan",
			Status:      models.ContactActive,
		},
	}
	pending := []models.CampaignRecipient{
		{BaseModel: models.BaseModel{ID: uuid.New()}, CampaignID: campaign.ID, ContactID: contacts[0].ID, Status: models.RecipientPending},
		{BaseModel: models.BaseModel{ID: uuid.New()}, CampaignID: campaign.ID, ContactID: contacts[1].ID, Status: models.RecipientPending},
	}

	sending := *campaign
	sending.Status = models.CampaignSending
	paused := *campaign
	paused.Status = models.CampaignPaused

	suite.mockRepo.EXPECT().GetDue(gomock.Any(), 10).Return([]models.Campaign{*campaign}, nil).Times(1)
	suite.mockRepo.EXPECT().Transition(campaign.ID, models.CampaignScheduled, models.CampaignSending).Return(true, nil).Times(1)
	suite.mockRepo.EXPECT().MarkStarted(campaign.ID, gomock.Any()).Return(nil).Times(1)
	suite.mockContacts.EXPECT().GetActiveByWorkspaceID(suite.workspace.ID).Return(contacts, nil).Times(1)
	suite.mockRecipients.EXPECT().BulkCreate(gomock.Any()).Return(nil).Times(1)
	suite.mockRecipients.EXPECT().GetPendingByCampaignID(campaign.ID).Return(pending, nil).Times(1)

	// first recipient goes out, then the pause lands
	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(&sending, nil).Times(1)
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), suite.workspace.ID, campaign.FromEmail, contacts[0].Email, campaign.Subject, gomock.Any()).
		Return("msg-1", nil).
		Times(1)
	suite.mockRecipients.EXPECT().MarkSent(pending[0].ID, "msg-1", gomock.Any()).Return(nil).Times(1)
	suite.mockRepo.EXPECT().GetByID(campaign.ID).Return(&paused, nil).Times(1)

	// no second delivery, no completion: the campaign stays paused
	err := suite.campaignService.DispatchDue(context.Background())

	assert.NoError(suite.T(), err)
}

// TestDispatchDueLostClaim tests that a campaign claimed elsewhere is skipped
func (suite *CampaignServiceTestSuite) TestDispatchDueLostClaim() {
	campaign := suite.draftCampaign()
	campaign.Status = models.CampaignScheduled

	suite.mockRepo.EXPECT().GetDue(gomock.Any(), 10).Return([]models.Campaign{*campaign}, nil).Times(1)
	suite.mockRepo.EXPECT().
		Transition(campaign.ID, models.CampaignScheduled, models.CampaignSending).
		Return(false, nil).
		Times(1)

	err := suite.campaignService.DispatchDue(context.Background())

	assert.NoError(suite.T(), err)
}

// TestCampaignServiceTestSuite runs the test suite
func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}

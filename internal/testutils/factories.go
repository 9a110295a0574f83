package testutils

import (
	"fmt"
	"time"

	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
		PlanTier:    models.PlanFree,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithPlanTier sets a custom plan tier for the organization
func (f *OrganizationFactory) WithPlanTier(tier models.PlanTier) *models.Organization {
	org := f.Create()
	org.PlanTier = tier
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		Name:     "Test User",
		GoogleID: "google-" + id.String(),
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// MembershipFactory provides methods to create test OrganizationMember data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test membership linking the given user and organization
func (f *MembershipFactory) Create(orgID, userID uuid.UUID, role models.MemberRole) *models.OrganizationMember {
	return &models.OrganizationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
}

// WorkspaceFactory provides methods to create test Workspace data
type WorkspaceFactory struct{}

// NewWorkspaceFactory creates a new WorkspaceFactory
func NewWorkspaceFactory() *WorkspaceFactory {
	return &WorkspaceFactory{}
}

// Create creates a test Workspace in the given organization
func (f *WorkspaceFactory) Create(orgID uuid.UUID) *models.Workspace {
	id := uuid.New()
	return &models.Workspace{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "Test Workspace",
		Slug:           "ws-" + id.String()[:8],
		Timezone:       "UTC",
	}
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact in the given workspace
func (f *ContactFactory) Create(workspaceID uuid.UUID) *models.Contact {
	id := uuid.New()
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: workspaceID,
		Email:       fmt.Sprintf("contact-%s@example.com", id.String()[:8]),
		FirstName:   "Jane",
		LastName:    "Doe",
		Company:     "Acme Inc",
		Status:      models.ContactActive,
	}
}

// WithStatus sets a custom status for the contact
func (f *ContactFactory) WithStatus(workspaceID uuid.UUID, status models.ContactStatus) *models.Contact {
	contact := f.Create(workspaceID)
	contact.Status = status
	return contact
}

// CampaignFactory provides methods to create test Campaign data
type CampaignFactory struct{}

// NewCampaignFactory creates a new CampaignFactory
func NewCampaignFactory() *CampaignFactory {
	return &CampaignFactory{}
}

// Create creates a test draft Campaign in the given workspace
func (f *CampaignFactory) Create(workspaceID uuid.UUID) *models.Campaign {
	return &models.Campaign{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID:  workspaceID,
		Name:         "Test Campaign",
		Subject:      "Hello {{first_name}}",
		BodyTemplate: "<p>Hi {{first_name}}, welcome!</p>",
		FromEmail:    "sender@example.com",
		Status:       models.CampaignDraft,
	}
}

// WithStatus sets a custom status for the campaign
func (f *CampaignFactory) WithStatus(workspaceID uuid.UUID, status models.CampaignStatus) *models.Campaign {
	campaign := f.Create(workspaceID)
	campaign.Status = status
	if status == models.CampaignScheduled {
		at := time.Now().Add(-time.Minute)
		campaign.ScheduledAt = &at
	}
	return campaign
}

// WebhookEventFactory provides methods to create test WebhookEvent data
type WebhookEventFactory struct{}

// NewWebhookEventFactory creates a new WebhookEventFactory
func NewWebhookEventFactory() *WebhookEventFactory {
	return &WebhookEventFactory{}
}

// Create creates a test WebhookEvent with a unique provider event id
func (f *WebhookEventFactory) Create() *models.WebhookEvent {
	id := uuid.New()
	return &models.WebhookEvent{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Provider:  "stripe",
		EventID:   "evt_" + id.String()[:12],
		EventType: "customer.subscription.updated",
		Status:    models.WebhookReceived,
	}
}

// OAuthStateFactory provides methods to create test OAuthState data
type OAuthStateFactory struct{}

// NewOAuthStateFactory creates a new OAuthStateFactory
func NewOAuthStateFactory() *OAuthStateFactory {
	return &OAuthStateFactory{}
}

// Create creates a test OAuthState that expires in ten minutes
func (f *OAuthStateFactory) Create() *models.OAuthState {
	id := uuid.New()
	return &models.OAuthState{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		State:     "state-" + id.String(),
		Provider:  "google",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
}

// Expired creates a test OAuthState that has already expired
func (f *OAuthStateFactory) Expired() *models.OAuthState {
	state := f.Create()
	state.ExpiresAt = time.Now().Add(-time.Minute)
	return state
}

// FactorySet bundles all factories for convenient use in test suites
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Membership   *MembershipFactory
	Workspace    *WorkspaceFactory
	Contact      *ContactFactory
	Campaign     *CampaignFactory
	WebhookEvent *WebhookEventFactory
	OAuthState   *OAuthStateFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Membership:   NewMembershipFactory(),
		Workspace:    NewWorkspaceFactory(),
		Contact:      NewContactFactory(),
		Campaign:     NewCampaignFactory(),
		WebhookEvent: NewWebhookEventFactory(),
		OAuthState:   NewOAuthStateFactory(),
	}
}

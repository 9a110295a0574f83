package repository

import (
	"time"

	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByStripeCustomerID(customerID string) (*models.Organization, error)
	Update(org *models.Organization) error
	UpdatePlanTier(id uuid.UUID, tier models.PlanTier) error
	SetStripeCustomerID(id uuid.UUID, customerID string) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	Update(user *models.User) error
}

// MembershipRepositoryInterface defines the interface for organization membership operations
type MembershipRepositoryInterface interface {
	Create(member *models.OrganizationMember) error
	GetByID(id uuid.UUID) (*models.OrganizationMember, error)
	GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMember, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMember, int64, error)
	GetOrganizationsByUserID(userID uuid.UUID) ([]models.OrganizationMember, error)
	CountOwners(orgID uuid.UUID) (int64, error)
	UpdateRole(id uuid.UUID, role models.MemberRole) error
	Delete(id uuid.UUID) error
}

// WorkspaceRepositoryInterface defines the interface for workspace repository operations
type WorkspaceRepositoryInterface interface {
	Create(workspace *models.Workspace) error
	GetByID(id uuid.UUID) (*models.Workspace, error)
	GetBySlug(orgID uuid.UUID, slug string) (*models.Workspace, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Workspace, int64, error)
	CountByOrganizationID(orgID uuid.UUID) (int64, error)
	Update(workspace *models.Workspace) error
	Delete(id uuid.UUID) error
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetByEmail(workspaceID uuid.UUID, email string) (*models.Contact, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Contact, int64, error)
	GetActiveByWorkspaceID(workspaceID uuid.UUID) ([]models.Contact, error)
	Search(workspaceID uuid.UUID, query string, limit, offset int) ([]models.Contact, int64, error)
	CountByOrganizationID(orgID uuid.UUID) (int64, error)
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) error
}

// CampaignRepositoryInterface defines the interface for campaign repository operations
type CampaignRepositoryInterface interface {
	Create(campaign *models.Campaign) error
	GetByID(id uuid.UUID) (*models.Campaign, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Campaign, int64, error)
	GetDue(now time.Time, limit int) ([]models.Campaign, error)
	CountScheduledByOrganizationSince(orgID uuid.UUID, since time.Time) (int64, error)
	Transition(id uuid.UUID, from, to models.CampaignStatus) (bool, error)
	MarkStarted(id uuid.UUID, at time.Time) error
	MarkCompleted(id uuid.UUID, status models.CampaignStatus, sent, failed int, at time.Time) error
	Update(campaign *models.Campaign) error
	Delete(id uuid.UUID) error
}

// RecipientRepositoryInterface defines the interface for campaign recipient operations
type RecipientRepositoryInterface interface {
	BulkCreate(recipients []models.CampaignRecipient) error
	GetPendingByCampaignID(campaignID uuid.UUID) ([]models.CampaignRecipient, error)
	MarkSent(id uuid.UUID, messageID string, at time.Time) error
	MarkFailed(id uuid.UUID, lastError string) error
	CountByStatus(campaignID uuid.UUID, status models.RecipientStatus) (int64, error)
}

// SubscriptionRepositoryInterface defines the interface for subscription mirror operations
type SubscriptionRepositoryInterface interface {
	GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error)
	GetByStripeSubscriptionID(stripeID string) (*models.Subscription, error)
	Create(sub *models.Subscription) error
	Update(sub *models.Subscription) error
}

// WebhookEventRepositoryInterface defines the interface for webhook event tracking.
// Insert reports created=false when the (provider, event_id) pair was
// already recorded, which is the idempotency check for retried deliveries.
type WebhookEventRepositoryInterface interface {
	Insert(event *models.WebhookEvent) (created bool, err error)
	GetByProviderEventID(provider, eventID string) (*models.WebhookEvent, error)
	MarkProcessed(id uuid.UUID, at time.Time) error
	MarkFailed(id uuid.UUID, processingError string) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// OAuthStateRepositoryInterface defines the interface for one-time OAuth state tokens
type OAuthStateRepositoryInterface interface {
	Create(state *models.OAuthState) error
	Consume(state string, now time.Time) (*models.OAuthState, error)
	DeleteExpired(now time.Time) (int64, error)
}

// EmailAccountRepositoryInterface defines the interface for connected sending accounts
type EmailAccountRepositoryInterface interface {
	Create(account *models.EmailAccount) error
	GetByID(id uuid.UUID) (*models.EmailAccount, error)
	GetByWorkspaceID(workspaceID uuid.UUID) (*models.EmailAccount, error)
	UpdateTokens(id uuid.UUID, accessToken, refreshToken string, expiry *time.Time) error
	Delete(id uuid.UUID) error
}

// AuditLogRepositoryInterface defines the interface for audit log operations
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error)
}

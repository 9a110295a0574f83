package service

import (
	"context"

	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(creatorID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetForUser(userID uuid.UUID) ([]OrganizationResponse, error)
	Update(id uuid.UUID, actorID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID, actorID uuid.UUID) error
	AddMember(orgID uuid.UUID, actorID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error)
	GetMembers(orgID uuid.UUID, page, pageSize int) (*MemberListResponse, error)
	UpdateMemberRole(orgID, memberID uuid.UUID, actorID uuid.UUID, req *UpdateMemberRoleRequest) (*MemberResponse, error)
	RemoveMember(orgID, memberID uuid.UUID, actorID uuid.UUID) error
}

// WorkspaceServiceInterface defines the interface for workspace service
type WorkspaceServiceInterface interface {
	Create(orgID uuid.UUID, actorID uuid.UUID, req *CreateWorkspaceRequest) (*WorkspaceResponse, error)
	GetByID(id uuid.UUID) (*WorkspaceResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*WorkspaceListResponse, error)
	Update(id uuid.UUID, actorID uuid.UUID, req *UpdateWorkspaceRequest) (*WorkspaceResponse, error)
	Delete(id uuid.UUID, actorID uuid.UUID) error
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	Create(workspaceID uuid.UUID, actorID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error)
	Import(workspaceID uuid.UUID, actorID uuid.UUID, req *ImportContactsRequest) (*ImportContactsResponse, error)
	GetByID(id uuid.UUID) (*ContactResponse, error)
	GetByWorkspace(workspaceID uuid.UUID, page, pageSize int) (*ContactListResponse, error)
	Search(workspaceID uuid.UUID, query string, page, pageSize int) (*ContactListResponse, error)
	Update(id uuid.UUID, actorID uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error)
	Unsubscribe(id uuid.UUID) (*ContactResponse, error)
	AdjustLeadScore(id uuid.UUID, req *AdjustLeadScoreRequest) (*ContactResponse, error)
	Delete(id uuid.UUID, actorID uuid.UUID) error
}

// CampaignServiceInterface defines the interface for campaign service
type CampaignServiceInterface interface {
	Create(workspaceID uuid.UUID, actorID uuid.UUID, req *CreateCampaignRequest) (*CampaignResponse, error)
	GetByID(id uuid.UUID) (*CampaignResponse, error)
	GetByWorkspace(workspaceID uuid.UUID, page, pageSize int) (*CampaignListResponse, error)
	Update(id uuid.UUID, actorID uuid.UUID, req *UpdateCampaignRequest) (*CampaignResponse, error)
	Schedule(id uuid.UUID, actorID uuid.UUID, req *ScheduleCampaignRequest) (*CampaignResponse, error)
	SendNow(id uuid.UUID, actorID uuid.UUID) (*CampaignResponse, error)
	Pause(id uuid.UUID, actorID uuid.UUID) (*CampaignResponse, error)
	Resume(id uuid.UUID, actorID uuid.UUID) (*CampaignResponse, error)
	Delete(id uuid.UUID, actorID uuid.UUID) error
	DispatchDue(ctx context.Context) error
}

// BillingServiceInterface defines the interface for billing service
type BillingServiceInterface interface {
	CreateCheckoutSession(orgID uuid.UUID, actorID uuid.UUID, req *CreateCheckoutRequest) (*CheckoutSessionResponse, error)
	CreatePortalSession(orgID uuid.UUID) (*CheckoutSessionResponse, error)
	GetOverview(orgID uuid.UUID) (*BillingOverviewResponse, error)
	TierForPrice(priceID string) (models.PlanTier, bool)
}

// WebhookServiceInterface defines the interface for webhook processing
type WebhookServiceInterface interface {
	ProcessStripeEvent(event *stripe.Event) (*WebhookResult, error)
}

// AIGenServiceInterface defines the interface for AI content generation
type AIGenServiceInterface interface {
	Generate(ctx context.Context, orgID uuid.UUID, actorID uuid.UUID, req *GenerateContentRequest) (*GenerateContentResponse, error)
}

// EmailAccountServiceInterface defines the interface for connected sending accounts
type EmailAccountServiceInterface interface {
	Connect(workspaceID uuid.UUID, actorID uuid.UUID, req *ConnectEmailAccountRequest) (*EmailAccountResponse, error)
	GetByWorkspace(workspaceID uuid.UUID) (*EmailAccountResponse, error)
	Disconnect(id uuid.UUID, actorID uuid.UUID) error
}

// AuditServiceInterface defines the read side of the audit log
type AuditServiceInterface interface {
	List(orgID uuid.UUID, page, pageSize int) (*AuditLogListResponse, error)
}

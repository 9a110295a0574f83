package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"synthex-backend/internal/config"
	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	portalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"gorm.io/gorm"
)

// BillingService handles Stripe checkout and the local billing view.
// It never mutates the subscription mirror itself: all subscription
// state flows in through webhooks.
type BillingService struct {
	orgs          repository.OrganizationRepositoryInterface
	subscriptions repository.SubscriptionRepositoryInterface
	workspaces    repository.WorkspaceRepositoryInterface
	contacts      repository.ContactRepositoryInterface
	campaigns     repository.CampaignRepositoryInterface
	credits       *CreditMeter
	audit         *AuditService
	validator     *validator.Validate
	cfg           *config.Config
}

// NewBillingService creates a new billing service
func NewBillingService(
	orgs repository.OrganizationRepositoryInterface,
	subscriptions repository.SubscriptionRepositoryInterface,
	workspaces repository.WorkspaceRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	campaigns repository.CampaignRepositoryInterface,
	credits *CreditMeter,
	audit *AuditService,
	validator *validator.Validate,
	cfg *config.Config,
) *BillingService {
	return &BillingService{
		orgs:          orgs,
		subscriptions: subscriptions,
		workspaces:    workspaces,
		contacts:      contacts,
		campaigns:     campaigns,
		credits:       credits,
		audit:         audit,
		validator:     validator,
		cfg:           cfg,
	}
}

// CreateCheckoutRequest represents the request to start a plan upgrade
type CreateCheckoutRequest struct {
	Tier models.PlanTier `json:"tier" validate:"required,oneof=starter professional enterprise"`
}

// CheckoutSessionResponse carries the Stripe-hosted page URL
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// SubscriptionResponse represents the mirrored subscription state
type SubscriptionResponse struct {
	Tier              models.PlanTier           `json:"tier"`
	Status            models.SubscriptionStatus `json:"status"`
	CurrentPeriodEnd  *time.Time                `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool                      `json:"cancel_at_period_end"`
}

// UsageResponse reports current resource usage against plan limits
type UsageResponse struct {
	Contacts            int64 `json:"contacts"`
	Workspaces          int64 `json:"workspaces"`
	CampaignsThisPeriod int64 `json:"campaigns_this_period"`
	AICreditsThisPeriod int64 `json:"ai_credits_this_period"`
}

// BillingOverviewResponse is the combined billing view for an organization
type BillingOverviewResponse struct {
	PlanTier     models.PlanTier       `json:"plan_tier"`
	TrialEndsAt  *time.Time            `json:"trial_ends_at,omitempty"`
	Limits       PlanLimits            `json:"limits"`
	Usage        UsageResponse         `json:"usage"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

// CreateCheckoutSession creates a Stripe Checkout session for upgrading
// the organization to a paid tier. The organization's Stripe customer is
// created lazily on first checkout.
func (s *BillingService) CreateCheckoutSession(orgID uuid.UUID, actorID uuid.UUID, req *CreateCheckoutRequest) (*CheckoutSessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priceID := s.priceForTier(req.Tier)
	if priceID == "" {
		return nil, &apperrors.ConfigurationError{Message: fmt.Sprintf("no Stripe price configured for tier %s", req.Tier)}
	}

	org, err := s.getOrganization(orgID)
	if err != nil {
		return nil, err
	}

	customerID, err := s.ensureCustomer(org)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(s.cfg.BillingReturnURL + "?checkout=success"),
		CancelURL:  stripe.String(s.cfg.BillingReturnURL + "?checkout=canceled"),
	}
	params.AddMetadata("organization_id", orgID.String())

	session, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.audit.Record(orgID, &actorID, "billing.checkout_started", "organization", &orgID, map[string]string{
		"tier": string(req.Tier),
	})

	return &CheckoutSessionResponse{URL: session.URL}, nil
}

// CreatePortalSession creates a Stripe billing portal session so the
// organization can manage its subscription and payment method
func (s *BillingService) CreatePortalSession(orgID uuid.UUID) (*CheckoutSessionResponse, error) {
	org, err := s.getOrganization(orgID)
	if err != nil {
		return nil, err
	}
	if org.StripeCustomerID == nil {
		return nil, apperrors.ErrSubscriptionNotFound
	}

	session, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  org.StripeCustomerID,
		ReturnURL: stripe.String(s.cfg.BillingReturnURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}

	return &CheckoutSessionResponse{URL: session.URL}, nil
}

// GetOverview returns the organization's plan, usage, and mirrored
// subscription state
func (s *BillingService) GetOverview(orgID uuid.UUID) (*BillingOverviewResponse, error) {
	org, err := s.getOrganization(orgID)
	if err != nil {
		return nil, err
	}

	contactCount, err := s.contacts.CountByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	workspaceCount, err := s.workspaces.CountByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count workspaces: %w", err)
	}
	campaignCount, err := s.campaigns.CountScheduledByOrganizationSince(orgID, startOfMonth(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	overview := &BillingOverviewResponse{
		PlanTier:    org.PlanTier,
		TrialEndsAt: org.TrialEndsAt,
		Limits:      LimitsForTier(org.PlanTier),
		Usage: UsageResponse{
			Contacts:            contactCount,
			Workspaces:          workspaceCount,
			CampaignsThisPeriod: campaignCount,
			AICreditsThisPeriod: s.credits.Used(context.Background(), orgID),
		},
	}

	sub, err := s.subscriptions.GetByOrganizationID(orgID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub != nil {
		overview.Subscription = &SubscriptionResponse{
			Tier:              sub.Tier,
			Status:            sub.Status,
			CurrentPeriodEnd:  sub.CurrentPeriodEnd,
			CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		}
	}

	return overview, nil
}

// TierForPrice maps a Stripe price id back to the plan tier it sells
func (s *BillingService) TierForPrice(priceID string) (models.PlanTier, bool) {
	switch priceID {
	case s.cfg.StripePriceStarter:
		return models.PlanStarter, true
	case s.cfg.StripePriceProfessional:
		return models.PlanProfessional, true
	case s.cfg.StripePriceEnterprise:
		return models.PlanEnterprise, true
	}
	return "", false
}

func (s *BillingService) priceForTier(tier models.PlanTier) string {
	switch tier {
	case models.PlanStarter:
		return s.cfg.StripePriceStarter
	case models.PlanProfessional:
		return s.cfg.StripePriceProfessional
	case models.PlanEnterprise:
		return s.cfg.StripePriceEnterprise
	}
	return ""
}

// ensureCustomer returns the organization's Stripe customer id, creating
// the customer on first use
func (s *BillingService) ensureCustomer(org *models.Organization) (string, error) {
	if org.StripeCustomerID != nil {
		return *org.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Name: stripe.String(org.DisplayName),
	}
	params.AddMetadata("organization_id", org.ID.String())

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}

	if err := s.orgs.SetStripeCustomerID(org.ID, cust.ID); err != nil {
		return "", fmt.Errorf("failed to store stripe customer id: %w", err)
	}

	return cust.ID, nil
}

func (s *BillingService) getOrganization(orgID uuid.UUID) (*models.Organization, error) {
	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

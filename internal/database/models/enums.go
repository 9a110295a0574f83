package models

// PlanTier identifies the billing tier of an organization
type PlanTier string

const (
	PlanFree         PlanTier = "free"
	PlanStarter      PlanTier = "starter"
	PlanProfessional PlanTier = "professional"
	PlanEnterprise   PlanTier = "enterprise"
)

// IsValid checks whether the tier is one of the known plan tiers
func (t PlanTier) IsValid() bool {
	switch t {
	case PlanFree, PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// MemberRole identifies a user's role within an organization
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// rank orders roles for permission checks: owner > admin > member
func (r MemberRole) rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	}
	return 0
}

// AtLeast reports whether the role grants at least the permissions of other
func (r MemberRole) AtLeast(other MemberRole) bool {
	return r.rank() >= other.rank()
}

// IsValid checks whether the role is one of the known member roles
func (r MemberRole) IsValid() bool {
	return r.rank() > 0
}

// ContactStatus identifies the lifecycle state of a contact
type ContactStatus string

const (
	ContactActive       ContactStatus = "active"
	ContactUnsubscribed ContactStatus = "unsubscribed"
	ContactBounced      ContactStatus = "bounced"
)

// CampaignStatus identifies the lifecycle state of a campaign
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSending   CampaignStatus = "sending"
	CampaignSent      CampaignStatus = "sent"
	CampaignPaused    CampaignStatus = "paused"
	CampaignFailed    CampaignStatus = "failed"
)

// RecipientStatus identifies the delivery state of a single campaign recipient
type RecipientStatus string

const (
	RecipientPending RecipientStatus = "pending"
	RecipientSent    RecipientStatus = "sent"
	RecipientFailed  RecipientStatus = "failed"
)

// SubscriptionStatus mirrors the Stripe subscription status values the
// backend cares about
type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// WebhookEventStatus tracks processing state of an inbound webhook event
type WebhookEventStatus string

const (
	WebhookReceived  WebhookEventStatus = "received"
	WebhookProcessed WebhookEventStatus = "processed"
	WebhookFailed    WebhookEventStatus = "failed"
)

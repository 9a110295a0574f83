package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription mirrors the Stripe subscription for an organization.
// It is updated exclusively by webhook processing, never by request
// handlers, so the local copy can lag Stripe but cannot diverge from it.
type Subscription struct {
	BaseModel
	OrganizationID       uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex"`
	StripeSubscriptionID string             `json:"stripe_subscription_id" gorm:"uniqueIndex;not null;size:100"`
	StripePriceID        string             `json:"stripe_price_id" gorm:"size:100"`
	Tier                 PlanTier           `json:"tier" gorm:"not null;size:20"`
	Status               SubscriptionStatus `json:"status" gorm:"not null;size:20"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd    bool               `json:"cancel_at_period_end" gorm:"not null;default:false"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

package models

import (
	"encoding/json"
	"time"
)

// Organization represents the root entity for multi-tenancy and billing
type Organization struct {
	BaseModel
	Name             string          `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName      string          `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	PlanTier         PlanTier        `json:"plan_tier" gorm:"not null;size:20;default:'free'"`
	StripeCustomerID *string         `json:"stripe_customer_id,omitempty" gorm:"uniqueIndex;size:100"`
	TrialEndsAt      *time.Time      `json:"trial_ends_at,omitempty"`
	Settings         json.RawMessage `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Members      []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Workspaces   []Workspace          `json:"workspaces,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Subscription *Subscription        `json:"subscription,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

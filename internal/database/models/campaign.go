package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents an email campaign scoped to a workspace.
// Status moves draft -> scheduled -> sending -> sent/failed, with paused
// reachable from scheduled and sending.
type Campaign struct {
	BaseModel
	WorkspaceID  uuid.UUID      `json:"workspace_id" gorm:"type:uuid;not null;index"`
	Name         string         `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Subject      string         `json:"subject" gorm:"not null;size:300" validate:"required,max=300"`
	BodyTemplate string         `json:"body_template" gorm:"type:text" validate:"required"`
	FromEmail    string         `json:"from_email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Status       CampaignStatus `json:"status" gorm:"not null;size:20;default:'draft';index"`
	ScheduledAt  *time.Time     `json:"scheduled_at,omitempty" gorm:"index"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	SentCount    int            `json:"sent_count" gorm:"not null;default:0"`
	FailedCount  int            `json:"failed_count" gorm:"not null;default:0"`

	// Relationships
	Workspace  *Workspace          `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
	Recipients []CampaignRecipient `json:"recipients,omitempty" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}

// CampaignRecipient tracks the delivery of a campaign to a single contact
type CampaignRecipient struct {
	BaseModel
	CampaignID uuid.UUID       `json:"campaign_id" gorm:"type:uuid;not null;uniqueIndex:idx_campaign_contact"`
	ContactID  uuid.UUID       `json:"contact_id" gorm:"type:uuid;not null;uniqueIndex:idx_campaign_contact"`
	Status     RecipientStatus `json:"status" gorm:"not null;size:20;default:'pending';index"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
	MessageID  string          `json:"message_id" gorm:"size:200"`
	LastError  string          `json:"last_error" gorm:"size:500"`

	// Relationships
	Campaign *Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID"`
	Contact  *Contact  `json:"contact,omitempty" gorm:"foreignKey:ContactID"`
}

// TableName returns the table name for CampaignRecipient
func (CampaignRecipient) TableName() string {
	return "campaign_recipients"
}

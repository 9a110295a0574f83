package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Contact represents a CRM contact scoped to a workspace
type Contact struct {
	BaseModel
	WorkspaceID    uuid.UUID       `json:"workspace_id" gorm:"type:uuid;not null;uniqueIndex:idx_workspace_contact_email"`
	Email          string          `json:"email" gorm:"not null;size:255;uniqueIndex:idx_workspace_contact_email" validate:"required,email,max=255"`
	FirstName      string          `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName       string          `json:"last_name" gorm:"size:100" validate:"max=100"`
	Phone          string          `json:"phone" gorm:"size:50" validate:"max=50"`
	Company        string          `json:"company" gorm:"size:200" validate:"max=200"`
	Status         ContactStatus   `json:"status" gorm:"not null;size:20;default:'active'"`
	LeadScore      int             `json:"lead_score" gorm:"not null;default:0"`
	Tags           json.RawMessage `json:"tags" gorm:"type:jsonb"`
	Enrichment     json.RawMessage `json:"enrichment" gorm:"type:jsonb"`
	UnsubscribedAt *time.Time      `json:"unsubscribed_at,omitempty"`

	// Relationships
	Workspace *Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Workspace is the data boundary inside an organization: contacts and
// campaigns are scoped to a workspace
type Workspace struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_workspace_slug"`
	Name           string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Slug           string          `json:"slug" gorm:"not null;size:100;uniqueIndex:idx_org_workspace_slug" validate:"required,max=100"`
	Timezone       string          `json:"timezone" gorm:"size:50;default:'UTC'"`
	Settings       json.RawMessage `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Organization  *Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Contacts      []Contact      `json:"contacts,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Campaigns     []Campaign     `json:"campaigns,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	EmailAccounts []EmailAccount `json:"email_accounts,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}

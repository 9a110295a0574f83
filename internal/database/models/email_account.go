package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailAccount stores a connected sending account (Gmail) for a workspace
type EmailAccount struct {
	BaseModel
	WorkspaceID  uuid.UUID  `json:"workspace_id" gorm:"type:uuid;not null;uniqueIndex:idx_workspace_email_account"`
	Provider     string     `json:"provider" gorm:"not null;size:50;default:'gmail'"`
	Email        string     `json:"email" gorm:"not null;size:255;uniqueIndex:idx_workspace_email_account" validate:"required,email"`
	AccessToken  string     `json:"-" gorm:"size:2000"`
	RefreshToken string     `json:"-" gorm:"size:2000"`
	TokenExpiry  *time.Time `json:"token_expiry,omitempty"`

	// Relationships
	Workspace *Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
}

// TableName returns the table name for EmailAccount
func (EmailAccount) TableName() string {
	return "email_accounts"
}

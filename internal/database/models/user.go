package models

import "time"

// User represents a platform user authenticated through Google OAuth
type User struct {
	BaseModel
	Email       string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name        string     `json:"name" gorm:"size:200" validate:"max=200"`
	AvatarURL   string     `json:"avatar_url" gorm:"size:500"`
	GoogleID    string     `json:"google_id" gorm:"uniqueIndex;size:100"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// Relationships
	Memberships []OrganizationMember `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

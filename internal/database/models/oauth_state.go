package models

import "time"

// OAuthState is a single-use CSRF token for the OAuth authorization flow.
// A state is valid until ExpiresAt and may be consumed exactly once;
// consumption is recorded in ConsumedAt by a conditional update.
type OAuthState struct {
	BaseModel
	State       string     `json:"state" gorm:"uniqueIndex;not null;size:100"`
	Provider    string     `json:"provider" gorm:"not null;size:50"`
	RedirectURI string     `json:"redirect_uri" gorm:"size:500"`
	ExpiresAt   time.Time  `json:"expires_at" gorm:"not null;index"`
	ConsumedAt  *time.Time `json:"consumed_at,omitempty"`
}

// TableName returns the table name for OAuthState
func (OAuthState) TableName() string {
	return "oauth_states"
}

// Expired reports whether the state is past its TTL at the given time
func (s *OAuthState) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

package models

import (
	"encoding/json"
	"time"
)

// WebhookEvent records an inbound webhook delivery. The unique index on
// (provider, event_id) is what makes processing idempotent: a retried
// delivery fails the insert and is acknowledged without side effects.
type WebhookEvent struct {
	BaseModel
	Provider    string             `json:"provider" gorm:"not null;size:50;uniqueIndex:idx_provider_event"`
	EventID     string             `json:"event_id" gorm:"not null;size:200;uniqueIndex:idx_provider_event"`
	EventType   string             `json:"event_type" gorm:"not null;size:100;index"`
	Payload     json.RawMessage    `json:"payload" gorm:"type:jsonb"`
	Status      WebhookEventStatus `json:"status" gorm:"not null;size:20;default:'received'"`
	Error       string             `json:"error" gorm:"size:1000"`
	ProcessedAt *time.Time         `json:"processed_at,omitempty"`
}

// TableName returns the table name for WebhookEvent
func (WebhookEvent) TableName() string {
	return "webhook_events"
}

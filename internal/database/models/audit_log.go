package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditLog records a mutating action within an organization
type AuditLog struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	ActorID        *uuid.UUID      `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	Action         string          `json:"action" gorm:"not null;size:100;index"`
	EntityType     string          `json:"entity_type" gorm:"not null;size:50"`
	EntityID       *uuid.UUID      `json:"entity_id,omitempty" gorm:"type:uuid"`
	Metadata       json.RawMessage `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

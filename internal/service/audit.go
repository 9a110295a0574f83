package service

import (
	"encoding/json"
	"fmt"

	"synthex-backend/internal/database/models"
	"synthex-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records mutating actions for an organization.
// Recording is best-effort: a failed audit write is logged and never
// fails the operation it describes.
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// AuditLogResponse represents a single audit log entry
type AuditLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	ActorID    *uuid.UUID      `json:"actor_id,omitempty"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   *uuid.UUID      `json:"entity_id,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

// AuditLogListResponse represents a paginated list of audit log entries
type AuditLogListResponse struct {
	Entries  []AuditLogResponse `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Record writes an audit entry. Metadata may be nil.
func (s *AuditService) Record(orgID uuid.UUID, actorID *uuid.UUID, action, entityType string, entityID *uuid.UUID, metadata interface{}) {
	if s == nil || s.repo == nil {
		return
	}

	entry := &models.AuditLog{
		OrganizationID: orgID,
		ActorID:        actorID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
	}

	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			logrus.WithError(err).WithField("action", action).Warn("failed to marshal audit metadata")
		} else {
			entry.Metadata = data
		}
	}

	if err := s.repo.Create(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"organization_id": orgID,
			"action":          action,
		}).Warn("failed to write audit log entry")
	}
}

// List returns audit entries for an organization, newest first
func (s *AuditService) List(orgID uuid.UUID, page, pageSize int) (*AuditLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	entries, total, err := s.repo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	responses := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = AuditLogResponse{
			ID:         entry.ID,
			ActorID:    entry.ActorID,
			Action:     entry.Action,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Metadata:   entry.Metadata,
			CreatedAt:  entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return &AuditLogListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

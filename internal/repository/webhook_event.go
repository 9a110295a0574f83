package repository

import (
	"time"

	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookEventRepository handles database operations for inbound webhook
// event tracking
type WebhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// Insert records an event delivery. The unique index on
// (provider, event_id) turns a retried delivery into a no-op insert;
// created=false tells the caller the event was already seen. Safe under
// concurrent deliveries of the same event.
func (r *WebhookEventRepository) Insert(event *models.WebhookEvent) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}, {Name: "event_id"}},
		DoNothing: true,
	}).Create(event)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// GetByProviderEventID retrieves an event by its provider-scoped id
func (r *WebhookEventRepository) GetByProviderEventID(provider, eventID string) (*models.WebhookEvent, error) {
	var event models.WebhookEvent
	err := r.db.First(&event, "provider = ? AND event_id = ?", provider, eventID).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// MarkProcessed records successful processing of an event
func (r *WebhookEventRepository) MarkProcessed(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.WebhookEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.WebhookProcessed,
			"processed_at": at,
			"error":        "",
		}).Error
}

// MarkFailed records a processing failure, keeping the row so that a
// later redelivery attempt can be inspected against it
func (r *WebhookEventRepository) MarkFailed(id uuid.UUID, processingError string) error {
	if len(processingError) > 1000 {
		processingError = processingError[:1000]
	}
	return r.db.Model(&models.WebhookEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": models.WebhookFailed,
			"error":  processingError,
		}).Error
}

// DeleteOlderThan prunes processed events older than the cutoff
func (r *WebhookEventRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ? AND status = ?", cutoff, models.WebhookProcessed).
		Delete(&models.WebhookEvent{})
	return res.RowsAffected, res.Error
}

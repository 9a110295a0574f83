package repository

import (
	"time"

	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipientRepository handles database operations for campaign recipients
type RecipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(db *gorm.DB) *RecipientRepository {
	return &RecipientRepository{db: db}
}

// BulkCreate inserts recipients, skipping pairs that already exist.
// Re-running enrollment for a campaign is therefore safe.
func (r *RecipientRepository) BulkCreate(recipients []models.CampaignRecipient) error {
	if len(recipients) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "contact_id"}},
		DoNothing: true,
	}).Create(&recipients).Error
}

// GetPendingByCampaignID retrieves pending recipients with their contacts
func (r *RecipientRepository) GetPendingByCampaignID(campaignID uuid.UUID) ([]models.CampaignRecipient, error) {
	var recipients []models.CampaignRecipient
	err := r.db.Preload("Contact").
		Where("campaign_id = ? AND status = ?", campaignID, models.RecipientPending).
		Find(&recipients).Error
	if err != nil {
		return nil, err
	}
	return recipients, nil
}

// MarkSent records a successful delivery
func (r *RecipientRepository) MarkSent(id uuid.UUID, messageID string, at time.Time) error {
	return r.db.Model(&models.CampaignRecipient{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.RecipientSent,
			"message_id": messageID,
			"sent_at":    at,
			"last_error": "",
		}).Error
}

// MarkFailed records a delivery failure
func (r *RecipientRepository) MarkFailed(id uuid.UUID, lastError string) error {
	if len(lastError) > 500 {
		lastError = lastError[:500]
	}
	return r.db.Model(&models.CampaignRecipient{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.RecipientFailed,
			"last_error": lastError,
		}).Error
}

// CountByStatus counts recipients of a campaign in a given status
func (r *RecipientRepository) CountByStatus(campaignID uuid.UUID, status models.RecipientStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.CampaignRecipient{}).
		Where("campaign_id = ? AND status = ?", campaignID, status).
		Count(&count).Error
	return count, err
}

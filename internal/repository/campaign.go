package repository

import (
	"time"

	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignRepository handles database operations for campaigns
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetByWorkspaceID retrieves campaigns of a workspace with pagination
func (r *CampaignRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Campaign, int64, error) {
	var campaigns []models.Campaign
	var total int64

	if err := r.db.Model(&models.Campaign{}).
		Where("workspace_id = ?", workspaceID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&campaigns).Error
	if err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

// GetDue retrieves scheduled campaigns whose scheduled_at has passed
func (r *CampaignRepository) GetDue(now time.Time, limit int) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("status = ? AND scheduled_at <= ?", models.CampaignScheduled, now).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

// CountScheduledByOrganizationSince counts campaigns of an organization
// scheduled or sent since the given time. Used for monthly plan quotas.
func (r *CampaignRepository) CountScheduledByOrganizationSince(orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).
		Joins("JOIN workspaces ON workspaces.id = campaigns.workspace_id").
		Where("workspaces.organization_id = ?", orgID).
		Where("campaigns.status <> ?", models.CampaignDraft).
		Where("campaigns.scheduled_at >= ?", since).
		Count(&count).Error
	return count, err
}

// Transition moves a campaign from one status to another atomically.
// Returns false when the campaign was not in the expected status, which
// is how concurrent dispatchers lose the claim race.
func (r *CampaignRepository) Transition(id uuid.UUID, from, to models.CampaignStatus) (bool, error) {
	res := r.db.Model(&models.Campaign{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkStarted records the start time of a sending campaign
func (r *CampaignRepository) MarkStarted(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Campaign{}).
		Where("id = ?", id).
		Update("started_at", at).Error
}

// MarkCompleted records the terminal status and counters of a campaign
func (r *CampaignRepository) MarkCompleted(id uuid.UUID, status models.CampaignStatus, sent, failed int, at time.Time) error {
	return r.db.Model(&models.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"sent_count":   sent,
			"failed_count": failed,
			"completed_at": at,
		}).Error
}

// Update updates a campaign
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// Delete deletes a campaign
func (r *CampaignRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Campaign{}, "id = ?", id).Error
}

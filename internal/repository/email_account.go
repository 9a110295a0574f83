package repository

import (
	"time"

	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailAccountRepository handles database operations for connected
// sending accounts
type EmailAccountRepository struct {
	db *gorm.DB
}

// NewEmailAccountRepository creates a new email account repository
func NewEmailAccountRepository(db *gorm.DB) *EmailAccountRepository {
	return &EmailAccountRepository{db: db}
}

// Create creates a new email account
func (r *EmailAccountRepository) Create(account *models.EmailAccount) error {
	return r.db.Create(account).Error
}

// GetByID retrieves an email account by ID
func (r *EmailAccountRepository) GetByID(id uuid.UUID) (*models.EmailAccount, error) {
	var account models.EmailAccount
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByWorkspaceID retrieves the sending account of a workspace
func (r *EmailAccountRepository) GetByWorkspaceID(workspaceID uuid.UUID) (*models.EmailAccount, error) {
	var account models.EmailAccount
	err := r.db.First(&account, "workspace_id = ?", workspaceID).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateTokens stores refreshed OAuth tokens for an account
func (r *EmailAccountRepository) UpdateTokens(id uuid.UUID, accessToken, refreshToken string, expiry *time.Time) error {
	updates := map[string]interface{}{
		"access_token": accessToken,
		"token_expiry": expiry,
	}
	if refreshToken != "" {
		updates["refresh_token"] = refreshToken
	}
	return r.db.Model(&models.EmailAccount{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete deletes an email account
func (r *EmailAccountRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EmailAccount{}, "id = ?", id).Error
}

package repository

import (
	"errors"
	"time"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"

	"gorm.io/gorm"
)

// OAuthStateRepository handles database operations for one-time OAuth
// state tokens
type OAuthStateRepository struct {
	db *gorm.DB
}

// NewOAuthStateRepository creates a new OAuth state repository
func NewOAuthStateRepository(db *gorm.DB) *OAuthStateRepository {
	return &OAuthStateRepository{db: db}
}

// Create persists a new state token
func (r *OAuthStateRepository) Create(state *models.OAuthState) error {
	return r.db.Create(state).Error
}

// Consume atomically marks a state as used and returns it. The
// conditional update guarantees a state is usable exactly once and never
// after expiry: a second callback with the same state, or a callback
// after the TTL, gets ErrInvalidOAuthState.
func (r *OAuthStateRepository) Consume(state string, now time.Time) (*models.OAuthState, error) {
	res := r.db.Model(&models.OAuthState{}).
		Where("state = ? AND consumed_at IS NULL AND expires_at > ?", state, now).
		Update("consumed_at", now)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrInvalidOAuthState
	}

	var row models.OAuthState
	if err := r.db.First(&row, "state = ?", state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidOAuthState
		}
		return nil, err
	}
	return &row, nil
}

// DeleteExpired removes states past their TTL
func (r *OAuthStateRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at <= ?", now).Delete(&models.OAuthState{})
	return res.RowsAffected, res.Error
}

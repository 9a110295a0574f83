package repository

import (
	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionRepository handles database operations for the Stripe
// subscription mirror
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// GetByOrganizationID retrieves the subscription of an organization
func (r *SubscriptionRepository) GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "organization_id = ?", orgID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByStripeSubscriptionID retrieves a subscription by its Stripe id
func (r *SubscriptionRepository) GetByStripeSubscriptionID(stripeID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "stripe_subscription_id = ?", stripeID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create creates a new subscription mirror row
func (r *SubscriptionRepository) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

// Update updates a subscription mirror row
func (r *SubscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}

package repository

import (
	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName retrieves an organization by name
func (r *OrganizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByStripeCustomerID retrieves the organization owning a Stripe customer
func (r *OrganizationRepository) GetByStripeCustomerID(customerID string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "stripe_customer_id = ?", customerID).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// UpdatePlanTier updates only the plan tier of an organization
func (r *OrganizationRepository) UpdatePlanTier(id uuid.UUID, tier models.PlanTier) error {
	return r.db.Model(&models.Organization{}).
		Where("id = ?", id).
		Update("plan_tier", tier).Error
}

// SetStripeCustomerID records the Stripe customer created for an organization
func (r *OrganizationRepository) SetStripeCustomerID(id uuid.UUID, customerID string) error {
	return r.db.Model(&models.Organization{}).
		Where("id = ?", id).
		Update("stripe_customer_id", customerID).Error
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}

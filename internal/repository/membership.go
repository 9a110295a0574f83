package repository

import (
	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for organization memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(member *models.OrganizationMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(id uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.Preload("User").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByOrgAndUser retrieves the membership of a user in an organization
func (r *MembershipRepository) GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.First(&member, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByOrganizationID retrieves memberships of an organization with pagination
func (r *MembershipRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMember, int64, error) {
	var members []models.OrganizationMember
	var total int64

	if err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// GetOrganizationsByUserID retrieves all memberships of a user with their organizations
func (r *MembershipRepository) GetOrganizationsByUserID(userID uuid.UUID) ([]models.OrganizationMember, error) {
	var members []models.OrganizationMember
	err := r.db.Preload("Organization").
		Where("user_id = ?", userID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountOwners counts owners of an organization
func (r *MembershipRepository) CountOwners(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND role = ?", orgID, models.RoleOwner).
		Count(&count).Error
	return count, err
}

// UpdateRole updates the role of a membership
func (r *MembershipRepository) UpdateRole(id uuid.UUID, role models.MemberRole) error {
	return r.db.Model(&models.OrganizationMember{}).
		Where("id = ?", id).
		Update("role", role).Error
}

// Delete deletes a membership
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OrganizationMember{}, "id = ?", id).Error
}

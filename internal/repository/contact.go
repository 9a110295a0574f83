package repository

import (
	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByEmail retrieves a contact by email within a workspace
func (r *ContactRepository) GetByEmail(workspaceID uuid.UUID, email string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "workspace_id = ? AND email = ?", workspaceID, email).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByWorkspaceID retrieves contacts of a workspace with pagination
func (r *ContactRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	if err := r.db.Model(&models.Contact{}).
		Where("workspace_id = ?", workspaceID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// GetActiveByWorkspaceID retrieves all active (subscribed) contacts of a workspace.
// Used for campaign recipient enrollment; unsubscribed and bounced
// contacts are never enrolled.
func (r *ContactRepository) GetActiveByWorkspaceID(workspaceID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("workspace_id = ? AND status = ?", workspaceID, models.ContactActive).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// Search searches contacts by email or name within a workspace
func (r *ContactRepository) Search(workspaceID uuid.UUID, query string, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	pattern := "%" + query + "%"
	base := r.db.Model(&models.Contact{}).
		Where("workspace_id = ?", workspaceID).
		Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR company ILIKE ?",
			pattern, pattern, pattern, pattern)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("lead_score DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// CountByOrganizationID counts contacts across all workspaces of an organization.
// Plan contact limits apply per organization, not per workspace.
func (r *ContactRepository) CountByOrganizationID(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Joins("JOIN workspaces ON workspaces.id = contacts.workspace_id").
		Where("workspaces.organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}

// Update updates a contact
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete deletes a contact
func (r *ContactRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}

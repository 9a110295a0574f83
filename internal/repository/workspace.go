package repository

import (
	"synthex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceRepository handles database operations for workspaces
type WorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(workspace *models.Workspace) error {
	return r.db.Create(workspace).Error
}

// GetByID retrieves a workspace by ID
func (r *WorkspaceRepository) GetByID(id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.First(&workspace, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// GetBySlug retrieves a workspace by slug within an organization
func (r *WorkspaceRepository) GetBySlug(orgID uuid.UUID, slug string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.First(&workspace, "organization_id = ? AND slug = ?", orgID, slug).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// GetByOrganizationID retrieves workspaces of an organization with pagination
func (r *WorkspaceRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Workspace, int64, error) {
	var workspaces []models.Workspace
	var total int64

	if err := r.db.Model(&models.Workspace{}).
		Where("organization_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).
		Find(&workspaces).Error
	if err != nil {
		return nil, 0, err
	}

	return workspaces, total, nil
}

// CountByOrganizationID counts workspaces of an organization
func (r *WorkspaceRepository) CountByOrganizationID(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Workspace{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}

// Update updates a workspace
func (r *WorkspaceRepository) Update(workspace *models.Workspace) error {
	return r.db.Save(workspace).Error
}

// Delete deletes a workspace
func (r *WorkspaceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Workspace{}, "id = ?", id).Error
}

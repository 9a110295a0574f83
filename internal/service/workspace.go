package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceService handles business logic for workspaces
type WorkspaceService struct {
	repo      repository.WorkspaceRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	audit     *AuditService
	validator *validator.Validate
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	repo repository.WorkspaceRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	audit *AuditService,
	validator *validator.Validate,
) *WorkspaceService {
	return &WorkspaceService{
		repo:      repo,
		orgs:      orgs,
		audit:     audit,
		validator: validator,
	}
}

// CreateWorkspaceRequest represents the request to create a workspace
type CreateWorkspaceRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Slug     string `json:"slug" validate:"required,max=100,lowercase"`
	Timezone string `json:"timezone,omitempty" validate:"max=50"`
}

// UpdateWorkspaceRequest represents the request to update a workspace
type UpdateWorkspaceRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Timezone string          `json:"timezone,omitempty" validate:"max=50"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// WorkspaceResponse represents the response for workspace operations
type WorkspaceResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Timezone       string          `json:"timezone"`
	Settings       json.RawMessage `json:"settings,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// WorkspaceListResponse represents a paginated list of workspaces
type WorkspaceListResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new workspace, enforcing the organization's plan limit
func (s *WorkspaceService) Create(orgID uuid.UUID, actorID uuid.UUID, req *CreateWorkspaceRequest) (*WorkspaceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	limits := LimitsForTier(org.PlanTier)
	count, err := s.repo.CountByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count workspaces: %w", err)
	}
	if !withinLimit(count, limits.MaxWorkspaces) {
		return nil, &apperrors.PlanLimitError{Resource: "workspaces", Limit: limits.MaxWorkspaces}
	}

	existing, err := s.repo.GetBySlug(orgID, req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing workspace: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrWorkspaceExists
	}

	workspace := &models.Workspace{
		OrganizationID: orgID,
		Name:           req.Name,
		Slug:           req.Slug,
		Timezone:       req.Timezone,
	}
	if workspace.Timezone == "" {
		workspace.Timezone = "UTC"
	}

	if err := s.repo.Create(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.audit.Record(orgID, &actorID, "workspace.created", "workspace", &workspace.ID, map[string]string{"slug": req.Slug})

	return s.toResponse(workspace), nil
}

// GetByID retrieves a workspace by ID
func (s *WorkspaceService) GetByID(id uuid.UUID) (*WorkspaceResponse, error) {
	workspace, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return s.toResponse(workspace), nil
}

// GetByOrganization lists the workspaces of an organization with pagination
func (s *WorkspaceService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*WorkspaceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	workspaces, total, err := s.repo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	responses := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		responses[i] = *s.toResponse(&workspaces[i])
	}

	return &WorkspaceListResponse{
		Workspaces: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a workspace's mutable fields. The slug is immutable
// because campaign links embed it.
func (s *WorkspaceService) Update(id uuid.UUID, actorID uuid.UUID, req *UpdateWorkspaceRequest) (*WorkspaceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	workspace, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	workspace.Name = req.Name
	if req.Timezone != "" {
		workspace.Timezone = req.Timezone
	}
	if req.Settings != nil {
		workspace.Settings = req.Settings
	}

	if err := s.repo.Update(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "workspace.updated", "workspace", &id, nil)

	return s.toResponse(workspace), nil
}

// Delete deletes a workspace and its contacts and campaigns
func (s *WorkspaceService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	workspace, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkspaceNotFound
		}
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "workspace.deleted", "workspace", &id, nil)
	return nil
}

func (s *WorkspaceService) toResponse(workspace *models.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:             workspace.ID,
		OrganizationID: workspace.OrganizationID,
		Name:           workspace.Name,
		Slug:           workspace.Slug,
		Timezone:       workspace.Timezone,
		Settings:       workspace.Settings,
		CreatedAt:      workspace.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      workspace.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

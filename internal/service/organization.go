package service

import (
	"errors"
	"fmt"
	"time"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations and their members
type OrganizationService struct {
	repo        repository.OrganizationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	audit       *AuditService
	validator   *validator.Validate
	trialDays   int
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	audit *AuditService,
	validator *validator.Validate,
	trialDays int,
) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		memberships: memberships,
		users:       users,
		audit:       audit,
		validator:   validator,
		trialDays:   trialDays,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" validate:"required,max=200"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=200"`
}

// AddMemberRequest represents the request to add a member to an organization
type AddMemberRequest struct {
	Email string            `json:"email" validate:"required,email"`
	Role  models.MemberRole `json:"role" validate:"required,oneof=owner admin member"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role models.MemberRole `json:"role" validate:"required,oneof=owner admin member"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	PlanTier    models.PlanTier `json:"plan_tier"`
	TrialEndsAt *time.Time      `json:"trial_ends_at,omitempty"`
	Limits      PlanLimits      `json:"limits"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// MemberResponse represents an organization member
type MemberResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Role      models.MemberRole `json:"role"`
	CreatedAt string            `json:"created_at"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new organization on the free tier with a trial window.
// The creating user becomes the first owner.
func (s *OrganizationService) Create(creatorID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	trialEnd := time.Now().AddDate(0, 0, s.trialDays)
	org := &models.Organization{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		PlanTier:    models.PlanFree,
		TrialEndsAt: &trialEnd,
	}

	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         creatorID,
		Role:           models.RoleOwner,
	}
	if err := s.memberships.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	s.audit.Record(org.ID, &creatorID, "organization.created", "organization", &org.ID, nil)

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetForUser lists the organizations the user belongs to
func (s *OrganizationService) GetForUser(userID uuid.UUID) ([]OrganizationResponse, error) {
	memberships, err := s.memberships.GetOrganizationsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]OrganizationResponse, 0, len(memberships))
	for _, m := range memberships {
		if m.Organization == nil {
			continue
		}
		responses = append(responses, *s.toResponse(m.Organization))
	}
	return responses, nil
}

// Update updates an organization's display name
func (s *OrganizationService) Update(id uuid.UUID, actorID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.DisplayName = req.DisplayName
	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	s.audit.Record(id, &actorID, "organization.updated", "organization", &id, nil)

	return s.toResponse(org), nil
}

// Delete deletes an organization and everything under it
func (s *OrganizationService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.audit.Record(id, &actorID, "organization.deleted", "organization", &id, nil)
	return nil
}

// AddMember adds an existing user to the organization by email
func (s *OrganizationService) AddMember(orgID uuid.UUID, actorID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	existing, err := s.memberships.GetByOrgAndUser(orgID, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMembershipExists
	}

	member := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         user.ID,
		Role:           req.Role,
	}
	if err := s.memberships.Create(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.audit.Record(orgID, &actorID, "member.added", "membership", &member.ID, map[string]string{
		"email": user.Email,
		"role":  string(req.Role),
	})

	member.User = user
	return s.toMemberResponse(member), nil
}

// GetMembers lists the members of an organization with pagination
func (s *OrganizationService) GetMembers(orgID uuid.UUID, page, pageSize int) (*MemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	members, total, err := s.memberships.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *s.toMemberResponse(&members[i])
	}

	return &MemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateMemberRole changes a member's role. Demoting the last owner is
// rejected so the organization always keeps at least one owner.
func (s *OrganizationService) UpdateMemberRole(orgID, memberID uuid.UUID, actorID uuid.UUID, req *UpdateMemberRoleRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.getMember(orgID, memberID)
	if err != nil {
		return nil, err
	}

	if member.Role == models.RoleOwner && req.Role != models.RoleOwner {
		owners, err := s.memberships.CountOwners(orgID)
		if err != nil {
			return nil, fmt.Errorf("failed to count owners: %w", err)
		}
		if owners <= 1 {
			return nil, apperrors.ErrLastOwner
		}
	}

	if err := s.memberships.UpdateRole(member.ID, req.Role); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}
	member.Role = req.Role

	s.audit.Record(orgID, &actorID, "member.role_changed", "membership", &member.ID, map[string]string{
		"role": string(req.Role),
	})

	return s.toMemberResponse(member), nil
}

// RemoveMember removes a member from the organization. Removing the last
// owner is rejected.
func (s *OrganizationService) RemoveMember(orgID, memberID uuid.UUID, actorID uuid.UUID) error {
	member, err := s.getMember(orgID, memberID)
	if err != nil {
		return err
	}

	if member.Role == models.RoleOwner {
		owners, err := s.memberships.CountOwners(orgID)
		if err != nil {
			return fmt.Errorf("failed to count owners: %w", err)
		}
		if owners <= 1 {
			return apperrors.ErrLastOwner
		}
	}

	if err := s.memberships.Delete(member.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.audit.Record(orgID, &actorID, "member.removed", "membership", &member.ID, nil)
	return nil
}

func (s *OrganizationService) getMember(orgID, memberID uuid.UUID) (*models.OrganizationMember, error) {
	member, err := s.memberships.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if member.OrganizationID != orgID {
		return nil, apperrors.ErrMembershipNotFound
	}
	return member, nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		DisplayName: org.DisplayName,
		PlanTier:    org.PlanTier,
		TrialEndsAt: org.TrialEndsAt,
		Limits:      LimitsForTier(org.PlanTier),
		CreatedAt:   org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *OrganizationService) toMemberResponse(member *models.OrganizationMember) *MemberResponse {
	resp := &MemberResponse{
		ID:        member.ID,
		UserID:    member.UserID,
		Role:      member.Role,
		CreatedAt: member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if member.User != nil {
		resp.Email = member.User.Email
		resp.Name = member.User.Name
	}
	return resp
}

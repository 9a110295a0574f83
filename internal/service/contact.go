package service

import (
	"encoding/json"
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

// ContactService handles business logic for CRM contacts
type ContactService struct {
	repo       repository.ContactRepositoryInterface
	workspaces repository.WorkspaceRepositoryInterface
	orgs       repository.OrganizationRepositoryInterface
	audit      *AuditService
	validator  *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(
	repo repository.ContactRepositoryInterface,
	workspaces repository.WorkspaceRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	audit *AuditService,
	validator *validator.Validate,
) *ContactService {
	return &ContactService{
		repo:       repo,
		workspaces: workspaces,
		orgs:       orgs,
		audit:      audit,
		validator:  validator,
	}
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	Email     string          `json:"email" validate:"required,email,max=255"`
	FirstName string          `json:"first_name,omitempty" validate:"max=100"`
	LastName  string          `json:"last_name,omitempty" validate:"max=100"`
	Phone     string          `json:"phone,omitempty" validate:"max=50"`
	Company   string          `json:"company,omitempty" validate:"max=200"`
	Tags      json.RawMessage `json:"tags,omitempty"`
}

// UpdateContactRequest represents the request to update a contact
type UpdateContactRequest struct {
	FirstName string          `json:"first_name,omitempty" validate:"max=100"`
	LastName  string          `json:"last_name,omitempty" validate:"max=100"`
	Phone     string          `json:"phone,omitempty" validate:"max=50"`
	Company   string          `json:"company,omitempty" validate:"max=200"`
	Tags      json.RawMessage `json:"tags,omitempty"`
}

// AdjustLeadScoreRequest represents the request to adjust a contact's lead score
type AdjustLeadScoreRequest struct {
	Delta int `json:"delta" validate:"required,min=-100,max=100"`
}

// ImportContactsRequest represents a bulk import request
type ImportContactsRequest struct {
	Contacts []CreateContactRequest `json:"contacts" validate:"required,min=1,max=1000,dive"`
}

// ImportRowResult reports the outcome for one imported row
type ImportRowResult struct {
	Email string `json:"email"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ImportContactsResponse summarizes a bulk import
type ImportContactsResponse struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Results  []ImportRowResult `json:"results"`
}

// ContactResponse represents the response for contact operations
type ContactResponse struct {
	ID             uuid.UUID            `json:"id"`
	WorkspaceID    uuid.UUID            `json:"workspace_id"`
	Email          string               `json:"email"`
	FirstName      string               `json:"first_name,omitempty"`
	LastName       string               `json:"last_name,omitempty"`
	Phone          string               `json:"phone,omitempty"`
	Company        string               `json:"company,omitempty"`
	Status         models.ContactStatus `json:"status"`
	LeadScore      int                  `json:"lead_score"`
	Tags           json.RawMessage      `json:"tags,omitempty"`
	UnsubscribedAt *time.Time           `json:"unsubscribed_at,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new contact, enforcing the organization contact limit
func (s *ContactService) Create(workspaceID uuid.UUID, actorID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	workspace, limits, err := s.workspaceLimits(workspaceID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByOrganizationID(workspace.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	if !withinLimit(count, limits.MaxContacts) {
		return nil, &apperrors.PlanLimitError{Resource: "contacts", Limit: limits.MaxContacts}
	}

	existing, err := s.repo.GetByEmail(workspaceID, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing contact: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrContactExists
	}

	contact := &models.Contact{
		WorkspaceID: workspaceID,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Company:     req.Company,
		Status:      models.ContactActive,
		Tags:        req.Tags,
	}

	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "contact.created", "contact", &contact.ID, nil)

	return s.toResponse(contact), nil
}

// Import bulk-creates contacts. Each row succeeds or fails on its own:
// a duplicate or invalid row is reported and skipped, the rest proceed.
func (s *ContactService) Import(workspaceID uuid.UUID, actorID uuid.UUID, req *ImportContactsRequest) (*ImportContactsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	workspace, limits, err := s.workspaceLimits(workspaceID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByOrganizationID(workspace.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	response := &ImportContactsResponse{Results: make([]ImportRowResult, 0, len(req.Contacts))}
	for i := range req.Contacts {
		row := &req.Contacts[i]
		result := ImportRowResult{Email: row.Email}

		if !withinLimit(count, limits.MaxContacts) {
			result.Error = fmt.Sprintf("plan limit of %d contacts reached", limits.MaxContacts)
			response.Skipped++
			response.Results = append(response.Results, result)
			continue
		}

		existing, err := s.repo.GetByEmail(workspaceID, row.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing contact: %w", err)
		}
		if existing != nil {
			result.Error = "contact already exists"
			response.Skipped++
			response.Results = append(response.Results, result)
			continue
		}

		contact := &models.Contact{
			WorkspaceID: workspaceID,
			Email:       row.Email,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Phone:       row.Phone,
			Company:     row.Company,
			Status:      models.ContactActive,
			Tags:        row.Tags,
		}
		if err := s.repo.Create(contact); err != nil {
			result.Error = "failed to create contact"
			response.Skipped++
			response.Results = append(response.Results, result)
			continue
		}

		count++
		result.OK = true
		response.Imported++
		response.Results = append(response.Results, result)
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "contact.imported", "workspace", &workspaceID, map[string]int{
		"imported": response.Imported,
		"skipped":  response.Skipped,
	})

	return response, nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return s.toResponse(contact), nil
}

// GetByWorkspace lists the contacts of a workspace with pagination
func (s *ContactService) GetByWorkspace(workspaceID uuid.UUID, page, pageSize int) (*ContactListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	contacts, total, err := s.repo.GetByWorkspaceID(workspaceID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return s.toListResponse(contacts, total, page, pageSize), nil
}

// Search finds contacts matching the query across email, name, and
// company, ordered by lead score
func (s *ContactService) Search(workspaceID uuid.UUID, query string, page, pageSize int) (*ContactListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	contacts, total, err := s.repo.Search(workspaceID, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	return s.toListResponse(contacts, total, page, pageSize), nil
}

// Update updates a contact's profile fields. Email is immutable to keep
// the workspace uniqueness stable.
func (s *ContactService) Update(id uuid.UUID, actorID uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Phone = req.Phone
	contact.Company = req.Company
	if req.Tags != nil {
		contact.Tags = req.Tags
	}

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return s.toResponse(contact), nil
}

// Unsubscribe marks the contact as unsubscribed. Unsubscribed contacts
// are never enrolled in campaigns, and unsubscribing is terminal from
// the application's point of view.
func (s *ContactService) Unsubscribe(id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	if contact.Status != models.ContactUnsubscribed {
		now := time.Now()
		contact.Status = models.ContactUnsubscribed
		contact.UnsubscribedAt = &now
		if err := s.repo.Update(contact); err != nil {
			return nil, fmt.Errorf("failed to unsubscribe contact: %w", err)
		}
	}

	return s.toResponse(contact), nil
}

// AdjustLeadScore shifts the contact's lead score by a delta, clamped to
// the 0..100 range
func (s *ContactService) AdjustLeadScore(id uuid.UUID, req *AdjustLeadScoreRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	score := contact.LeadScore + req.Delta
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	contact.LeadScore = score

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update lead score: %w", err)
	}

	return s.toResponse(contact), nil
}

// Delete deletes a contact
func (s *ContactService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	if workspace, werr := s.workspaces.GetByID(contact.WorkspaceID); werr == nil {
		s.audit.Record(workspace.OrganizationID, &actorID, "contact.deleted", "contact", &id, nil)
	}
	return nil
}

func (s *ContactService) workspaceLimits(workspaceID uuid.UUID) (*models.Workspace, PlanLimits, error) {
	workspace, err := s.workspaces.GetByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, PlanLimits{}, apperrors.ErrWorkspaceNotFound
		}
		return nil, PlanLimits{}, fmt.Errorf("failed to get workspace: %w", err)
	}

	org, err := s.orgs.GetByID(workspace.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, PlanLimits{}, apperrors.ErrOrganizationNotFound
		}
		return nil, PlanLimits{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return workspace, LimitsForTier(org.PlanTier), nil
}

func (s *ContactService) toListResponse(contacts []models.Contact, total int64, page, pageSize int) *ContactListResponse {
	responses := make([]ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *s.toResponse(&contacts[i])
	}
	return &ContactListResponse{
		Contacts: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

func (s *ContactService) toResponse(contact *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:             contact.ID,
		WorkspaceID:    contact.WorkspaceID,
		Email:          contact.Email,
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Phone:          contact.Phone,
		Company:        contact.Company,
		Status:         contact.Status,
		LeadScore:      contact.LeadScore,
		Tags:           contact.Tags,
		UnsubscribedAt: contact.UnsubscribedAt,
		CreatedAt:      contact.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      contact.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

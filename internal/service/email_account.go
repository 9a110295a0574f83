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

// EmailAccountService manages the sending account connected to a workspace
type EmailAccountService struct {
	repo       repository.EmailAccountRepositoryInterface
	workspaces repository.WorkspaceRepositoryInterface
	audit      *AuditService
	validator  *validator.Validate
}

// NewEmailAccountService creates a new email account service
func NewEmailAccountService(
	repo repository.EmailAccountRepositoryInterface,
	workspaces repository.WorkspaceRepositoryInterface,
	audit *AuditService,
	validator *validator.Validate,
) *EmailAccountService {
	return &EmailAccountService{
		repo:       repo,
		workspaces: workspaces,
		audit:      audit,
		validator:  validator,
	}
}

// ConnectEmailAccountRequest represents the request to connect a sending account
type ConnectEmailAccountRequest struct {
	Email        string     `json:"email" validate:"required,email,max=255"`
	AccessToken  string     `json:"access_token" validate:"required"`
	RefreshToken string     `json:"refresh_token" validate:"required"`
	TokenExpiry  *time.Time `json:"token_expiry,omitempty"`
}

// EmailAccountResponse represents a connected sending account. Tokens
// are never returned.
type EmailAccountResponse struct {
	ID          uuid.UUID  `json:"id"`
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	Provider    string     `json:"provider"`
	Email       string     `json:"email"`
	TokenExpiry *time.Time `json:"token_expiry,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

// Connect stores the OAuth tokens for a workspace's sending account.
// A workspace has at most one connected account.
func (s *EmailAccountService) Connect(workspaceID uuid.UUID, actorID uuid.UUID, req *ConnectEmailAccountRequest) (*EmailAccountResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	workspace, err := s.workspaces.GetByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	existing, err := s.repo.GetByWorkspaceID(workspaceID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAccountExists
	}

	account := &models.EmailAccount{
		WorkspaceID:  workspaceID,
		Provider:     "gmail",
		Email:        req.Email,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		TokenExpiry:  req.TokenExpiry,
	}

	if err := s.repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to connect email account: %w", err)
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "email_account.connected", "email_account", &account.ID, map[string]string{
		"email": req.Email,
	})

	return s.toResponse(account), nil
}

// GetByWorkspace returns the connected account for a workspace
func (s *EmailAccountService) GetByWorkspace(workspaceID uuid.UUID) (*EmailAccountResponse, error) {
	account, err := s.repo.GetByWorkspaceID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailAccountNotFound
		}
		return nil, fmt.Errorf("failed to get email account: %w", err)
	}

	return s.toResponse(account), nil
}

// Disconnect removes the connected account
func (s *EmailAccountService) Disconnect(id uuid.UUID, actorID uuid.UUID) error {
	account, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmailAccountNotFound
		}
		return fmt.Errorf("failed to get email account: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to disconnect email account: %w", err)
	}

	if workspace, werr := s.workspaces.GetByID(account.WorkspaceID); werr == nil {
		s.audit.Record(workspace.OrganizationID, &actorID, "email_account.disconnected", "email_account", &id, nil)
	}
	return nil
}

func (s *EmailAccountService) toResponse(account *models.EmailAccount) *EmailAccountResponse {
	return &EmailAccountResponse{
		ID:          account.ID,
		WorkspaceID: account.WorkspaceID,
		Provider:    account.Provider,
		Email:       account.Email,
		TokenExpiry: account.TokenExpiry,
		CreatedAt:   account.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

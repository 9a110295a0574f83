package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/metrics"
	"synthex-backend/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CampaignService handles business logic for email campaigns
type CampaignService struct {
	repo       repository.CampaignRepositoryInterface
	recipients repository.RecipientRepositoryInterface
	contacts   repository.ContactRepositoryInterface
	workspaces repository.WorkspaceRepositoryInterface
	orgs       repository.OrganizationRepositoryInterface
	mailer     Mailer
	audit      *AuditService
	validator  *validator.Validate
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	repo repository.CampaignRepositoryInterface,
	recipients repository.RecipientRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	workspaces repository.WorkspaceRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	mailer Mailer,
	audit *AuditService,
	validator *validator.Validate,
) *CampaignService {
	return &CampaignService{
		repo:       repo,
		recipients: recipients,
		contacts:   contacts,
		workspaces: workspaces,
		orgs:       orgs,
		mailer:     mailer,
		audit:      audit,
		validator:  validator,
	}
}

// CreateCampaignRequest represents the request to create a campaign
type CreateCampaignRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Subject      string `json:"subject" validate:"required,max=300"`
	BodyTemplate string `json:"body_template" validate:"required"`
	FromEmail    string `json:"from_email" validate:"required,email,max=255"`
}

// UpdateCampaignRequest represents the request to update a draft campaign
type UpdateCampaignRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Subject      string `json:"subject" validate:"required,max=300"`
	BodyTemplate string `json:"body_template" validate:"required"`
	FromEmail    string `json:"from_email" validate:"required,email,max=255"`
}

// ScheduleCampaignRequest represents the request to schedule a campaign
type ScheduleCampaignRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

// CampaignResponse represents the response for campaign operations
type CampaignResponse struct {
	ID           uuid.UUID             `json:"id"`
	WorkspaceID  uuid.UUID             `json:"workspace_id"`
	Name         string                `json:"name"`
	Subject      string                `json:"subject"`
	BodyTemplate string                `json:"body_template"`
	FromEmail    string                `json:"from_email"`
	Status       models.CampaignStatus `json:"status"`
	ScheduledAt  *time.Time            `json:"scheduled_at,omitempty"`
	StartedAt    *time.Time            `json:"started_at,omitempty"`
	CompletedAt  *time.Time            `json:"completed_at,omitempty"`
	SentCount    int                   `json:"sent_count"`
	FailedCount  int                   `json:"failed_count"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// CampaignListResponse represents a paginated list of campaigns
type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new draft campaign
func (s *CampaignService) Create(workspaceID uuid.UUID, actorID uuid.UUID, req *CreateCampaignRequest) (*CampaignResponse, error) {
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

	campaign := &models.Campaign{
		WorkspaceID:  workspaceID,
		Name:         req.Name,
		Subject:      req.Subject,
		BodyTemplate: req.BodyTemplate,
		FromEmail:    req.FromEmail,
		Status:       models.CampaignDraft,
	}

	if err := s.repo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "campaign.created", "campaign", &campaign.ID, nil)

	return s.toResponse(campaign), nil
}

// GetByID retrieves a campaign by ID
func (s *CampaignService) GetByID(id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.getCampaign(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(campaign), nil
}

// GetByWorkspace lists the campaigns of a workspace with pagination
func (s *CampaignService) GetByWorkspace(workspaceID uuid.UUID, page, pageSize int) (*CampaignListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	campaigns, total, err := s.repo.GetByWorkspaceID(workspaceID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	responses := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		responses[i] = *s.toResponse(&campaigns[i])
	}

	return &CampaignListResponse{
		Campaigns: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a campaign's content. Only drafts can be edited.
func (s *CampaignService) Update(id uuid.UUID, actorID uuid.UUID, req *UpdateCampaignRequest) (*CampaignResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	campaign, err := s.getCampaign(id)
	if err != nil {
		return nil, err
	}

	if campaign.Status != models.CampaignDraft {
		return nil, &apperrors.InvalidTransitionError{Entity: "campaign", From: string(campaign.Status), To: "edited"}
	}

	campaign.Name = req.Name
	campaign.Subject = req.Subject
	campaign.BodyTemplate = req.BodyTemplate
	campaign.FromEmail = req.FromEmail

	if err := s.repo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return s.toResponse(campaign), nil
}

// Schedule moves a draft campaign to scheduled, enforcing the monthly
// campaign limit of the organization's plan
func (s *CampaignService) Schedule(id uuid.UUID, actorID uuid.UUID, req *ScheduleCampaignRequest) (*CampaignResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.ScheduledAt.Before(time.Now()) {
		return nil, &apperrors.ValidationError{Field: "scheduled_at", Message: "must be in the future"}
	}

	campaign, err := s.getCampaign(id)
	if err != nil {
		return nil, err
	}

	workspace, org, err := s.campaignTenant(campaign)
	if err != nil {
		return nil, err
	}

	limits := LimitsForTier(org.PlanTier)
	scheduled, err := s.repo.CountScheduledByOrganizationSince(org.ID, startOfMonth(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to count scheduled campaigns: %w", err)
	}
	if !withinLimit(scheduled, limits.MaxCampaignsPerMonth) {
		return nil, &apperrors.PlanLimitError{Resource: "campaigns per month", Limit: limits.MaxCampaignsPerMonth}
	}

	campaign.ScheduledAt = &req.ScheduledAt
	if err := s.repo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to set schedule: %w", err)
	}

	if err := s.transition(campaign, models.CampaignDraft, models.CampaignScheduled); err != nil {
		return nil, err
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "campaign.scheduled", "campaign", &id, map[string]string{
		"scheduled_at": req.ScheduledAt.Format(time.RFC3339),
	})

	return s.toResponse(campaign), nil
}

// SendNow schedules a draft campaign for immediate dispatch
func (s *CampaignService) SendNow(id uuid.UUID, actorID uuid.UUID) (*CampaignResponse, error) {
	now := time.Now()
	campaign, err := s.getCampaign(id)
	if err != nil {
		return nil, err
	}

	workspace, org, err := s.campaignTenant(campaign)
	if err != nil {
		return nil, err
	}

	limits := LimitsForTier(org.PlanTier)
	scheduled, err := s.repo.CountScheduledByOrganizationSince(org.ID, startOfMonth(now))
	if err != nil {
		return nil, fmt.Errorf("failed to count scheduled campaigns: %w", err)
	}
	if !withinLimit(scheduled, limits.MaxCampaignsPerMonth) {
		return nil, &apperrors.PlanLimitError{Resource: "campaigns per month", Limit: limits.MaxCampaignsPerMonth}
	}

	campaign.ScheduledAt = &now
	if err := s.repo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to set schedule: %w", err)
	}

	if err := s.transition(campaign, models.CampaignDraft, models.CampaignScheduled); err != nil {
		return nil, err
	}

	s.audit.Record(workspace.OrganizationID, &actorID, "campaign.send_now", "campaign", &id, nil)

	return s.toResponse(campaign), nil
}

// Pause stops a campaign before dispatch picks it up or while it is
// sending. A mid-send pause takes effect between recipients; delivered
// emails are not recalled.
func (s *CampaignService) Pause(id uuid.UUID, actorID uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.getCampaign(id)
	if err != nil {
		return nil, err
	}

	if campaign.Status != models.CampaignScheduled && campaign.Status != models.CampaignSending {
		return nil, &apperrors.InvalidTransitionError{Entity: "campaign", From: string(campaign.Status), To: string(models.CampaignPaused)}
	}
	if err := s.transition(campaign, campaign.Status, models.CampaignPaused); err != nil {
		return nil, err
	}

	if workspace, werr := s.workspaces.GetByID(campaign.WorkspaceID); werr == nil {
		s.audit.Record(workspace.OrganizationID, &actorID, "campaign.paused", "campaign", &id, nil)
	}

	return s.toResponse(campaign), nil
}

// Resume moves a paused campaign back to scheduled
func (s *CampaignService) Resume(id uuid.UUID, actorID uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.getCampaign(id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(campaign, models.CampaignPaused, models.CampaignScheduled); err != nil {
		return nil, err
	}

	if workspace, werr := s.workspaces.GetByID(campaign.WorkspaceID); werr == nil {
		s.audit.Record(workspace.OrganizationID, &actorID, "campaign.resumed", "campaign", &id, nil)
	}

	return s.toResponse(campaign), nil
}

// Delete deletes a campaign. Only drafts and failed campaigns can be
// deleted; a sent campaign stays for reporting.
func (s *CampaignService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	campaign, err := s.getCampaign(id)
	if err != nil {
		return err
	}

	if campaign.Status != models.CampaignDraft && campaign.Status != models.CampaignFailed {
		return &apperrors.InvalidTransitionError{Entity: "campaign", From: string(campaign.Status), To: "deleted"}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	if workspace, werr := s.workspaces.GetByID(campaign.WorkspaceID); werr == nil {
		s.audit.Record(workspace.OrganizationID, &actorID, "campaign.deleted", "campaign", &id, nil)
	}
	return nil
}

// DispatchDue finds campaigns whose schedule has arrived and sends them.
// Each campaign is claimed with a conditional status update, so two
// dispatchers never send the same campaign.
func (s *CampaignService) DispatchDue(ctx context.Context) error {
	due, err := s.repo.GetDue(time.Now(), 10)
	if err != nil {
		return fmt.Errorf("failed to list due campaigns: %w", err)
	}

	for i := range due {
		campaign := &due[i]
		claimed, err := s.repo.Transition(campaign.ID, models.CampaignScheduled, models.CampaignSending)
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("failed to claim campaign")
			continue
		}
		if !claimed {
			// Another dispatcher got there first, or the campaign was paused.
			continue
		}

		if err := s.send(ctx, campaign); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("campaign dispatch failed")
		}
	}

	return nil
}

// send enrolls active contacts and delivers the campaign to each of them
func (s *CampaignService) send(ctx context.Context, campaign *models.Campaign) error {
	now := time.Now()
	if err := s.repo.MarkStarted(campaign.ID, now); err != nil {
		return fmt.Errorf("failed to mark campaign started: %w", err)
	}

	active, err := s.contacts.GetActiveByWorkspaceID(campaign.WorkspaceID)
	if err != nil {
		s.finish(campaign.ID, models.CampaignFailed, 0, 0)
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	if len(active) > 0 {
		rows := make([]models.CampaignRecipient, len(active))
		for i, contact := range active {
			rows[i] = models.CampaignRecipient{
				CampaignID: campaign.ID,
				ContactID:  contact.ID,
				Status:     models.RecipientPending,
			}
		}
		// Duplicate enrollments are dropped by the unique index, so a
		// retried dispatch never double-enrolls.
		if err := s.recipients.BulkCreate(rows); err != nil {
			s.finish(campaign.ID, models.CampaignFailed, 0, 0)
			return fmt.Errorf("failed to enroll recipients: %w", err)
		}
	}

	pending, err := s.recipients.GetPendingByCampaignID(campaign.ID)
	if err != nil {
		s.finish(campaign.ID, models.CampaignFailed, 0, 0)
		return fmt.Errorf("failed to load pending recipients: %w", err)
	}

	contactsByID := make(map[uuid.UUID]*models.Contact, len(active))
	for i := range active {
		contactsByID[active[i].ID] = &active[i]
	}

	var sent, failed int
	for i := range pending {
		if s.isPaused(campaign.ID) {
			// Remaining recipients stay pending; a resume re-enters the
			// dispatch loop and picks them up.
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"sent":        sent,
				"failed":      failed,
				"remaining":   len(pending) - i,
			}).Info("campaign paused during send")
			return nil
		}

		recipient := &pending[i]
		contact := recipient.Contact
		if contact == nil {
			contact = contactsByID[recipient.ContactID]
		}
		if contact == nil || contact.Status != models.ContactActive {
			continue
		}

		messageID, err := s.deliver(ctx, campaign, contact)
		if err != nil {
			failed++
			metrics.CampaignSends.WithLabelValues("failed").Inc()
			if markErr := s.recipients.MarkFailed(recipient.ID, truncate(err.Error(), 500)); markErr != nil {
				logrus.WithError(markErr).WithField("recipient_id", recipient.ID).Error("failed to record send failure")
			}
			continue
		}

		sent++
		metrics.CampaignSends.WithLabelValues("sent").Inc()
		if markErr := s.recipients.MarkSent(recipient.ID, messageID, time.Now()); markErr != nil {
			logrus.WithError(markErr).WithField("recipient_id", recipient.ID).Error("failed to record send")
		}
	}

	// Totals come from the recipients table so a campaign resumed after a
	// mid-send pause keeps the counts from its earlier run.
	if n, err := s.recipients.CountByStatus(campaign.ID, models.RecipientSent); err == nil {
		sent = int(n)
	}
	if n, err := s.recipients.CountByStatus(campaign.ID, models.RecipientFailed); err == nil {
		failed = int(n)
	}

	final := models.CampaignSent
	if sent == 0 && failed > 0 {
		final = models.CampaignFailed
	}
	s.finish(campaign.ID, final, sent, failed)

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"sent":        sent,
		"failed":      failed,
		"status":      final,
	}).Info("campaign dispatch completed")

	return nil
}

// deliver renders and sends one email, retrying transient failures with
// exponential backoff
func (s *CampaignService) deliver(ctx context.Context, campaign *models.Campaign, contact *models.Contact) (string, error) {
	body := renderTemplate(campaign.BodyTemplate, contact)

	var messageID string
	operation := func() error {
		id, err := s.mailer.Send(ctx, campaign.WorkspaceID, campaign.FromEmail, contact.Email, campaign.Subject, body)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailAccountNotFound) {
				return backoff.Permanent(err)
			}
			return err
		}
		messageID = id
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return messageID, nil
}

// isPaused reports whether the campaign was paused while its send loop runs
func (s *CampaignService) isPaused(id uuid.UUID) bool {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return false
	}
	return current.Status == models.CampaignPaused
}

func (s *CampaignService) finish(id uuid.UUID, status models.CampaignStatus, sent, failed int) {
	if err := s.repo.MarkCompleted(id, status, sent, failed, time.Now()); err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("failed to mark campaign completed")
	}
}

// transition applies a conditional status change and refreshes the model
func (s *CampaignService) transition(campaign *models.Campaign, from, to models.CampaignStatus) error {
	if campaign.Status != from {
		return &apperrors.InvalidTransitionError{Entity: "campaign", From: string(campaign.Status), To: string(to)}
	}

	ok, err := s.repo.Transition(campaign.ID, from, to)
	if err != nil {
		return fmt.Errorf("failed to transition campaign: %w", err)
	}
	if !ok {
		return &apperrors.InvalidTransitionError{Entity: "campaign", From: string(from), To: string(to)}
	}

	campaign.Status = to
	return nil
}

func (s *CampaignService) getCampaign(id uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func (s *CampaignService) campaignTenant(campaign *models.Campaign) (*models.Workspace, *models.Organization, error) {
	workspace, err := s.workspaces.GetByID(campaign.WorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	org, err := s.orgs.GetByID(workspace.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrOrganizationNotFound
		}
		return nil, nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return workspace, org, nil
}

// renderTemplate substitutes contact merge fields into the body template.
// Supported placeholders: {{first_name}}, {{last_name}}, {{email}},
// {{company}}.
func renderTemplate(template string, contact *models.Contact) string {
	replacer := strings.NewReplacer(
		"{{first_name}}", contact.FirstName,
		"{{last_name}}", contact.LastName,
		"{{email}}", contact.Email,
		"{{company}}", contact.Company,
	)
	return replacer.Replace(template)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func (s *CampaignService) toResponse(campaign *models.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:           campaign.ID,
		WorkspaceID:  campaign.WorkspaceID,
		Name:         campaign.Name,
		Subject:      campaign.Subject,
		BodyTemplate: campaign.BodyTemplate,
		FromEmail:    campaign.FromEmail,
		Status:       campaign.Status,
		ScheduledAt:  campaign.ScheduledAt,
		StartedAt:    campaign.StartedAt,
		CompletedAt:  campaign.CompletedAt,
		SentCount:    campaign.SentCount,
		FailedCount:  campaign.FailedCount,
		CreatedAt:    campaign.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    campaign.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

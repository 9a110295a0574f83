package handlers

import (
	"net/http"

	"synthex-backend/internal/api/validation"
	"synthex-backend/internal/auth"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles HTTP requests for email campaigns
type CampaignHandler struct {
	service    service.CampaignServiceInterface
	workspaces service.WorkspaceServiceInterface
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService service.CampaignServiceInterface, workspaceService service.WorkspaceServiceInterface) *CampaignHandler {
	return &CampaignHandler{service: campaignService, workspaces: workspaceService}
}

// CreateCampaign handles POST /api/v1/organizations/:id/workspaces/:workspace_id/campaigns
// @Summary Create a campaign
// @Description Create a draft campaign in the workspace
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign body service.CreateCampaignRequest true "Campaign data"
// @Success 201 {object} service.CampaignResponse "Created campaign"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.CreateCampaignRequest](c)
	if !ok {
		return
	}

	campaign, err := h.service.Create(workspaceID, userID, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// ListCampaigns handles GET /api/v1/organizations/:id/workspaces/:workspace_id/campaigns
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CampaignListResponse "Campaigns"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}

	page, ok := validation.Query[validation.Pagination](c)
	if !ok {
		return
	}

	campaigns, err := h.service.GetByWorkspace(workspaceID, page.PageOrDefault(), page.SizeOrDefault())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list campaigns", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// GetCampaign handles GET .../campaigns/:campaign_id
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign_id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignResponse "Campaign"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns/{campaign_id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	campaignID, ok := pathUUID(c, "campaign_id")
	if !ok {
		return
	}

	campaign, ok := h.campaignInWorkspace(c, workspaceID, campaignID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaign handles PUT .../campaigns/:campaign_id
// @Summary Update campaign
// @Description Update a campaign's content; only drafts can be edited
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign_id path string true "Campaign ID (UUID)"
// @Param campaign body service.UpdateCampaignRequest true "Updated campaign data"
// @Success 200 {object} service.CampaignResponse "Updated campaign"
// @Failure 409 {object} map[string]interface{} "Campaign is not editable in its current state"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns/{campaign_id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	campaignID, ok := pathUUID(c, "campaign_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.campaignInWorkspace(c, workspaceID, campaignID); !ok {
		return
	}

	req, ok := validation.Body[service.UpdateCampaignRequest](c)
	if !ok {
		return
	}

	campaign, err := h.service.Update(campaignID, userID, req)
	if err != nil {
		h.respondCampaignError(c, err, "Failed to update campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// ScheduleCampaign handles POST .../campaigns/:campaign_id/schedule
// @Summary Schedule a campaign
// @Description Move a draft campaign to scheduled, subject to the plan's monthly campaign limit
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign_id path string true "Campaign ID (UUID)"
// @Param schedule body service.ScheduleCampaignRequest true "Schedule time"
// @Success 200 {object} service.CampaignResponse "Scheduled campaign"
// @Failure 402 {object} map[string]interface{} "Plan limit reached"
// @Failure 409 {object} map[string]interface{} "Invalid state transition"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns/{campaign_id}/schedule [post]
func (h *CampaignHandler) ScheduleCampaign(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	campaignID, ok := pathUUID(c, "campaign_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.campaignInWorkspace(c, workspaceID, campaignID); !ok {
		return
	}

	req, ok := validation.Body[service.ScheduleCampaignRequest](c)
	if !ok {
		return
	}

	campaign, err := h.service.Schedule(campaignID, userID, req)
	if err != nil {
		h.respondCampaignError(c, err, "Failed to schedule campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// SendCampaignNow handles POST .../campaigns/:campaign_id/send-now
// @Summary Send a campaign immediately
// @Description Schedule a draft campaign for immediate dispatch
// @Tags campaigns
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign_id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignResponse "Campaign queued for sending"
// @Failure 402 {object} map[string]interface{} "Plan limit reached"
// @Failure 409 {object} map[string]interface{} "Invalid state transition"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns/{campaign_id}/send-now [post]
func (h *CampaignHandler) SendCampaignNow(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	campaignID, ok := pathUUID(c, "campaign_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.campaignInWorkspace(c, workspaceID, campaignID); !ok {
		return
	}

	campaign, err := h.service.SendNow(campaignID, userID)
	if err != nil {
		h.respondCampaignError(c, err, "Failed to queue campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// PauseCampaign handles POST .../campaigns/:campaign_id/pause
// @Summary Pause a scheduled or sending campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign_id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignResponse "Paused campaign"
// @Failure 409 {object} map[string]interface{} "Invalid state transition"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns/{campaign_id}/pause [post]
func (h *CampaignHandler) PauseCampaign(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	campaignID, ok := pathUUID(c, "campaign_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.campaignInWorkspace(c, workspaceID, campaignID); !ok {
		return
	}

	campaign, err := h.service.Pause(campaignID, userID)
	if err != nil {
		h.respondCampaignError(c, err, "Failed to pause campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// ResumeCampaign handles POST .../campaigns/:campaign_id/resume
// @Summary Resume a paused campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign_id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignResponse "Rescheduled campaign"
// @Failure 409 {object} map[string]interface{} "Invalid state transition"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns/{campaign_id}/resume [post]
func (h *CampaignHandler) ResumeCampaign(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	campaignID, ok := pathUUID(c, "campaign_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.campaignInWorkspace(c, workspaceID, campaignID); !ok {
		return
	}

	campaign, err := h.service.Resume(campaignID, userID)
	if err != nil {
		h.respondCampaignError(c, err, "Failed to resume campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE .../campaigns/:campaign_id
// @Summary Delete campaign
// @Description Delete a draft or failed campaign; sent campaigns stay for reporting
// @Tags campaigns
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param campaign_id path string true "Campaign ID (UUID)"
// @Success 200 {object} map[string]string "Campaign deleted"
// @Failure 409 {object} map[string]interface{} "Campaign is not deletable in its current state"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/campaigns/{campaign_id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	campaignID, ok := pathUUID(c, "campaign_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.campaignInWorkspace(c, workspaceID, campaignID); !ok {
		return
	}

	if err := h.service.Delete(campaignID, userID); err != nil {
		h.respondCampaignError(c, err, "Failed to delete campaign")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

// respondCampaignError maps campaign service errors to HTTP responses
func (h *CampaignHandler) respondCampaignError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsPlanLimit(err):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// campaignInWorkspace loads a campaign and checks it belongs to the
// workspace on the route
func (h *CampaignHandler) campaignInWorkspace(c *gin.Context, workspaceID, campaignID uuid.UUID) (*service.CampaignResponse, bool) {
	campaign, err := h.service.GetByID(campaignID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaign", "details": err.Error()})
		}
		return nil, false
	}
	if campaign.WorkspaceID != workspaceID {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrCampaignNotFound.Error()})
		return nil, false
	}
	return campaign, true
}

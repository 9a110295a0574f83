package handlers

import (
	"net/http"

	"synthex-backend/internal/api/validation"
	"synthex-backend/internal/auth"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmailAccountHandler handles HTTP requests for connected sending accounts
type EmailAccountHandler struct {
	service    service.EmailAccountServiceInterface
	workspaces service.WorkspaceServiceInterface
}

// NewEmailAccountHandler creates a new email account handler
func NewEmailAccountHandler(accountService service.EmailAccountServiceInterface, workspaceService service.WorkspaceServiceInterface) *EmailAccountHandler {
	return &EmailAccountHandler{service: accountService, workspaces: workspaceService}
}

// ConnectEmailAccount handles POST /api/v1/organizations/:id/workspaces/:workspace_id/email-account
// @Summary Connect a sending account
// @Description Attach a Gmail sending account to the workspace; each workspace gets one
// @Tags email-accounts
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param account body service.ConnectEmailAccountRequest true "Account credentials"
// @Success 201 {object} service.EmailAccountResponse "Connected account"
// @Failure 409 {object} map[string]interface{} "Workspace already has a sending account"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/email-account [post]
func (h *EmailAccountHandler) ConnectEmailAccount(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.ConnectEmailAccountRequest](c)
	if !ok {
		return
	}

	account, err := h.service.Connect(workspaceID, userID, req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect email account", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, account)
}

// GetEmailAccount handles GET /api/v1/organizations/:id/workspaces/:workspace_id/email-account
// @Summary Get the workspace's sending account
// @Tags email-accounts
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Success 200 {object} service.EmailAccountResponse "Connected account"
// @Failure 404 {object} map[string]interface{} "No account connected"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/email-account [get]
func (h *EmailAccountHandler) GetEmailAccount(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}

	account, err := h.service.GetByWorkspace(workspaceID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get email account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

// DisconnectEmailAccount handles DELETE /api/v1/organizations/:id/workspaces/:workspace_id/email-account/:account_id
// @Summary Disconnect the sending account
// @Tags email-accounts
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param account_id path string true "Email account ID (UUID)"
// @Success 200 {object} map[string]string "Account disconnected"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/email-account/{account_id} [delete]
func (h *EmailAccountHandler) DisconnectEmailAccount(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	accountID, ok := pathUUID(c, "account_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	account, err := h.service.GetByWorkspace(workspaceID)
	if err != nil || account.ID != accountID {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrEmailAccountNotFound.Error()})
		return
	}

	if err := h.service.Disconnect(accountID, userID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect email account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email account disconnected successfully"})
}

package handlers

import (
	"errors"
	"net/http"

	"synthex-backend/internal/api/validation"
	"synthex-backend/internal/auth"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkspaceHandler handles HTTP requests for workspaces
type WorkspaceHandler struct {
	service service.WorkspaceServiceInterface
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(service service.WorkspaceServiceInterface) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// workspaceInOrg loads a workspace and checks it belongs to the
// organization on the route; cross-tenant ids read as not found
func (h *WorkspaceHandler) workspaceInOrg(c *gin.Context, orgID, workspaceID uuid.UUID) (*service.WorkspaceResponse, bool) {
	workspace, err := h.service.GetByID(workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get workspace", "details": err.Error()})
		}
		return nil, false
	}
	if workspace.OrganizationID != orgID {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrWorkspaceNotFound.Error()})
		return nil, false
	}
	return workspace, true
}

// CreateWorkspace handles POST /api/v1/organizations/:id/workspaces
// @Summary Create a workspace
// @Description Create a workspace in the organization, subject to the plan's workspace limit
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace body service.CreateWorkspaceRequest true "Workspace data"
// @Success 201 {object} service.WorkspaceResponse "Created workspace"
// @Failure 402 {object} map[string]interface{} "Plan limit reached"
// @Failure 409 {object} map[string]interface{} "Slug already taken"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.CreateWorkspaceRequest](c)
	if !ok {
		return
	}

	workspace, err := h.service.Create(orgID, userID, req)
	if err != nil {
		switch {
		case apperrors.IsPlanLimit(err):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workspace", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

// ListWorkspaces handles GET /api/v1/organizations/:id/workspaces
// @Summary List workspaces
// @Tags workspaces
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.WorkspaceListResponse "Workspaces"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces [get]
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	page, ok := validation.Query[validation.Pagination](c)
	if !ok {
		return
	}

	workspaces, err := h.service.GetByOrganization(orgID, page.PageOrDefault(), page.SizeOrDefault())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workspaces", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

// GetWorkspace handles GET /api/v1/organizations/:id/workspaces/:workspace_id
// @Summary Get workspace by ID
// @Tags workspaces
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Success 200 {object} service.WorkspaceResponse "Workspace"
// @Failure 404 {object} map[string]interface{} "Workspace not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	workspaceID, ok := pathUUID(c, "workspace_id")
	if !ok {
		return
	}

	workspace, ok := h.workspaceInOrg(c, orgID, workspaceID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, workspace)
}

// UpdateWorkspace handles PUT /api/v1/organizations/:id/workspaces/:workspace_id
// @Summary Update workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param workspace body service.UpdateWorkspaceRequest true "Updated workspace data"
// @Success 200 {object} service.WorkspaceResponse "Updated workspace"
// @Failure 404 {object} map[string]interface{} "Workspace not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id} [put]
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	workspaceID, ok := pathUUID(c, "workspace_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.workspaceInOrg(c, orgID, workspaceID); !ok {
		return
	}

	req, ok := validation.Body[service.UpdateWorkspaceRequest](c)
	if !ok {
		return
	}

	workspace, err := h.service.Update(workspaceID, userID, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workspace", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workspace)
}

// DeleteWorkspace handles DELETE /api/v1/organizations/:id/workspaces/:workspace_id
// @Summary Delete workspace
// @Description Delete the workspace and its contacts and campaigns
// @Tags workspaces
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Success 200 {object} map[string]string "Workspace deleted"
// @Failure 404 {object} map[string]interface{} "Workspace not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	workspaceID, ok := pathUUID(c, "workspace_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.workspaceInOrg(c, orgID, workspaceID); !ok {
		return
	}

	if err := h.service.Delete(workspaceID, userID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workspace", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workspace deleted successfully"})
}

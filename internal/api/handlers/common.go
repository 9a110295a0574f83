package handlers

import (
	"errors"
	"net/http"

	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathUUID parses a path parameter as a UUID, responding 400 on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// requireWorkspaceInOrg resolves the :id and :workspace_id route params
// and verifies the workspace belongs to the organization. A workspace
// from another tenant reads as not found.
func requireWorkspaceInOrg(c *gin.Context, workspaces service.WorkspaceServiceInterface) (orgID, workspaceID uuid.UUID, ok bool) {
	orgID, ok = pathUUID(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	workspaceID, ok = pathUUID(c, "workspace_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	workspace, err := workspaces.GetByID(workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get workspace", "details": err.Error()})
		}
		return uuid.Nil, uuid.Nil, false
	}
	if workspace.OrganizationID != orgID {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrWorkspaceNotFound.Error()})
		return uuid.Nil, uuid.Nil, false
	}

	return orgID, workspaceID, true
}

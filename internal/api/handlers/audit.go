package handlers

import (
	"net/http"

	"synthex-backend/internal/api/validation"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the organization audit trail
type AuditHandler struct {
	service service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: auditService}
}

// ListAuditLogs handles GET /api/v1/organizations/:id/audit-logs
// @Summary List audit log entries
// @Description Newest-first log of administrative actions in the organization
// @Tags audit
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AuditLogListResponse "Audit log entries"
// @Security BearerAuth
// @Router /organizations/{id}/audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	page, ok := validation.Query[validation.Pagination](c)
	if !ok {
		return
	}

	logs, err := h.service.List(orgID, page.PageOrDefault(), page.SizeOrDefault())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

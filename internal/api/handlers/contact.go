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

// ContactHandler handles HTTP requests for CRM contacts
type ContactHandler struct {
	service    service.ContactServiceInterface
	workspaces service.WorkspaceServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface, workspaceService service.WorkspaceServiceInterface) *ContactHandler {
	return &ContactHandler{service: contactService, workspaces: workspaceService}
}

// searchQuery carries the optional free-text filter for contact listing
type searchQuery struct {
	validation.Pagination
	Q string `form:"q" binding:"omitempty,max=200"`
}

// CreateContact handles POST /api/v1/organizations/:id/workspaces/:workspace_id/contacts
// @Summary Create a contact
// @Description Create a contact in the workspace, subject to the plan's contact limit
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param contact body service.CreateContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse "Created contact"
// @Failure 402 {object} map[string]interface{} "Plan limit reached"
// @Failure 409 {object} map[string]interface{} "Contact already exists"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.CreateContactRequest](c)
	if !ok {
		return
	}

	contact, err := h.service.Create(workspaceID, userID, req)
	if err != nil {
		switch {
		case apperrors.IsPlanLimit(err):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ImportContacts handles POST /api/v1/organizations/:id/workspaces/:workspace_id/contacts/import
// @Summary Bulk import contacts
// @Description Import up to 1000 contacts; each row succeeds or is skipped independently
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param contacts body service.ImportContactsRequest true "Contacts to import"
// @Success 200 {object} service.ImportContactsResponse "Per-row import results"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts/import [post]
func (h *ContactHandler) ImportContacts(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.ImportContactsRequest](c)
	if !ok {
		return
	}

	result, err := h.service.Import(workspaceID, userID, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListContacts handles GET /api/v1/organizations/:id/workspaces/:workspace_id/contacts
// @Summary List or search contacts
// @Description List workspace contacts; with ?q= the result is filtered by email, name, or company and ordered by lead score
// @Tags contacts
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param q query string false "Search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ContactListResponse "Contacts"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}

	query, ok := validation.Query[searchQuery](c)
	if !ok {
		return
	}

	var (
		contacts *service.ContactListResponse
		err      error
	)
	if query.Q != "" {
		contacts, err = h.service.Search(workspaceID, query.Q, query.PageOrDefault(), query.SizeOrDefault())
	} else {
		contacts, err = h.service.GetByWorkspace(workspaceID, query.PageOrDefault(), query.SizeOrDefault())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact handles GET /api/v1/organizations/:id/workspaces/:workspace_id/contacts/:contact_id
// @Summary Get contact by ID
// @Tags contacts
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param contact_id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse "Contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts/{contact_id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	contactID, ok := pathUUID(c, "contact_id")
	if !ok {
		return
	}

	contact, ok := h.contactInWorkspace(c, workspaceID, contactID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact handles PUT /api/v1/organizations/:id/workspaces/:workspace_id/contacts/:contact_id
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param contact_id path string true "Contact ID (UUID)"
// @Param contact body service.UpdateContactRequest true "Updated contact data"
// @Success 200 {object} service.ContactResponse "Updated contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts/{contact_id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	contactID, ok := pathUUID(c, "contact_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.contactInWorkspace(c, workspaceID, contactID); !ok {
		return
	}

	req, ok := validation.Body[service.UpdateContactRequest](c)
	if !ok {
		return
	}

	contact, err := h.service.Update(contactID, userID, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UnsubscribeContact handles POST .../contacts/:contact_id/unsubscribe
// @Summary Unsubscribe a contact
// @Description Mark the contact as unsubscribed; it will never be enrolled in campaigns again
// @Tags contacts
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param contact_id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse "Unsubscribed contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts/{contact_id}/unsubscribe [post]
func (h *ContactHandler) UnsubscribeContact(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	contactID, ok := pathUUID(c, "contact_id")
	if !ok {
		return
	}

	if _, ok := h.contactInWorkspace(c, workspaceID, contactID); !ok {
		return
	}

	contact, err := h.service.Unsubscribe(contactID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// AdjustLeadScore handles POST .../contacts/:contact_id/lead-score
// @Summary Adjust a contact's lead score
// @Description Shift the lead score by a delta; the score is clamped to 0..100
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param contact_id path string true "Contact ID (UUID)"
// @Param delta body service.AdjustLeadScoreRequest true "Score delta"
// @Success 200 {object} service.ContactResponse "Contact with updated score"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts/{contact_id}/lead-score [post]
func (h *ContactHandler) AdjustLeadScore(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	contactID, ok := pathUUID(c, "contact_id")
	if !ok {
		return
	}

	if _, ok := h.contactInWorkspace(c, workspaceID, contactID); !ok {
		return
	}

	req, ok := validation.Body[service.AdjustLeadScoreRequest](c)
	if !ok {
		return
	}

	contact, err := h.service.AdjustLeadScore(contactID, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust lead score", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE .../contacts/:contact_id
// @Summary Delete contact
// @Tags contacts
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param workspace_id path string true "Workspace ID (UUID)"
// @Param contact_id path string true "Contact ID (UUID)"
// @Success 200 {object} map[string]string "Contact deleted"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /organizations/{id}/workspaces/{workspace_id}/contacts/{contact_id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	_, workspaceID, ok := requireWorkspaceInOrg(c, h.workspaces)
	if !ok {
		return
	}
	contactID, ok := pathUUID(c, "contact_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if _, ok := h.contactInWorkspace(c, workspaceID, contactID); !ok {
		return
	}

	if err := h.service.Delete(contactID, userID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// contactInWorkspace loads a contact and checks it belongs to the
// workspace on the route
func (h *ContactHandler) contactInWorkspace(c *gin.Context, workspaceID, contactID uuid.UUID) (*service.ContactResponse, bool) {
	contact, err := h.service.GetByID(contactID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contact", "details": err.Error()})
		}
		return nil, false
	}
	if contact.WorkspaceID != workspaceID {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrContactNotFound.Error()})
		return nil, false
	}
	return contact, true
}

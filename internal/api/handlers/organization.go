package handlers

import (
	"errors"
	"net/http"

	"synthex-backend/internal/api/validation"
	"synthex-backend/internal/auth"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations and members
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization on the free tier; the caller becomes its owner
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} validation.ErrorResponse "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	req, ok := validation.Body[service.CreateOrganizationRequest](c)
	if !ok {
		return
	}

	org, err := h.service.Create(userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListMyOrganizations handles GET /api/v1/organizations
// @Summary List the caller's organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} service.OrganizationResponse "Organizations the caller belongs to"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListMyOrganizations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgs, err := h.service.GetForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list organizations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OrganizationResponse "Updated organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.UpdateOrganizationRequest](c)
	if !ok {
		return
	}

	org, err := h.service.Update(id, userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete organization
// @Description Delete the organization and all its workspaces, contacts, and campaigns
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} map[string]string "Organization deleted"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if err := h.service.Delete(id, userID); err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted successfully"})
}

// AddMember handles POST /api/v1/organizations/:id/members
// @Summary Add a member
// @Description Add an existing user to the organization by email
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Added member"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "Already a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [post]
func (h *OrganizationHandler) AddMember(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.AddMemberRequest](c)
	if !ok {
		return
	}

	member, err := h.service.AddMember(id, userID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMembers handles GET /api/v1/organizations/:id/members
// @Summary List members
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MemberListResponse "Members"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *OrganizationHandler) GetMembers(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	page, ok := validation.Query[validation.Pagination](c)
	if !ok {
		return
	}

	members, err := h.service.GetMembers(id, page.PageOrDefault(), page.SizeOrDefault())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMemberRole handles PUT /api/v1/organizations/:id/members/:member_id
// @Summary Change a member's role
// @Description Change a member's role; demoting the last owner is rejected
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param member_id path string true "Membership ID (UUID)"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse "Updated member"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 409 {object} map[string]interface{} "Would leave the organization without an owner"
// @Security BearerAuth
// @Router /organizations/{id}/members/{member_id} [put]
func (h *OrganizationHandler) UpdateMemberRole(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathUUID(c, "member_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.UpdateMemberRoleRequest](c)
	if !ok {
		return
	}

	member, err := h.service.UpdateMemberRole(id, memberID, userID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrLastOwner):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member role", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/organizations/:id/members/:member_id
// @Summary Remove a member
// @Description Remove a member from the organization; removing the last owner is rejected
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param member_id path string true "Membership ID (UUID)"
// @Success 200 {object} map[string]string "Member removed"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 409 {object} map[string]interface{} "Would leave the organization without an owner"
// @Security BearerAuth
// @Router /organizations/{id}/members/{member_id} [delete]
func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathUUID(c, "member_id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if err := h.service.RemoveMember(id, memberID, userID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrLastOwner):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

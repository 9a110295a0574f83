package handlers

import (
	"net/http"

	"synthex-backend/internal/api/validation"
	"synthex-backend/internal/auth"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles HTTP requests for subscription billing
type BillingHandler struct {
	service service.BillingServiceInterface
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService service.BillingServiceInterface) *BillingHandler {
	return &BillingHandler{service: billingService}
}

// CreateCheckoutSession handles POST /api/v1/organizations/:id/billing/checkout
// @Summary Start a subscription checkout
// @Description Create a Stripe Checkout session for upgrading the organization's plan
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param checkout body service.CreateCheckoutRequest true "Target plan tier"
// @Success 200 {object} service.CheckoutSessionResponse "Checkout session URL"
// @Failure 400 {object} map[string]interface{} "Unknown plan tier"
// @Security BearerAuth
// @Router /organizations/{id}/billing/checkout [post]
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.CreateCheckoutRequest](c)
	if !ok {
		return
	}

	session, err := h.service.CreateCheckoutSession(orgID, userID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// CreatePortalSession handles POST /api/v1/organizations/:id/billing/portal
// @Summary Open the billing portal
// @Description Create a Stripe customer portal session for managing the subscription
// @Tags billing
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.CheckoutSessionResponse "Portal session URL"
// @Failure 404 {object} map[string]interface{} "Organization has no billing customer"
// @Security BearerAuth
// @Router /organizations/{id}/billing/portal [post]
func (h *BillingHandler) CreatePortalSession(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	session, err := h.service.CreatePortalSession(orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create portal session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetBillingOverview handles GET /api/v1/organizations/:id/billing
// @Summary Get billing overview
// @Description Current plan, limits, usage, and subscription state for the organization
// @Tags billing
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.BillingOverviewResponse "Billing overview"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/billing [get]
func (h *BillingHandler) GetBillingOverview(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	overview, err := h.service.GetOverview(orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get billing overview", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

package handlers

import (
	"io"
	"net/http"

	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76/webhook"
)

// WebhookHandler receives provider webhook deliveries
type WebhookHandler struct {
	service       service.WebhookServiceInterface
	signingSecret string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookService service.WebhookServiceInterface, signingSecret string) *WebhookHandler {
	return &WebhookHandler{service: webhookService, signingSecret: signingSecret}
}

// HandleStripe handles POST /webhooks/stripe
// @Summary Receive a Stripe webhook event
// @Description Verify the event signature and process it exactly once; redeliveries are acknowledged without reprocessing
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} service.WebhookResult "Event acknowledged"
// @Failure 400 {object} map[string]interface{} "Invalid payload or signature"
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.signingSecret)
	if err != nil {
		logrus.WithError(err).Warn("Rejected stripe webhook with invalid signature")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
		return
	}

	result, err := h.service.ProcessStripeEvent(&event)
	if err != nil {
		// Only record-keeping failures reach here; handler failures are
		// marked on the event row and acknowledged. 500 makes Stripe retry.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook event", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"synthex-backend/internal/api/validation"
	"synthex-backend/internal/auth"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AIGenHandler handles HTTP requests for AI content generation
type AIGenHandler struct {
	service service.AIGenServiceInterface
}

// NewAIGenHandler creates a new AI generation handler
func NewAIGenHandler(aiService service.AIGenServiceInterface) *AIGenHandler {
	return &AIGenHandler{service: aiService}
}

// GenerateContent handles POST /api/v1/organizations/:id/ai/generate
// @Summary Generate marketing copy
// @Description Generate a subject line, email body, or social post with the configured AI provider; identical requests are served from cache without spending credits
// @Tags ai
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param request body service.GenerateContentRequest true "Generation request"
// @Success 200 {object} service.GenerateContentResponse "Generated content"
// @Failure 402 {object} map[string]interface{} "AI credits exhausted for this period"
// @Security BearerAuth
// @Router /organizations/{id}/ai/generate [post]
func (h *AIGenHandler) GenerateContent(c *gin.Context) {
	orgID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	req, ok := validation.Body[service.GenerateContentRequest](c)
	if !ok {
		return
	}

	result, err := h.service.Generate(c.Request.Context(), orgID, userID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsPlanLimit(err):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate content", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

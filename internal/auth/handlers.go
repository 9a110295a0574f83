package auth

import (
	"errors"
	"net/http"

	apperrors "synthex-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Start handles GET /api/auth/google/start
// @Summary Start Google OAuth sign-in
// @Description Create a single-use state token and redirect to the Google consent screen
// @Tags authentication
// @Param redirect_uri query string false "Frontend URI to return to after sign-in"
// @Success 302 {string} string "Redirect to Google authorization URL"
// @Failure 500 {object} map[string]interface{} "Failed to begin login"
// @Router /auth/google/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	redirectURI := c.Query("redirect_uri")

	authURL, err := h.service.BeginLogin(redirectURI)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to begin login", "details": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /api/auth/google/callback
// @Summary Handle Google OAuth callback
// @Description Consume the state token, exchange the authorization code, and return access tokens
// @Tags authentication
// @Produce json
// @Param code query string true "OAuth authorization code"
// @Param state query string true "Single-use state token"
// @Success 200 {object} AuthHandlerResponse "Authentication result"
// @Failure 400 {object} map[string]interface{} "Missing parameters or provider error"
// @Failure 401 {object} map[string]interface{} "Invalid, expired, or replayed state"
// @Router /auth/google/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	if errorParam := c.Query("error"); errorParam != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "OAuth provider returned an error",
			"details": errorParam + ": " + c.Query("error_description"),
		})
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and state are required"})
		return
	}

	response, err := h.service.HandleCallback(c.Request.Context(), code, state)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidOAuthState) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} AuthHandlerResponse "Fresh access token"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout handles POST /api/auth/logout
// @Summary Revoke refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token to revoke"
// @Success 200 {object} map[string]string "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.service.Logout(req.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Validate handles GET /api/auth/validate
// @Summary Validate the current access token
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthValidateResponse "Token status"
// @Security BearerAuth
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusOK, AuthValidateResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

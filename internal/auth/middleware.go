package auth

import (
	"errors"
	"net/http"
	"strings"

	"synthex-backend/internal/database/models"
	"synthex-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthMiddleware provides JWT authentication and organization
// authorization middleware
type AuthMiddleware struct {
	service     *AuthService
	memberships repository.MembershipRepositoryInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, memberships repository.MembershipRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{service: service, memberships: memberships}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		userID, err := claims.UserUUID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireOrganizationRole authorizes the authenticated user against the
// organization in the :id path parameter. Tenant scoping depends on this
// running before any handler that touches organization data.
func (m *AuthMiddleware) RequireOrganizationRole(minRole models.MemberRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		orgID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
			c.Abort()
			return
		}

		membership, err := m.memberships.GetByOrgAndUser(orgID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"error": "User is not a member of this organization"})
				c.Abort()
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check membership", "details": err.Error()})
			c.Abort()
			return
		}

		if !membership.Role.AtLeast(minRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			c.Abort()
			return
		}

		c.Set("membership", membership)
		c.Set("organization_id", orgID)

		c.Next()
	}
}

// GetUserID is a helper function to extract the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetMembership is a helper function to extract the resolved membership
// from context
func GetMembership(c *gin.Context) (*models.OrganizationMember, bool) {
	value, exists := c.Get("membership")
	if !exists {
		return nil, false
	}

	membership, ok := value.(*models.OrganizationMember)
	return membership, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

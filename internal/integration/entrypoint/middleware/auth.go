// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// AccountIDKey is the context key for the authenticated account's ID.
	AccountIDKey ContextKey = "account_id"
	// AccountEmailKey is the context key for the authenticated account's email.
	AccountEmailKey ContextKey = "account_email"
	// AccountRoleKey is the context key for the authenticated account's role.
	AccountRoleKey ContextKey = "account_role"
)

// AuthMiddleware provides access token authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces token authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(AccountIDKey), claims.AccountID)
		c.Set(string(AccountEmailKey), claims.Email)
		c.Set(string(AccountRoleKey), claims.Role)

		c.Next()
	}
}

// RequireAdmin returns a Gin middleware handler that rejects non-admins.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetAccountRoleFromContext(c)
		if !ok || role != entity.AccountRoleAdmin {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Admin role required",
				Code:  string(domainerror.ErrCodeNotAdmin),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetAccountIDFromContext extracts the account ID from the Gin context.
func GetAccountIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(string(AccountIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := accountID.(uuid.UUID)
	return id, ok
}

// GetAccountEmailFromContext extracts the account email from the Gin context.
func GetAccountEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(AccountEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAccountRoleFromContext extracts the account role from the Gin context.
func GetAccountRoleFromContext(c *gin.Context) (entity.AccountRole, bool) {
	role, exists := c.Get(string(AccountRoleKey))
	if !exists {
		return "", false
	}
	roleValue, ok := role.(entity.AccountRole)
	return roleValue, ok
}

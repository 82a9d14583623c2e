// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the scoped user's ID.
	UserIDKey ContextKey = "user_id"
)

// UserIDHeader carries the id every stored key is scoped to.
const UserIDHeader = "X-User-ID"

// RequireUserScope returns a Gin middleware handler that reads the user id header.
// Requests without a valid UUID are rejected before reaching a controller.
func RequireUserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get user ID header
		header := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if header == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: domainerror.ErrMissingUserScope.Error(),
				Code:  string(domainerror.ErrCodeMissingUserScope),
			})
			c.Abort()
			return
		}

		// Parse user ID
		userID, err := uuid.Parse(header)
		if err != nil || userID == uuid.Nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: domainerror.ErrMissingUserScope.Error(),
				Code:  string(domainerror.ErrCodeMissingUserScope),
			})
			c.Abort()
			return
		}

		// Store user info in context
		c.Set(string(UserIDKey), userID)

		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

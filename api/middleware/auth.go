// Package middleware provides the bearer-token authentication layer for
// protected routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/auth"
	"github.com/gracefm/radio-api/internal/services/users"
)

// RequireAuth rejects requests without a valid bearer token. The resolved
// user is stored on the context for handlers.
func RequireAuth(authSvc *auth.Service, userSvc users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, authSvc, userSvc)
		if !ok {
			return
		}
		c.Set(types.ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present but lets
// anonymous requests through untouched.
func OptionalAuth(authSvc *auth.Service, userSvc users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if extractToken(c) == "" {
			c.Next()
			return
		}
		user, ok := authenticate(c, authSvc, userSvc)
		if !ok {
			return
		}
		c.Set(types.ContextUserKey, user)
		c.Next()
	}
}

// RequireRoles allows only users holding one of the given roles. Must run
// after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "Authentication required"})
			c.Abort()
			return
		}
		if !user.HasRole(roles...) {
			c.JSON(http.StatusForbidden, types.ErrorResponse{Message: "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, authSvc *auth.Service, userSvc users.Service) (*models.User, bool) {
	token := extractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "Missing authorization header"})
		c.Abort()
		return nil, false
	}

	claims, err := authSvc.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "Invalid or expired token"})
		c.Abort()
		return nil, false
	}

	user, err := userSvc.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "Account no longer exists"})
		c.Abort()
		return nil, false
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Message: "Account is deactivated"})
		c.Abort()
		return nil, false
	}
	return user, true
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/jwt"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/response"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// Auth returns a middleware that enforces JWT authentication. Every core
// operation requires a verified caller identity.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// AdminOnly blocks callers whose token lacks the admin role claim. Must run
// after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return role
}

// IsAdmin reports whether the request carries an admin role claim.
func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == models.RoleAdmin
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}

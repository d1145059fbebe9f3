package auth

import (
	"strings"

	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func setClaims(c *gin.Context, claims *Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextIsAdmin, claims.IsAdmin)
}

// checks the bearer token, aborting with 401 when it is missing or invalid
func authenticate(c *gin.Context) bool {
	if c.GetHeader("Authorization") == "" {
		errors.Unauthorized(c, "authorization header required")
		return false
	}

	token, ok := bearerToken(c)
	if !ok {
		errors.Unauthorized(c, "invalid authorization header format")
		return false
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		errors.Unauthorized(c, "invalid or expired token")
		return false
	}

	setClaims(c, claims)
	return true
}

// validates JWT tokens and adds user info to context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		c.Next()
	}
}

// like AuthMiddleware, and additionally requires the admin role
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		if !IsAdmin(c) {
			errors.Forbidden(c, "admin access required")
			return
		}

		c.Next()
	}
}

// validates JWT if present but doesn't require it
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := ValidateJWT(token); err == nil {
				setClaims(c, claims)
			}
		}

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

// reports whether the authenticated user holds the admin role
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}

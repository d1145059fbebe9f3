package auth

import (
	"context"

	"codeberg.org/bookshelf/server/bookshelf/users"
	"codeberg.org/bookshelf/server/internal/auth"
	"github.com/gin-gonic/gin"
)

type UserStore interface {
	Authenticate(ctx context.Context, creds users.Credentials) (*users.User, error)
	SignUp(ctx context.Context, creds users.Credentials) (*users.User, error)
	FindByID(ctx context.Context, userID string) (*users.User, error)
}

// registers all authentication routes; limit guards sign-in and sign-up and may be nil
func RegisterRoutes(router *gin.RouterGroup, userRepo UserStore, limit gin.HandlerFunc) {
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if limit == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{limit, h}
	}

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signin", guarded(SignInHandler(userRepo))...)
		authGroup.POST("/signup", guarded(SignUpHandler(userRepo))...)
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(userRepo))
	}
}

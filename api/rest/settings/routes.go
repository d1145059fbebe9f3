package settings

import (
	"context"

	"github.com/gin-gonic/gin"
)

type Store interface {
	Get(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, values map[string]string) (map[string]string, error)
}

func RegisterRoutes(router, admin *gin.RouterGroup, store Store) {
	router.GET("/public/settings", GetHandler(store))
	admin.PUT("/settings", UpdateHandler(store))
}

package services

import (
	"context"

	"codeberg.org/bookshelf/server/bookshelf/services"
	"github.com/gin-gonic/gin"
)

type Store interface {
	List(ctx context.Context) ([]services.Service, error)
	Create(ctx context.Context, in services.ServiceInput) (*services.Service, error)
	Update(ctx context.Context, id string, in services.ServiceInput) (*services.Service, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, id string, dir services.Direction) ([]services.Service, error)
}

func RegisterRoutes(admin *gin.RouterGroup, store Store) {
	admin.GET("/services", ListHandler(store))
	admin.POST("/services", CreateHandler(store))
	admin.PUT("/services/:id", UpdateHandler(store))
	admin.DELETE("/services/:id", DeleteHandler(store))
	admin.POST("/services/:id/move", MoveHandler(store))
}

package categories

import (
	"context"

	"codeberg.org/bookshelf/server/bookshelf/categories"
	"github.com/gin-gonic/gin"
)

type Store interface {
	List(ctx context.Context) ([]categories.Category, error)
	Create(ctx context.Context, in categories.CategoryInput) (*categories.Category, error)
	Update(ctx context.Context, id string, in categories.CategoryInput) (*categories.Category, error)
	Delete(ctx context.Context, id string) error
}

func RegisterRoutes(router, admin *gin.RouterGroup, store Store) {
	router.GET("/public/categories", ListHandler(store))

	admin.POST("/categories", CreateHandler(store))
	admin.PUT("/categories/:id", UpdateHandler(store))
	admin.DELETE("/categories/:id", DeleteHandler(store))
}

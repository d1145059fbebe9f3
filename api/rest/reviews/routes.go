package reviews

import (
	"context"

	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"github.com/gin-gonic/gin"
)

// the review operations the handlers need
type Store interface {
	ListPublished(ctx context.Context, filter reviews.ListFilter) ([]reviews.Review, int, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*reviews.Review, error)
	ListAll(ctx context.Context, limit, offset int) ([]reviews.Review, int, error)
	Get(ctx context.Context, id string) (*reviews.Review, error)
	Create(ctx context.Context, in reviews.ReviewInput) (*reviews.Review, error)
	Update(ctx context.Context, id string, in reviews.ReviewInput) (*reviews.Review, error)
	SetPublished(ctx context.Context, id string, published bool) (*reviews.Review, error)
	Delete(ctx context.Context, id string) error
}

// registers public routes on router and moderation routes on admin, which
// must already be guarded by the admin middleware
func RegisterRoutes(router, admin *gin.RouterGroup, store Store) {
	router.GET("/public/reviews", ListPublishedHandler(store))
	router.GET("/public/reviews/:slug", GetPublishedHandler(store))

	admin.GET("/reviews", ListAllHandler(store))
	admin.POST("/reviews", CreateHandler(store))
	admin.GET("/reviews/:id", GetHandler(store))
	admin.PUT("/reviews/:id", UpdateHandler(store))
	admin.PUT("/reviews/:id/publish", SetPublishedHandler(store))
	admin.DELETE("/reviews/:id", DeleteHandler(store))
}

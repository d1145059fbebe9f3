package pages

import (
	"context"

	"codeberg.org/bookshelf/server/bookshelf/pages"
	"codeberg.org/bookshelf/server/bookshelf/services"
	"github.com/gin-gonic/gin"
)

type Store interface {
	GetAbout(ctx context.Context) (*pages.AboutPage, error)
	UpdateAbout(ctx context.Context, in pages.AboutInput) (*pages.AboutPage, error)
	GetZeedits(ctx context.Context) (*pages.ZeeditsPage, error)
	UpdateZeedits(ctx context.Context, in pages.ZeeditsInput) (*pages.ZeeditsPage, error)
}

// lists the services shown under the zeedits page
type ServiceLister interface {
	List(ctx context.Context) ([]services.Service, error)
}

func RegisterRoutes(router, admin *gin.RouterGroup, store Store, lister ServiceLister) {
	router.GET("/public/about", GetAboutHandler(store))
	router.GET("/public/zeedits", GetZeeditsHandler(store, lister))

	admin.PUT("/about", UpdateAboutHandler(store))
	admin.PUT("/zeedits", UpdateZeeditsHandler(store))
}

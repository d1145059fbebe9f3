package home

import (
	"context"

	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"github.com/gin-gonic/gin"
)

type SettingsSource interface {
	Get(ctx context.Context) (map[string]string, error)
}

type ReviewSource interface {
	ListPublished(ctx context.Context, filter reviews.ListFilter) ([]reviews.Review, int, error)
}

func RegisterRoutes(router *gin.RouterGroup, settings SettingsSource, reviewSource ReviewSource) {
	router.GET("/public/home", Handler(settings, reviewSource))
}

package admin

import (
	"context"

	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/gin-gonic/gin"
)

type StatsSource interface {
	Stats(ctx context.Context) (*storage.Stats, error)
}

func RegisterRoutes(admin *gin.RouterGroup, stats StatsSource) {
	admin.GET("/stats", GetStats(stats))
}

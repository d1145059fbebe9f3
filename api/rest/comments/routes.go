package comments

import (
	"context"

	"codeberg.org/bookshelf/server/bookshelf/comments"
	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"github.com/gin-gonic/gin"
)

type Store interface {
	ListApproved(ctx context.Context, reviewID string) ([]comments.PublicComment, error)
	ListAll(ctx context.Context, limit, offset int) ([]comments.Comment, int, error)
	Create(ctx context.Context, reviewID string, req comments.CreateCommentRequest) (*comments.Comment, error)
	SetApproved(ctx context.Context, id string, approved bool) (*comments.Comment, error)
	Delete(ctx context.Context, id string) error
}

// resolves the review a public comment belongs to
type ReviewFinder interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*reviews.Review, error)
}

// submitLimit guards comment submission and may be nil
func RegisterRoutes(router, admin *gin.RouterGroup, store Store, finder ReviewFinder, submitLimit gin.HandlerFunc) {
	router.GET("/public/reviews/:slug/comments", ListApprovedHandler(store, finder))

	submit := []gin.HandlerFunc{CreateHandler(store, finder)}
	if submitLimit != nil {
		submit = append([]gin.HandlerFunc{submitLimit}, submit...)
	}
	router.POST("/public/reviews/:slug/comments", submit...)

	admin.GET("/comments", ListAllHandler(store))
	admin.PUT("/comments/:id/approval", SetApprovalHandler(store))
	admin.DELETE("/comments/:id", DeleteHandler(store))
}

package reviews

import (
	"codeberg.org/bookshelf/server/api/rest/pagination"
	"codeberg.org/bookshelf/server/bookshelf/reviews"
)

const (
	defaultLimit = 12
	maxLimit     = 100
)

// ReviewsListResponse wraps a page of reviews
type ReviewsListResponse struct {
	Reviews    []reviews.Review `json:"reviews"`
	Pagination pagination.Meta  `json:"pagination"`
}

// SetPublishedRequest sets the published flag; repeating it is harmless
type SetPublishedRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

package comments

import (
	"codeberg.org/bookshelf/server/api/rest/pagination"
	"codeberg.org/bookshelf/server/bookshelf/comments"
)

type PublicCommentsResponse struct {
	Comments []comments.PublicComment `json:"comments"`
}

type CommentsListResponse struct {
	Comments   []comments.Comment `json:"comments"`
	Pagination pagination.Meta    `json:"pagination"`
}

// returned after a comment is accepted for moderation
type SubmittedResponse struct {
	Message string `json:"message"`
}

type SetApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

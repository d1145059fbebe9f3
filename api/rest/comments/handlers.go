package comments

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/bookshelf/server/api/rest/pagination"
	"codeberg.org/bookshelf/server/bookshelf/comments"
	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const msgSubmitted = "Comment submitted! It will appear after moderation."

// ListApprovedHandler godoc
// @Summary List approved comments of a review
// @Tags comments
// @Produce json
// @Param slug path string true "Review slug"
// @Success 200 {object} PublicCommentsResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/reviews/{slug}/comments [get]
func ListApprovedHandler(store Store, finder ReviewFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, ok := findReview(c, finder)
		if !ok {
			return
		}

		list, err := store.ListApproved(c.Request.Context(), review.ID)
		if err != nil {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load comments.")
			return
		}

		c.JSON(http.StatusOK, PublicCommentsResponse{Comments: list})
	}
}

// CreateHandler godoc
// @Summary Submit a comment
// @Description New comments are hidden until a moderator approves them
// @Tags comments
// @Accept json
// @Produce json
// @Param slug path string true "Review slug"
// @Param request body comments.CreateCommentRequest true "Comment"
// @Success 201 {object} SubmittedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/reviews/{slug}/comments [post]
func CreateHandler(store Store, finder ReviewFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req comments.CreateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, comments.ErrMissingFields.Error(), nil)
			return
		}

		review, ok := findReview(c, finder)
		if !ok {
			return
		}

		_, err := store.Create(c.Request.Context(), review.ID, req)
		if err != nil {
			var invalid *comments.ValidationError

			switch {
			case stderrors.Is(err, comments.ErrMissingFields):
				errors.BadRequest(c, err.Error(), nil)
			case stderrors.As(err, &invalid):
				errors.PublicError(c, http.StatusBadRequest, err, "Failed to submit comment.")
			default:
				errors.PublicError(c, 0, err, "Failed to submit comment.")
			}
			return
		}

		c.JSON(http.StatusCreated, SubmittedResponse{Message: msgSubmitted})
	}
}

// ListAllHandler godoc
// @Summary List all comments (admin)
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} CommentsListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/comments [get]
// @Security BearerAuth
func ListAllHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, 50, 200)

		list, total, err := store.ListAll(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.AdminError(c, http.StatusInternalServerError, err, "Failed to load comments.")
			return
		}

		c.JSON(http.StatusOK, CommentsListResponse{
			Comments:   list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// SetApprovalHandler godoc
// @Summary Approve or hide a comment (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param request body SetApprovalRequest true "Approval"
// @Success 200 {object} comments.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/comments/{id}/approval [put]
// @Security BearerAuth
func SetApprovalHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req SetApprovalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		comment, err := store.SetApproved(c.Request.Context(), id, *req.Approved)
		if err != nil {
			respondAdmin(c, err, "Failed to update comment.")
			return
		}

		c.JSON(http.StatusOK, comment)
	}
}

// DeleteHandler godoc
// @Summary Delete a comment (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/comments/{id} [delete]
// @Security BearerAuth
func DeleteHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			respondAdmin(c, err, "Failed to delete comment.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "comment deleted"})
	}
}

func findReview(c *gin.Context, finder ReviewFinder) (*reviews.Review, bool) {
	review, err := finder.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if stderrors.Is(err, reviews.ErrReviewNotFound) {
			errors.NotFound(c, "review")
			return nil, false
		}

		errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load review.")
		return nil, false
	}

	return review, true
}

func respondAdmin(c *gin.Context, err error, fallback string) {
	if stderrors.Is(err, comments.ErrCommentNotFound) {
		errors.NotFound(c, "comment")
		return
	}

	errors.AdminError(c, 0, err, fallback)
}

package reviews

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/bookshelf/server/api/rest/pagination"
	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListPublishedHandler godoc
// @Summary List published reviews
// @Description Lists published reviews, newest first, optionally filtered by category
// @Tags reviews
// @Produce json
// @Param category query string false "Category ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} ReviewsListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/reviews [get]
func ListPublishedHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, defaultLimit, maxLimit)

		categoryID := c.Query("category")
		if categoryID != "" && !errors.IsValidUUID(categoryID) {
			errors.BadRequest(c, "invalid category", nil)
			return
		}

		list, total, err := store.ListPublished(c.Request.Context(), reviews.ListFilter{
			CategoryID: categoryID,
			Limit:      params.Limit,
			Offset:     params.Offset,
		})
		if err != nil {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load reviews.")
			return
		}

		c.JSON(http.StatusOK, ReviewsListResponse{
			Reviews:    list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetPublishedHandler godoc
// @Summary Get a published review
// @Tags reviews
// @Produce json
// @Param slug path string true "Review slug"
// @Success 200 {object} reviews.Review
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/reviews/{slug} [get]
func GetPublishedHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, err := store.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if stderrors.Is(err, reviews.ErrReviewNotFound) {
				errors.NotFound(c, "review")
				return
			}

			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load review.")
			return
		}

		c.JSON(http.StatusOK, review)
	}
}

// ListAllHandler godoc
// @Summary List all reviews (admin)
// @Description Lists drafts and published reviews, newest first
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} ReviewsListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/reviews [get]
// @Security BearerAuth
func ListAllHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, 50, maxLimit)

		list, total, err := store.ListAll(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.AdminError(c, http.StatusInternalServerError, err, "Failed to load reviews.")
			return
		}

		c.JSON(http.StatusOK, ReviewsListResponse{
			Reviews:    list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetHandler godoc
// @Summary Get any review (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} reviews.Review
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/reviews/{id} [get]
// @Security BearerAuth
func GetHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		review, err := store.Get(c.Request.Context(), id)
		if err != nil {
			respondAdmin(c, err, "Failed to load review.")
			return
		}

		c.JSON(http.StatusOK, review)
	}
}

// CreateHandler godoc
// @Summary Create a review (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reviews.ReviewInput true "Review"
// @Success 201 {object} reviews.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/reviews [post]
// @Security BearerAuth
func CreateHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in reviews.ReviewInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		review, err := store.Create(c.Request.Context(), in)
		if err != nil {
			respondAdmin(c, err, "Failed to save review.")
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// UpdateHandler godoc
// @Summary Update a review (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body reviews.ReviewInput true "Review"
// @Success 200 {object} reviews.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/reviews/{id} [put]
// @Security BearerAuth
func UpdateHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var in reviews.ReviewInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		review, err := store.Update(c.Request.Context(), id, in)
		if err != nil {
			respondAdmin(c, err, "Failed to save review.")
			return
		}

		c.JSON(http.StatusOK, review)
	}
}

// SetPublishedHandler godoc
// @Summary Publish or unpublish a review (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body SetPublishedRequest true "Published flag"
// @Success 200 {object} reviews.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/reviews/{id}/publish [put]
// @Security BearerAuth
func SetPublishedHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req SetPublishedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		review, err := store.SetPublished(c.Request.Context(), id, *req.Published)
		if err != nil {
			respondAdmin(c, err, "Failed to update review.")
			return
		}

		c.JSON(http.StatusOK, review)
	}
}

// DeleteHandler godoc
// @Summary Delete a review (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/reviews/{id} [delete]
// @Security BearerAuth
func DeleteHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			respondAdmin(c, err, "Failed to delete review.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "review deleted"})
	}
}

func respondAdmin(c *gin.Context, err error, fallback string) {
	switch {
	case stderrors.Is(err, reviews.ErrReviewNotFound):
		errors.NotFound(c, "review")
	case stderrors.Is(err, reviews.ErrEmptySlug):
		errors.BadRequest(c, err.Error(), nil)
	default:
		errors.AdminError(c, 0, err, fallback)
	}
}

package categories

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/bookshelf/server/bookshelf/categories"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/categories [get]
func ListHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load categories.")
			return
		}

		c.JSON(http.StatusOK, CategoriesResponse{Categories: list})
	}
}

// CreateHandler godoc
// @Summary Create a category (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body categories.CategoryInput true "Category"
// @Success 201 {object} categories.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/admin/categories [post]
// @Security BearerAuth
func CreateHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categories.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		category, err := store.Create(c.Request.Context(), in)
		if err != nil {
			respondAdmin(c, err, "Failed to save category.")
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// UpdateHandler godoc
// @Summary Update a category (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body categories.CategoryInput true "Category"
// @Success 200 {object} categories.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/categories/{id} [put]
// @Security BearerAuth
func UpdateHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var in categories.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		category, err := store.Update(c.Request.Context(), id, in)
		if err != nil {
			respondAdmin(c, err, "Failed to save category.")
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteHandler godoc
// @Summary Delete a category (admin)
// @Description Fails while reviews still reference the category
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/categories/{id} [delete]
// @Security BearerAuth
func DeleteHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			respondAdmin(c, err, "Failed to delete category.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "category deleted"})
	}
}

func respondAdmin(c *gin.Context, err error, fallback string) {
	switch {
	case stderrors.Is(err, categories.ErrCategoryNotFound):
		errors.NotFound(c, "category")
	case stderrors.Is(err, categories.ErrEmptySlug):
		errors.BadRequest(c, err.Error(), nil)
	default:
		errors.AdminError(c, 0, err, fallback)
	}
}

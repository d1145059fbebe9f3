package pages

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/bookshelf/server/bookshelf/pages"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// GetAboutHandler godoc
// @Summary Get the about page
// @Tags pages
// @Produce json
// @Success 200 {object} pages.AboutPage
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/about [get]
func GetAboutHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := store.GetAbout(c.Request.Context())
		if err != nil {
			if stderrors.Is(err, pages.ErrPageNotFound) {
				errors.NotFound(c, "page")
				return
			}

			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load page.")
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// GetZeeditsHandler godoc
// @Summary Get the zeedits page and its services
// @Tags pages
// @Produce json
// @Success 200 {object} ZeeditsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/zeedits [get]
func GetZeeditsHandler(store Store, lister ServiceLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := store.GetZeedits(c.Request.Context())
		if err != nil && !stderrors.Is(err, pages.ErrPageNotFound) {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load page.")
			return
		}

		list, err := lister.List(c.Request.Context())
		if err != nil {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load services.")
			return
		}

		c.JSON(http.StatusOK, ZeeditsResponse{Page: page, Services: list})
	}
}

// UpdateAboutHandler godoc
// @Summary Update the about page (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body pages.AboutInput true "About page"
// @Success 200 {object} pages.AboutPage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/about [put]
// @Security BearerAuth
func UpdateAboutHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in pages.AboutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		page, err := store.UpdateAbout(c.Request.Context(), in)
		if err != nil {
			errors.AdminError(c, 0, err, "Failed to save page.")
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// UpdateZeeditsHandler godoc
// @Summary Update the zeedits page (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body pages.ZeeditsInput true "Zeedits page"
// @Success 200 {object} pages.ZeeditsPage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/zeedits [put]
// @Security BearerAuth
func UpdateZeeditsHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in pages.ZeeditsInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		page, err := store.UpdateZeedits(c.Request.Context(), in)
		if err != nil {
			errors.AdminError(c, 0, err, "Failed to save page.")
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

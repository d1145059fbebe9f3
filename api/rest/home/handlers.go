package home

import (
	"net/http"

	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Landing page content
// @Description Site settings and the latest published reviews
// @Tags home
// @Produce json
// @Success 200 {object} HomeResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/home [get]
func Handler(settings SettingsSource, reviewSource ReviewSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := settings.Get(c.Request.Context())
		if err != nil {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load page.")
			return
		}

		latest, _, err := reviewSource.ListPublished(c.Request.Context(), reviews.ListFilter{Limit: latestCount})
		if err != nil {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load reviews.")
			return
		}

		c.JSON(http.StatusOK, HomeResponse{Settings: values, Latest: latest})
	}
}

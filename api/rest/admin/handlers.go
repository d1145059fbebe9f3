package admin

import (
	"net/http"

	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// GetStats godoc
// @Summary Dashboard counters (admin)
// @Description Counts reviews, comments and categories
// @Tags admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/stats [get]
// @Security BearerAuth
func GetStats(source StatsSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := source.Stats(c.Request.Context())
		if err != nil {
			errors.AdminError(c, http.StatusInternalServerError, err, "Failed to load dashboard.")
			return
		}

		c.JSON(http.StatusOK, StatsResponse{Stats: stats})
	}
}

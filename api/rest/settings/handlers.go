package settings

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/bookshelf/server/bookshelf/settings"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// GetHandler godoc
// @Summary Get site settings
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/public/settings [get]
func GetHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := store.Get(c.Request.Context())
		if err != nil {
			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load settings.")
			return
		}

		c.JSON(http.StatusOK, SettingsResponse{Settings: values})
	}
}

// UpdateHandler godoc
// @Summary Update site settings (admin)
// @Description Saves every given key in one transaction; unknown keys are rejected
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/settings [put]
// @Security BearerAuth
func UpdateHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		values, err := store.Update(c.Request.Context(), req.Settings)
		if err != nil {
			if stderrors.Is(err, settings.ErrUnknownKey) || stderrors.Is(err, settings.ErrNoSettings) {
				errors.BadRequest(c, err.Error(), nil)
				return
			}

			errors.AdminError(c, 0, err, "Failed to save settings.")
			return
		}

		c.JSON(http.StatusOK, SettingsResponse{Settings: values})
	}
}

package services

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/bookshelf/server/bookshelf/services"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List services (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} ServicesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/services [get]
// @Security BearerAuth
func ListHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.AdminError(c, http.StatusInternalServerError, err, "Failed to load services.")
			return
		}

		c.JSON(http.StatusOK, ServicesResponse{Services: list})
	}
}

// CreateHandler godoc
// @Summary Add a service (admin)
// @Description The new service is placed last
// @Tags admin
// @Accept json
// @Produce json
// @Param request body services.ServiceInput true "Service"
// @Success 201 {object} services.Service
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/admin/services [post]
// @Security BearerAuth
func CreateHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ServiceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		service, err := store.Create(c.Request.Context(), in)
		if err != nil {
			respondAdmin(c, err, "Failed to save service.")
			return
		}

		c.JSON(http.StatusCreated, service)
	}
}

// UpdateHandler godoc
// @Summary Update a service (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body services.ServiceInput true "Service"
// @Success 200 {object} services.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/services/{id} [put]
// @Security BearerAuth
func UpdateHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var in services.ServiceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			errors.ValidationError(c, err)
			return
		}

		service, err := store.Update(c.Request.Context(), id, in)
		if err != nil {
			respondAdmin(c, err, "Failed to save service.")
			return
		}

		c.JSON(http.StatusOK, service)
	}
}

// DeleteHandler godoc
// @Summary Delete a service (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/services/{id} [delete]
// @Security BearerAuth
func DeleteHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			respondAdmin(c, err, "Failed to delete service.")
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "service deleted"})
	}
}

// MoveHandler godoc
// @Summary Move a service up or down (admin)
// @Description Swaps places with the neighbouring service; moving past either end changes nothing
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body MoveRequest true "Direction"
// @Success 200 {object} ServicesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/services/{id}/move [post]
// @Security BearerAuth
func MoveHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		list, err := store.Move(c.Request.Context(), id, req.Direction)
		if err != nil {
			respondAdmin(c, err, "Failed to reorder services.")
			return
		}

		c.JSON(http.StatusOK, ServicesResponse{Services: list})
	}
}

func respondAdmin(c *gin.Context, err error, fallback string) {
	switch {
	case stderrors.Is(err, services.ErrServiceNotFound):
		errors.NotFound(c, "service")
	case stderrors.Is(err, services.ErrInvalidDirection):
		errors.BadRequest(c, err.Error(), nil)
	default:
		errors.AdminError(c, 0, err, fallback)
	}
}

package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/bookshelf/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

// anything that can confirm the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler godoc
// @Summary Health check
// @Description Reports whether the server and its database are up
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func Handler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := Response{
			Status:   "healthy",
			Service:  "bookshelf",
			Version:  version,
			Database: "up",
		}

		if err := db.Ping(ctx); err != nil {
			logger.ErrorErr(err, "health check failed")

			resp.Status = "degraded"
			resp.Database = "down"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// PingHandler godoc
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/v1/ping [get]
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

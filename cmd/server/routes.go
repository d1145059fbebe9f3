package main

import (
	"net/http"

	"codeberg.org/bookshelf/server/api/rest/admin"
	"codeberg.org/bookshelf/server/api/rest/auth"
	"codeberg.org/bookshelf/server/api/rest/categories"
	"codeberg.org/bookshelf/server/api/rest/comments"
	"codeberg.org/bookshelf/server/api/rest/health"
	"codeberg.org/bookshelf/server/api/rest/home"
	"codeberg.org/bookshelf/server/api/rest/pages"
	"codeberg.org/bookshelf/server/api/rest/reviews"
	"codeberg.org/bookshelf/server/api/rest/services"
	"codeberg.org/bookshelf/server/api/rest/settings"
	"codeberg.org/bookshelf/server/docs"
	authmw "codeberg.org/bookshelf/server/internal/auth"
	"codeberg.org/bookshelf/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// sets up all API routes
func RegisterRoutes(router *gin.Engine, server *Server) error {
	commentLimit, err := server.limits.Middleware("comments", server.config.CommentRateLimit,
		"Too many comments. Please wait a few minutes before trying again.")
	if err != nil {
		return err
	}

	authLimit, err := server.limits.Middleware("auth", server.config.AuthRateLimit,
		"Too many attempts. Please wait a few minutes before trying again.")
	if err != nil {
		return err
	}

	repos := server.repos

	router.GET("/health", health.Handler(server.db))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/doc.json", swaggerHandler)

	v1 := router.Group("/api/v1")
	adminGroup := v1.Group("/admin")
	adminGroup.Use(authmw.AdminAuthMiddleware())

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, repos.Users, authLimit)
		home.RegisterRoutes(v1, repos.Settings, repos.Reviews)
		reviews.RegisterRoutes(v1, adminGroup, repos.Reviews)
		comments.RegisterRoutes(v1, adminGroup, repos.Comments, repos.Reviews, commentLimit)
		categories.RegisterRoutes(v1, adminGroup, repos.Categories)
		pages.RegisterRoutes(v1, adminGroup, repos.Pages, repos.Services)
		services.RegisterRoutes(adminGroup, repos.Services)
		settings.RegisterRoutes(v1, adminGroup, repos.Settings)
		admin.RegisterRoutes(adminGroup, repos.Stats)
	}

	return nil
}

func swaggerHandler(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

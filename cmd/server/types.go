package main

import (
	"codeberg.org/bookshelf/server/bookshelf/categories"
	"codeberg.org/bookshelf/server/bookshelf/comments"
	"codeberg.org/bookshelf/server/bookshelf/pages"
	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"codeberg.org/bookshelf/server/bookshelf/services"
	"codeberg.org/bookshelf/server/bookshelf/settings"
	"codeberg.org/bookshelf/server/bookshelf/users"
	"codeberg.org/bookshelf/server/internal/config"
	"codeberg.org/bookshelf/server/internal/errors"
	"codeberg.org/bookshelf/server/internal/ratelimit"
	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	db         *pgxpool.Pool
	redis      *redis.Client
	config     *config.Config
	classifier *errors.Classifier
	limits     *ratelimit.Factory
	repos      *Repositories
	router     *gin.Engine
}

// holds the Postgres-backed repositories
type Repositories struct {
	Reviews    *reviews.Repository
	Categories *categories.Repository
	Comments   *comments.Repository
	Pages      *pages.Repository
	Services   *services.Repository
	Settings   *settings.Repository
	Users      *users.Repository
	Stats      *storage.Client
}

package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/bookshelf/server/bookshelf/categories"
	"codeberg.org/bookshelf/server/bookshelf/comments"
	"codeberg.org/bookshelf/server/bookshelf/pages"
	"codeberg.org/bookshelf/server/bookshelf/reviews"
	"codeberg.org/bookshelf/server/bookshelf/services"
	"codeberg.org/bookshelf/server/bookshelf/settings"
	"codeberg.org/bookshelf/server/bookshelf/users"
	"codeberg.org/bookshelf/server/internal/config"
	"codeberg.org/bookshelf/server/internal/errors"
	"codeberg.org/bookshelf/server/internal/logger"
	"codeberg.org/bookshelf/server/internal/metrics"
	"codeberg.org/bookshelf/server/internal/ratelimit"
	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	redisClient, err := connectRedis(ctx, cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, err
	}

	classifier, err := newClassifier(cfg)
	if err != nil {
		closeRedis(redisClient)
		db.Close()
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		logger.RequestLogger(),
		gin.Recovery(),
		metrics.Middleware(),
		errors.Middleware(classifier),
		cors.New(corsConfig(cfg)),
	)

	server := &Server{
		db:         db,
		redis:      redisClient,
		config:     cfg,
		classifier: classifier,
		limits:     ratelimit.NewFactory(redisClient),
		repos: &Repositories{
			Reviews:    reviews.NewRepository(db),
			Categories: categories.NewRepository(db),
			Comments:   comments.NewRepository(db),
			Pages:      pages.NewRepository(db),
			Services:   services.NewRepository(db),
			Settings:   settings.NewRepository(db),
			Users:      users.NewRepository(db, cfg.SignupEnabled),
			Stats:      storage.NewClient(db),
		},
		router: router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		server.Close()
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	return server, nil
}

// builds the error classifier, with any extra rules from the mappings file
// placed ahead of the built-in ones
func newClassifier(cfg *config.Config) (*errors.Classifier, error) {
	var extra []errors.Rule

	if cfg.ErrorMappingsFile != "" {
		rules, err := errors.LoadRulesFile(cfg.ErrorMappingsFile)
		if err != nil {
			return nil, err
		}
		extra = rules

		logger.Info("loaded error mappings", "file", cfg.ErrorMappingsFile, "rules", len(rules))
	}

	table, err := errors.BuildMappingTable(extra)
	if err != nil {
		return nil, fmt.Errorf("invalid error mappings: %w", err)
	}

	var opts []errors.Option
	if !cfg.IsProduction() {
		opts = append(opts, errors.WithDiagnostics(errors.LogUnhandled))
	}

	return errors.NewClassifier(table, opts...), nil
}

// returns nil when url is empty; limiters then count in process
func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		logger.Info("REDIS_URL not set, rate limits are per instance")
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	return cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func closeRedis(client *redis.Client) {
	if client != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}
}

// releases the database pool and redis connection
func (s *Server) Close() {
	closeRedis(s.redis)
	s.db.Close()
}

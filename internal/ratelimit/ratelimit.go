package ratelimit

import (
	"fmt"

	"codeberg.org/bookshelf/server/internal/errors"
	"codeberg.org/bookshelf/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const keyPrefix = "bookshelf:ratelimit"

// builds limiter stores, shared through Redis when a client is provided so
// every replica counts against the same budget
type Factory struct {
	redis *redis.Client
}

// creates a factory; client may be nil for in-process counting
func NewFactory(client *redis.Client) *Factory {
	return &Factory{redis: client}
}

func (f *Factory) store(name string) (limiter.Store, error) {
	prefix := keyPrefix + ":" + name

	if f.redis == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: prefix}), nil
	}

	store, err := sredis.NewStoreWithOptions(f.redis, limiter.StoreOptions{
		Prefix:   prefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	return store, nil
}

// returns a per-client-IP middleware for rate, e.g. "5-M". message is the
// safe text sent when the budget is exhausted.
func (f *Factory) Middleware(name, rate, message string) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q for %s: %w", rate, name, err)
	}

	store, err := f.store(name)
	if err != nil {
		return nil, err
	}

	instance := limiter.New(store, parsed)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn("rate limit reached", "limiter", name, "ip", c.ClientIP(), "path", c.Request.URL.Path)
			errors.TooManyRequests(c, message)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// a broken limiter store should not take the endpoint down
			logger.ErrorErr(err, "rate limiter failed", "limiter", name)
			c.Next()
		}),
	), nil
}

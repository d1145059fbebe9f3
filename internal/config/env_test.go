package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := fromEnv(envFrom(map[string]string{
		"DATABASE_URL": "postgres://localhost/bookshelf",
		"JWT_SECRET":   "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SignupEnabled)
	assert.Equal(t, "5-M", cfg.CommentRateLimit)
	assert.Equal(t, "10-M", cfg.AuthRateLimit)
	assert.Empty(t, cfg.RedisURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := fromEnv(envFrom(map[string]string{
		"DATABASE_URL":         "postgres://db/bookshelf",
		"JWT_SECRET":           "secret",
		"ENVIRONMENT":          "production",
		"PORT":                 "9000",
		"REDIS_URL":            "redis://cache:6379/0",
		"CORS_ALLOWED_ORIGINS": "https://books.example, https://admin.books.example ,",
		"SIGNUP_ENABLED":       "true",
		"ERROR_MAPPINGS_FILE":  "/etc/bookshelf/errors.yaml",
		"COMMENT_RATE_LIMIT":   "3-H",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://books.example", "https://admin.books.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SignupEnabled)
	assert.Equal(t, "/etc/bookshelf/errors.yaml", cfg.ErrorMappingsFile)
	assert.Equal(t, "3-H", cfg.CommentRateLimit)
}

func TestFromEnv_RequiredAndInvalid(t *testing.T) {
	_, err := fromEnv(envFrom(map[string]string{"JWT_SECRET": "secret"}))
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = fromEnv(envFrom(map[string]string{"DATABASE_URL": "postgres://db"}))
	assert.ErrorContains(t, err, "JWT_SECRET")

	_, err = fromEnv(envFrom(map[string]string{
		"DATABASE_URL":   "postgres://db",
		"JWT_SECRET":     "secret",
		"SIGNUP_ENABLED": "maybe",
	}))
	assert.ErrorContains(t, err, "SIGNUP_ENABLED")
}

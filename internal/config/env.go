package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort             = "8080"
	defaultCommentRateLimit = "5-M"
	defaultAuthRateLimit    = "10-M"
	defaultAllowedOrigin    = "http://localhost:5173"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	databaseURL := getenv("DATABASE_URL")
	jwtSecret := getenv("JWT_SECRET")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	environment := getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	signupEnabled := false
	if v := getenv("SIGNUP_ENABLED"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SIGNUP_ENABLED must be a boolean: %w", err)
		}
		signupEnabled = parsed
	}

	return &Config{
		DatabaseURL:       databaseURL,
		RedisURL:          getenv("REDIS_URL"),
		JWTSecret:         jwtSecret,
		Environment:       environment,
		Port:              withDefault(getenv("PORT"), defaultPort),
		LogLevel:          getenv("LOG_LEVEL"),
		AllowedOrigins:    splitList(withDefault(getenv("CORS_ALLOWED_ORIGINS"), defaultAllowedOrigin)),
		SignupEnabled:     signupEnabled,
		ErrorMappingsFile: getenv("ERROR_MAPPINGS_FILE"),
		CommentRateLimit:  withDefault(getenv("COMMENT_RATE_LIMIT"), defaultCommentRateLimit),
		AuthRateLimit:     withDefault(getenv("AUTH_RATE_LIMIT"), defaultAuthRateLimit),
	}, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}

func splitList(v string) []string {
	var out []string

	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

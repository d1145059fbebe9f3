package config

type Config struct {
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	Environment string
	Port        string
	LogLevel    string

	// origins allowed by CORS, comma separated in the environment
	AllowedOrigins []string

	// whether POST /auth/signup creates accounts
	SignupEnabled bool

	// optional YAML file with extra error mapping rules
	ErrorMappingsFile string

	// limiter formatted rates, e.g. "5-M"
	CommentRateLimit string
	AuthRateLimit    string
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

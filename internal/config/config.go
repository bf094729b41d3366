package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env        string
	ServerPort string

	DBDriver string
	DBDSN    string
	ResetDB  bool

	RedisAddr    string
	RedisDB      int
	RedisPass    string
	UserCacheTTL time.Duration

	JWTSecret string

	CORSAllowedOrigins []string
	SwaggerHost        string

	SeedName     string
	SeedEmail    string
	SeedPassword string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBDriver: getEnv("DB_DRIVER", "mysql"),
		DBDSN:    getEnv("DB_DSN", getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/tasktrack?charset=utf8mb4&parseTime=True&loc=Local")),
		ResetDB:  getEnvBool("RESET_DB", false),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		UserCacheTTL: getEnvDuration("USER_CACHE_TTL", 5*time.Minute),

		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),

		SeedName:     getEnv("SEED_NAME", "Demo User"),
		SeedEmail:    getEnv("SEED_EMAIL", "demo@example.com"),
		SeedPassword: getEnv("SEED_PASSWORD", "demo-password"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be changed in production")
	}
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return errors.New("DB_DRIVER must be one of mysql, postgres, sqlite")
	}
	if c.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	return nil
}

// IsProduction reports whether secure cookies and strict checks apply.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

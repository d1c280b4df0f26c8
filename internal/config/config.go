package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultDBHost   = "postgres"
	defaultDBPort   = "5432"
	defaultSSLMode  = "disable"
	defaultLang     = "ru"
	defaultHTTPPort = 8080
	defaultOrigins  = "*"
)

// Config is read once at startup from the environment (and a .env file, if present).
type Config struct {
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string
	DBSSLMode  string

	Lang string

	HTTPPort       int
	AllowedOrigins []string

	SeedReset bool
}

func Load() (*Config, error) {
	user := os.Getenv("DB_USERNAME")
	if user == "" {
		return nil, fmt.Errorf("DB_USERNAME environment variable is required")
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		return nil, fmt.Errorf("DB_NAME environment variable is required")
	}

	cfg := &Config{
		DBUser:     user,
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     name,
		DBHost:     getEnv("DB_HOST", defaultDBHost),
		DBPort:     getEnv("DB_PORT", defaultDBPort),
		DBSSLMode:  getEnv("DB_SSLMODE", defaultSSLMode),
		Lang:       getEnv("REPORT_LANG", defaultLang),
		HTTPPort:   defaultHTTPPort,
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("PORT must be a positive integer, got %q", raw)
		}
		cfg.HTTPPort = port
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", defaultOrigins), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if raw := os.Getenv("SEED_RESET"); raw != "" {
		reset, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("SEED_RESET must be a boolean: %w", err)
		}
		cfg.SeedReset = reset
	}

	return cfg, nil
}

// DSN returns a postgres:// URL with credentials escaped.
func (c *Config) DSN() string {
	return c.buildURL(url.UserPassword(c.DBUser, c.DBPassword)).String()
}

// RedactedDSN is DSN with the password masked, for logs.
func (c *Config) RedactedDSN() string {
	return c.buildURL(url.UserPassword(c.DBUser, c.DBPassword)).Redacted()
}

func (c *Config) buildURL(user *url.Userinfo) *url.URL {
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	return &url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

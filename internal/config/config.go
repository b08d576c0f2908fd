// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct resolved once per process
// and injected into the store, handlers and renderer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/joho/godotenv"
)

// Tier values accepted by CMS_TIER.
const (
	TierBasic   = "basic"
	TierPremium = "premium"
)

// Store backends accepted by CMS_STORE.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// DefaultUploadMaxSize is the upload limit used when CMS_UPLOAD_MAX_SIZE is unset (10 MiB).
const DefaultUploadMaxSize int64 = 10 * 1024 * 1024

// DefaultAPITimeout is the request timeout in milliseconds used when
// CMS_API_TIMEOUT is unset or not positive.
const DefaultAPITimeout = 30000

// DefaultAllowedTypes is the MIME allow-list used when CMS_ALLOWED_TYPES is unset.
var DefaultAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"video/mp4",
	"video/webm",
	"application/pdf",
	"text/plain",
}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible object storage. Uploads fall back to mock URLs when unset.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Logging
	LogFile string

	// CMS subsystem
	Enabled              bool
	Debug                bool
	MockData             bool
	Store                string
	Tier                 string
	APIBaseURL           string
	UploadMaxSize        int64
	AllowedTypes         []string
	CacheEnabled         bool
	CacheTTL             int // seconds
	CacheMaxSize         int
	MaxConcurrentUploads int
	APITimeout           int // milliseconds
	RetryAttempts        int
	JWTSecret            string

	// parseErrors collects malformed numeric values; surfaced by ValidateCMS.
	parseErrors []string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory is
// loaded first when present; real environment variables take precedence.
// Returns an error if critical values are missing in production mode.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "sitecms"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "sitecms"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "sitecms-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		LogFile: os.Getenv("LOG_FILE"),

		Tier:       envOrDefault("CMS_TIER", TierPremium),
		Store:      envOrDefault("CMS_STORE", StoreMemory),
		APIBaseURL: envOrDefault("CMS_API_BASE_URL", "/api/website"),
		JWTSecret:  os.Getenv("CMS_JWT_SECRET"),
	}

	cfg.Enabled = cfg.envBool("CMS_ENABLED", true)
	cfg.Debug = cfg.envBool("CMS_DEBUG", false)
	cfg.MockData = cfg.envBool("CMS_MOCK_DATA", cfg.Store == StoreMemory)
	cfg.CacheEnabled = cfg.envBool("CMS_ENABLE_CACHE", true)
	cfg.CacheTTL = cfg.envInt("CMS_CACHE_TTL", 3600)
	cfg.CacheMaxSize = cfg.envInt("CMS_CACHE_MAX_SIZE", 100)
	cfg.MaxConcurrentUploads = cfg.envInt("CMS_MAX_CONCURRENT_UPLOADS", 3)
	cfg.APITimeout = cfg.envInt("CMS_API_TIMEOUT", DefaultAPITimeout)
	cfg.RetryAttempts = cfg.envInt("CMS_RETRY_ATTEMPTS", 3)
	cfg.UploadMaxSize = cfg.envSize("CMS_UPLOAD_MAX_SIZE", DefaultUploadMaxSize)
	cfg.AllowedTypes = envList("CMS_ALLOWED_TYPES", DefaultAllowedTypes)

	if cfg.Env == "production" && cfg.Store == StorePostgres {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ValidateCMS checks the CMS settings and returns one message per problem.
// An empty result means the configuration is usable.
func (c *Config) ValidateCMS() []string {
	var errs []string
	errs = append(errs, c.parseErrors...)

	if c.UploadMaxSize <= 0 {
		errs = append(errs, "CMS_UPLOAD_MAX_SIZE must be a positive number")
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, "CMS_CACHE_TTL must be a positive number")
	}
	if c.APITimeout <= 0 {
		errs = append(errs, "CMS_API_TIMEOUT must be a positive number")
	}
	if c.Tier != TierBasic && c.Tier != TierPremium {
		errs = append(errs, `CMS_TIER must be either "basic" or "premium"`)
	}
	if c.Store != StoreMemory && c.Store != StorePostgres {
		errs = append(errs, fmt.Sprintf(`CMS_STORE must be either "memory" or "postgres", got %q`, c.Store))
	}
	return errs
}

// RequestTimeout bounds a single API request. A rejected CMS_API_TIMEOUT is
// reported by ValidateCMS and falls back to DefaultAPITimeout here, so the
// health endpoint can still answer.
func (c *Config) RequestTimeout() time.Duration {
	ms := c.APITimeout
	if ms <= 0 {
		ms = DefaultAPITimeout
	}
	return time.Duration(ms) * time.Millisecond
}

// UseCache reports whether rendered output may be cached. Debug mode always
// bypasses the cache so edits are visible immediately.
func (c *Config) UseCache() bool {
	return c.CacheEnabled && !c.Debug
}

// UnavailableMessage returns the user-facing explanation for why the CMS
// cannot be used.
func UnavailableMessage(reason string) string {
	switch reason {
	case "disabled":
		return "Website CMS is currently disabled. Please contact support for more information."
	case "tier":
		return "Website CMS requires a premium subscription. Upgrade your plan to access this feature."
	case "permission":
		return "You do not have permission to access the Website CMS. Admin access is required."
	case "maintenance":
		return "Website CMS is temporarily unavailable for maintenance. Please try again later."
	default:
		return "Website CMS is currently unavailable."
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a boolean, got %q", key, v))
		return fallback
	}
	return b
}

func (c *Config) envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be an integer, got %q", key, v))
		return fallback
	}
	return n
}

// envSize accepts a plain byte count ("10485760") or a human size ("10MiB", "5mb").
func (c *Config) envSize(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	n, err := units.RAMInBytes(v)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a size, got %q", key, v))
		return fallback
	}
	return n
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

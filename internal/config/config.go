package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Catalog source kinds.
const (
	SourceFile     = "file"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	S3       S3Config
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// CatalogConfig selects where the catalog snapshot is loaded from.
type CatalogConfig struct {
	Source       string // "file", "s3" or "postgres"
	DataDir      string
	SimilarLimit int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds token issuance configuration.
type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	Username     string
	PasswordHash string // bcrypt
}

// S3Config holds AWS S3 configuration for catalog documents.
type S3Config struct {
	Bucket string
	Region string
	Prefix string // Path prefix within bucket (e.g., "catalog/")
}

// defaultPasswordHash is the bcrypt hash of "testpass".
const defaultPasswordHash = "$2b$12$811LbvD4g.xrZk.gKuFueeO2.hYjjs32VXuxEo5eVsfgBg5SbrZ5W"

// Load loads the API server configuration from environment variables.
func Load() (*Config, error) {
	cfg := fromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadSeeder loads the configuration used by the database seeder, which
// needs the data directory and database settings but no auth.
func LoadSeeder() (*Config, error) {
	cfg := fromEnv()
	if err := cfg.ValidateSeeder(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func fromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8000),
		},
		Catalog: CatalogConfig{
			Source:       getEnv("CATALOG_SOURCE", SourceFile),
			DataDir:      getEnv("CATALOG_DATA_DIR", "data"),
			SimilarLimit: getEnvAsInt("CATALOG_SIMILAR_LIMIT", 4),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "catalog"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			TokenTTL:     time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
			Username:     getEnv("AUTH_USERNAME", "testuser"),
			PasswordHash: getEnv("AUTH_PASSWORD_HASH", defaultPasswordHash),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Prefix: getEnv("S3_PREFIX", "catalog/"),
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Catalog.Source {
	case SourceFile, SourceS3, SourcePostgres:
	default:
		return fmt.Errorf("invalid catalog source: %s (must be file, s3, or postgres)", c.Catalog.Source)
	}

	if c.Catalog.Source != SourcePostgres && c.Catalog.DataDir == "" {
		return fmt.Errorf("catalog data directory is required")
	}

	if c.Catalog.SimilarLimit < 1 {
		return fmt.Errorf("catalog similar limit must be at least 1")
	}

	if c.Catalog.Source == SourceS3 {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when catalog source is s3")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when catalog source is s3")
		}
	}

	if c.Catalog.Source == SourcePostgres {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if c.Auth.Username == "" || c.Auth.PasswordHash == "" {
		return fmt.Errorf("auth username and password hash are required")
	}

	return c.Logger.Validate()
}

// ValidateSeeder validates the subset of settings the seeder uses.
func (c *Config) ValidateSeeder() error {
	if c.Catalog.DataDir == "" {
		return fmt.Errorf("catalog data directory is required")
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}

	return c.Logger.Validate()
}

// Validate validates the logger settings.
func (c *LoggerConfig) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}

	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Format)
	}

	return nil
}

// Validate validates the database settings.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

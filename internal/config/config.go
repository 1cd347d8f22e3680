package config

import (
	"fmt"
	"os"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// Administrator credential and token signing
	Auth AuthConfig `json:"auth"`

	// Object storage (uploads)
	Storage StorageConfig `json:"storage"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port        string `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// AuthConfig contains the single administrator record and the JWT secret.
// AdminPassword may be either a bcrypt hash or a plaintext value; see
// common.VerifyCredential.
type AuthConfig struct {
	AdminUsername string `json:"admin_username"`
	AdminPassword string `json:"-"`
	JWTSecret     string `json:"-"`
}

// StorageConfig contains object storage configuration for upload URLs
type StorageConfig struct {
	Bucket        string `json:"bucket"`
	Region        string `json:"region"`
	PublicBaseURL string `json:"public_base_url"` // optional, derived from bucket/region when empty
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

// Load builds the configuration from environment variables. godotenv is
// loaded by main before this runs.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("SERVER_PORT", "8080"),
			Host:        getEnvOrDefault("SERVER_HOST", ""),
			Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "gocms_user"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "gocms_db"),
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Auth: AuthConfig{
			AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", ""),
			JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
		},
		Storage: StorageConfig{
			Bucket:        getEnvOrDefault("S3_BUCKET", ""),
			Region:        getEnvOrDefault("AWS_REGION", "us-east-1"),
			PublicBaseURL: getEnvOrDefault("S3_PUBLIC_BASE_URL", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sequence scope values for system code generation.
const (
	// CodeScopeHouse counts every system in the house, regardless of type.
	// This matches the historical behavior of the dataset.
	CodeScopeHouse = "house"
	// CodeScopeType counts only systems of the same type within the house.
	CodeScopeType = "type"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Auth     AuthConfig
	Images   ImageConfig
	Codes    CodeConfig
	Locale   string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	PoolMin  int
	PoolMax  int
}

// RedisConfig holds the optional house-name cache configuration.
// An empty Addr disables the cache; names are then resolved from the store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// AuthConfig holds the static API token gate. When Token is empty the API
// is open; the server only distinguishes signed-in from absent.
type AuthConfig struct {
	Token string
}

// ImageConfig holds the external image host settings. UploadURL is the
// unsigned upload endpoint; Preset is sent alongside the file.
type ImageConfig struct {
	UploadURL string
	Preset    string
}

// CodeConfig holds system code generation settings.
type CodeConfig struct {
	// SequenceScope decides what the per-house counter counts:
	// "house" (all systems in the house) or "type" (same-type systems only).
	SequenceScope string
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "homekeep")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_POOL_MIN", 2)
	v.SetDefault("DB_POOL_MAX", 10)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("IMAGE_UPLOAD_URL", "")
	v.SetDefault("IMAGE_UPLOAD_PRESET", "")
	v.SetDefault("CODE_SEQUENCE_SCOPE", CodeScopeHouse)
	v.SetDefault("LOCALE", "ca")

	// Bind environment variables
	v.AutomaticEnv()

	// Build configuration
	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			PoolMin:  v.GetInt("DB_POOL_MIN"),
			PoolMax:  v.GetInt("DB_POOL_MAX"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
		Auth: AuthConfig{
			Token: v.GetString("API_TOKEN"),
		},
		Images: ImageConfig{
			UploadURL: v.GetString("IMAGE_UPLOAD_URL"),
			Preset:    v.GetString("IMAGE_UPLOAD_PRESET"),
		},
		Codes: CodeConfig{
			SequenceScope: v.GetString("CODE_SEQUENCE_SCOPE"),
		},
		Locale: v.GetString("LOCALE"),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	// Validate database config
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Port == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.PoolMin < 0 {
		return fmt.Errorf("DB_POOL_MIN must be non-negative")
	}
	if c.Database.PoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be at least 1")
	}
	if c.Database.PoolMin > c.Database.PoolMax {
		return fmt.Errorf("DB_POOL_MIN must be less than or equal to DB_POOL_MAX")
	}

	// Validate CORS config
	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	// Validate code generation config
	if c.Codes.SequenceScope != CodeScopeHouse && c.Codes.SequenceScope != CodeScopeType {
		return fmt.Errorf("CODE_SEQUENCE_SCOPE must be %q or %q", CodeScopeHouse, CodeScopeType)
	}

	if c.Locale == "" {
		return fmt.Errorf("LOCALE is required")
	}

	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

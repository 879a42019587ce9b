package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment  string
	Port         string
	Log          LogConfig
	Store        StoreConfig
	RateLimit    RateLimitConfig
	MaxBodyBytes int64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// StoreConfig holds record store configuration
type StoreConfig struct {
	Type       string // "memory", "sqlite" or "dynamo"
	Table      string
	Region     string
	SQLitePath string
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("STORE_TYPE", "sqlite")
	viper.SetDefault("STORE_TABLE", "products")
	viper.SetDefault("STORE_SQLITE_PATH", "./data/products.db")
	viper.SetDefault("RATE_LIMIT_RPS", 100.0)
	viper.SetDefault("RATE_LIMIT_BURST", 200)
	viper.SetDefault("MAX_BODY_BYTES", 1<<20)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Store: StoreConfig{
			Type:       viper.GetString("STORE_TYPE"),
			Table:      viper.GetString("STORE_TABLE"),
			Region:     viper.GetString("AWS_REGION"),
			SQLitePath: viper.GetString("STORE_SQLITE_PATH"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		MaxBodyBytes: viper.GetInt64("MAX_BODY_BYTES"),
	}

	return config, nil
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	switch c.Store.Type {
	case "memory", "sqlite", "dynamo":
	default:
		return fmt.Errorf("unsupported store type: %s", c.Store.Type)
	}

	if c.Store.Type == "sqlite" && c.Store.SQLitePath == "" {
		return fmt.Errorf("sqlite path cannot be empty")
	}

	if c.Store.Type == "dynamo" && c.Store.Table == "" {
		return fmt.Errorf("store table cannot be empty")
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}

	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("max body bytes must be at least 1")
	}

	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

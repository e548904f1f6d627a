package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Master   MasterAdminConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// UploadConfig holds image upload settings
type UploadConfig struct {
	Dir           string
	BaseURL       string
	MaxFileSize   int64
	MaxImageWidth int
	JPEGQuality   int
}

// MasterAdminConfig identifies the distinguished, non-blockable admin
// account seeded at startup.
type MasterAdminConfig struct {
	Name     string
	Email    string
	Password string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "newsorbit"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Upload: UploadConfig{
			Dir:           getEnv("UPLOAD_DIR", "./data/uploads"),
			BaseURL:       getEnv("UPLOAD_BASE_URL", "/uploads"),
			MaxFileSize:   getInt64Env("MAX_UPLOAD_SIZE", 5*1024*1024),
			MaxImageWidth: getIntEnv("MAX_IMAGE_WIDTH", 1000),
			JPEGQuality:   getIntEnv("JPEG_QUALITY", 70),
		},
		Master: MasterAdminConfig{
			Name:     getEnv("MASTER_ADMIN_NAME", "Newsorbit Admin"),
			Email:    getEnv("MASTER_ADMIN_EMAIL", "admin@newsorbit.in"),
			Password: getEnv("MASTER_ADMIN_PASSWORD", "ChangeMe123!"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Master.Email == "" {
		return fmt.Errorf("MASTER_ADMIN_EMAIL is required")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

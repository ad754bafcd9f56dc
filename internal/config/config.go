// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Content sources
const (
	ContentSourceYAML  = "yaml"
	ContentSourceMySQL = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Site     SiteConfig
	Content  ContentConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string
	Format string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// SiteConfig holds settings of the rendered site
type SiteConfig struct {
	BasePath     string
	TotalModules int
	AssetsDir    string
	ExportDir    string
}

// ContentConfig selects where module content is read from
type ContentConfig struct {
	Source string
	File   string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	// Logging configuration
	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")
	cfg.Logging.Format = stringEnv("LOG_FORMAT", "json")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Site configuration
	cfg.Site.BasePath = os.Getenv("SITE_BASE_PATH")
	if cfg.Site.BasePath == "" {
		cfg.Site.BasePath = os.Getenv("NEXT_PUBLIC_BASE_PATH")
	}
	if cfg.Site.TotalModules, err = intEnv("TOTAL_MODULES", 12); err != nil {
		return nil, err
	}
	if cfg.Site.TotalModules <= 0 {
		return nil, fmt.Errorf("TOTAL_MODULES must be positive")
	}
	cfg.Site.AssetsDir = stringEnv("ASSETS_DIR", "public")
	cfg.Site.ExportDir = stringEnv("EXPORT_DIR", "out")

	// Content configuration
	cfg.Content.Source = strings.ToLower(stringEnv("CONTENT_SOURCE", ContentSourceYAML))
	cfg.Content.File = os.Getenv("CONTENT_FILE")
	switch cfg.Content.Source {
	case ContentSourceYAML:
	case ContentSourceMySQL:
		if err := loadDatabase(&cfg.Database); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid CONTENT_SOURCE: %s, must be '%s' or '%s'", cfg.Content.Source, ContentSourceYAML, ContentSourceMySQL)
	}

	return cfg, nil
}

// loadDatabase reads the DB_* variables, all of which are required
func loadDatabase(db *DatabaseConfig) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	db.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	db.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	db.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	db.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	db.DBName = dbName

	return nil
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// parseOrigins splits a comma-separated origin list; an empty list allows all origins
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// DSN returns the database connection string.
// multiStatements is required by the migration files.
func (c *Config) DSN() string {
	if c.Database.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

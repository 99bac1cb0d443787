package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"discoteca/internal/audiodb"
)

// Config holds all application configuration
type Config struct {
	// Upstream API configuration
	AudioDB AudioDBConfig

	// Server configuration
	Server ServerConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Logging LoggingConfig

	// HomeArtistID is the example artist whose artwork decorates the home page.
	HomeArtistID string
}

// AudioDBConfig holds upstream API settings
type AudioDBConfig struct {
	APIKey    string
	RootURL   string
	Timeout   time.Duration
	CacheSize int
}

// BaseURL is the API root with the key segment appended.
func (c AudioDBConfig) BaseURL() string {
	return audiodb.BaseURL(c.RootURL, c.APIKey)
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// Addr is the listen address of the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

const (
	defaultAPIKey       = "123"
	defaultPort         = "5000"
	defaultHomeArtistID = "111239"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	if err := cfg.loadAudioDB(); err != nil {
		return nil, fmt.Errorf("load audiodb config: %w", err)
	}

	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}

	cfg.loadCORS()
	cfg.loadLogging()
	cfg.HomeArtistID = getEnvOrDefault("HOME_ARTIST_ID", defaultHomeArtistID)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadAudioDB() error {
	c.AudioDB.APIKey = getEnvOrDefault("AUDIO_DB_KEY", defaultAPIKey)
	c.AudioDB.RootURL = getEnvOrDefault("AUDIO_DB_BASE_URL", audiodb.DefaultBaseURL)

	timeout, err := time.ParseDuration(getEnvOrDefault("UPSTREAM_TIMEOUT", audiodb.DefaultTimeout.String()))
	if err != nil {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	c.AudioDB.Timeout = timeout

	size, err := strconv.Atoi(getEnvOrDefault("CACHE_SIZE", strconv.Itoa(audiodb.DefaultCacheSize)))
	if err != nil {
		return fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}
	c.AudioDB.CacheSize = size

	return nil
}

func (c *Config) loadServer() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", defaultPort))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")
	return nil
}

func (c *Config) loadCORS() {
	c.CORS.AllowedOrigins = parseAllowedOrigins(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", "json")
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.AudioDB.APIKey) == "" {
		errors = append(errors, "AUDIO_DB_KEY must not be blank")
	}
	if !strings.HasPrefix(c.AudioDB.RootURL, "http://") && !strings.HasPrefix(c.AudioDB.RootURL, "https://") {
		errors = append(errors, "AUDIO_DB_BASE_URL must be an http(s) URL")
	}
	if c.AudioDB.Timeout <= 0 {
		errors = append(errors, "UPSTREAM_TIMEOUT must be positive")
	}
	if c.AudioDB.CacheSize < 1 {
		errors = append(errors, "CACHE_SIZE must be at least 1")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	if strings.TrimSpace(c.HomeArtistID) == "" {
		errors = append(errors, "HOME_ARTIST_ID must not be blank")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseAllowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	var origins []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

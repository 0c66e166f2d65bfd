package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode string
	Client  ClientConfig
	Stub    StubConfig
	JWT     JWTConfig
}

// ClientConfig holds settings for the API client and CLI
type ClientConfig struct {
	APIURL         string
	TimeoutSeconds int
	StateDir       string
}

// StubConfig holds settings for the development stub backend
type StubConfig struct {
	Port   string
	DBPath string
}

// JWTConfig holds token settings for the stub backend
type JWTConfig struct {
	Secret     string
	TokenHours int
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode: appMode,
		Client:  loadClientConfig(),
		Stub:    loadStubConfig(),
		JWT:     loadJWTConfig(),
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadClientConfig loads API client settings
func loadClientConfig() ClientConfig {
	timeout, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "10"))
	if timeout <= 0 {
		timeout = 10
	}

	return ClientConfig{
		APIURL:         strings.TrimRight(getEnv("API_URL", "http://localhost:3000"), "/"),
		TimeoutSeconds: timeout,
		StateDir:       getEnv("STATE_DIR", defaultStateDir()),
	}
}

// loadStubConfig loads stub backend settings
func loadStubConfig() StubConfig {
	return StubConfig{
		Port:   getEnv("PORT", "3000"),
		DBPath: getEnv("STUB_DB_PATH", "nautica-stub.db"),
	}
}

// loadJWTConfig loads JWT settings for the stub backend
func loadJWTConfig() JWTConfig {
	hours, _ := strconv.Atoi(getEnv("TOKEN_HOURS", "24"))
	if hours <= 0 {
		hours = 24
	}

	return JWTConfig{
		Secret:     getEnv("JWT_SECRET", "default_secret"),
		TokenHours: hours,
	}
}

// defaultStateDir returns the default directory for persisted sessions
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nautica"
	}
	return filepath.Join(home, ".nautica")
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS on the stub backend
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		return "*"
	}
	return origins
}

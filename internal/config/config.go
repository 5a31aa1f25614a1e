// Package config loads service configuration from environment variables.
// A .env file in the working directory is honored when present; real
// environment variables always win over file values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Weather holds configuration for the weather API service. Variables use the
// WEATHER_API_ prefix.
type Weather struct {
	Host        string
	Port        string
	Environment string
	LogLevel    string

	CORSOrigins []string

	// RateLimitPerMinute is accepted from the environment but nothing
	// enforces it; rate limiting is deliberately unimplemented.
	RateLimitPerMinute int

	EnableMockData    bool
	MockResponseDelay time.Duration

	ShutdownTimeout time.Duration
}

// PetManager holds configuration for the pet manager service. Variables use
// the PETS_ prefix.
type PetManager struct {
	AppName  string
	Version  string
	Host     string
	Port     string
	LogLevel string

	SecretKey   string
	TokenExpiry time.Duration
	RequireAuth bool

	CORSOrigins []string
	APIPrefix   string

	ShutdownTimeout time.Duration
}

// LoadDotenv loads a .env file from the working directory if one exists.
// Call once from main before reading config.
func LoadDotenv() {
	_ = godotenv.Load()
}

// LoadWeather reads weather API configuration from the environment.
func LoadWeather() (*Weather, error) {
	cfg := &Weather{
		Host:               envString("WEATHER_API_HOST", "0.0.0.0"),
		Port:               envString("WEATHER_API_PORT", "8000"),
		Environment:        envString("WEATHER_API_ENVIRONMENT", "development"),
		LogLevel:           envString("WEATHER_API_LOG_LEVEL", "INFO"),
		CORSOrigins:        envList("WEATHER_API_CORS_ORIGINS", []string{"*"}),
		RateLimitPerMinute: envInt("WEATHER_API_RATE_LIMIT_REQUESTS_PER_MINUTE", 100),
		EnableMockData:     envBool("WEATHER_API_ENABLE_MOCK_DATA", true),
		ShutdownTimeout:    envDuration("WEATHER_API_SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	delayMS := envInt("WEATHER_API_MOCK_RESPONSE_DELAY_MS", 0)
	if delayMS < 0 {
		delayMS = 0
	}
	cfg.MockResponseDelay = time.Duration(delayMS) * time.Millisecond

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("WEATHER_API_PORT: %w", err)
	}
	switch cfg.Environment {
	case "development", "staging", "production":
	default:
		return nil, fmt.Errorf("WEATHER_API_ENVIRONMENT must be development, staging or production, got %q", cfg.Environment)
	}
	return cfg, nil
}

// LoadPetManager reads pet manager configuration from the environment.
func LoadPetManager() (*PetManager, error) {
	cfg := &PetManager{
		AppName:         envString("PETS_APP_NAME", "Users & Pets API"),
		Version:         envString("PETS_VERSION", "1.0.0"),
		Host:            envString("PETS_HOST", "0.0.0.0"),
		Port:            envString("PETS_PORT", "8001"),
		LogLevel:        envString("PETS_LOG_LEVEL", "INFO"),
		SecretKey:       envString("PETS_SECRET_KEY", "your-secret-key-change-in-production"),
		TokenExpiry:     envDuration("PETS_ACCESS_TOKEN_EXPIRE", 30*time.Minute),
		RequireAuth:     envBool("PETS_REQUIRE_AUTH", false),
		CORSOrigins:     envList("PETS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"}),
		APIPrefix:       envString("PETS_API_PREFIX", "/api/v1"),
		ShutdownTimeout: envDuration("PETS_SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("PETS_PORT: %w", err)
	}
	if !strings.HasPrefix(cfg.APIPrefix, "/") {
		return nil, fmt.Errorf("PETS_API_PREFIX must start with /, got %q", cfg.APIPrefix)
	}
	if cfg.RequireAuth && strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, fmt.Errorf("PETS_SECRET_KEY required when PETS_REQUIRE_AUTH is enabled")
	}
	return cfg, nil
}

func envString(key, defaultVal string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	return v
}

func envInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func envBool(key string, defaultVal bool) bool {
	switch strings.TrimSpace(strings.ToLower(os.Getenv(key))) {
	case "1", "t", "true", "yes", "on":
		return true
	case "0", "f", "false", "no", "off":
		return false
	default:
		return defaultVal
	}
}

// envDuration parses a Go duration string, falling back to defaultVal on
// empty, malformed, or non-positive input.
func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

// envList parses a comma-separated list, trimming blanks.
func envList(key string, defaultVal []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("must be a port number, got %q", port)
	}
	return nil
}

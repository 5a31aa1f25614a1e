package config

import (
	"testing"
	"time"
)

// TestLoadWeather_Defaults verifies defaults with a clean environment.
func TestLoadWeather_Defaults(t *testing.T) {
	cfg, err := LoadWeather()
	if err != nil {
		t.Fatalf("LoadWeather: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Fatalf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.MockResponseDelay != 0 {
		t.Fatalf("MockResponseDelay = %v, want 0", cfg.MockResponseDelay)
	}
	if cfg.RateLimitPerMinute != 100 {
		t.Fatalf("RateLimitPerMinute = %d, want 100", cfg.RateLimitPerMinute)
	}
	if !cfg.EnableMockData {
		t.Fatal("EnableMockData should default to true")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

// TestLoadWeather_EnvOverrides verifies environment variables win over
// defaults.
func TestLoadWeather_EnvOverrides(t *testing.T) {
	t.Setenv("WEATHER_API_PORT", "9100")
	t.Setenv("WEATHER_API_ENVIRONMENT", "production")
	t.Setenv("WEATHER_API_MOCK_RESPONSE_DELAY_MS", "250")
	t.Setenv("WEATHER_API_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWeather()
	if err != nil {
		t.Fatalf("LoadWeather: %v", err)
	}
	if cfg.Port != "9100" {
		t.Fatalf("Port = %q, want 9100", cfg.Port)
	}
	if cfg.Environment != "production" {
		t.Fatalf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.MockResponseDelay != 250*time.Millisecond {
		t.Fatalf("MockResponseDelay = %v, want 250ms", cfg.MockResponseDelay)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

// TestLoadWeather_Invalid verifies validation failures.
func TestLoadWeather_Invalid(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("WEATHER_API_PORT", "not-a-port")
		if _, err := LoadWeather(); err == nil {
			t.Fatal("expected error for bad port")
		}
	})
	t.Run("bad environment", func(t *testing.T) {
		t.Setenv("WEATHER_API_ENVIRONMENT", "qa")
		if _, err := LoadWeather(); err == nil {
			t.Fatal("expected error for bad environment")
		}
	})
	t.Run("negative delay clamps to zero", func(t *testing.T) {
		t.Setenv("WEATHER_API_MOCK_RESPONSE_DELAY_MS", "-5")
		cfg, err := LoadWeather()
		if err != nil {
			t.Fatalf("LoadWeather: %v", err)
		}
		if cfg.MockResponseDelay != 0 {
			t.Fatalf("MockResponseDelay = %v, want 0", cfg.MockResponseDelay)
		}
	})
}

// TestLoadPetManager_Defaults verifies defaults with a clean environment.
func TestLoadPetManager_Defaults(t *testing.T) {
	cfg, err := LoadPetManager()
	if err != nil {
		t.Fatalf("LoadPetManager: %v", err)
	}
	if cfg.Port != "8001" {
		t.Fatalf("Port = %q, want 8001", cfg.Port)
	}
	if cfg.APIPrefix != "/api/v1" {
		t.Fatalf("APIPrefix = %q, want /api/v1", cfg.APIPrefix)
	}
	if cfg.RequireAuth {
		t.Fatal("RequireAuth should default to false")
	}
	if cfg.TokenExpiry != 30*time.Minute {
		t.Fatalf("TokenExpiry = %v, want 30m", cfg.TokenExpiry)
	}
}

// TestLoadPetManager_Validation verifies prefix and auth-secret checks.
func TestLoadPetManager_Validation(t *testing.T) {
	t.Run("prefix must be rooted", func(t *testing.T) {
		t.Setenv("PETS_API_PREFIX", "api/v1")
		if _, err := LoadPetManager(); err == nil {
			t.Fatal("expected error for unrooted prefix")
		}
	})
	t.Run("auth toggle", func(t *testing.T) {
		t.Setenv("PETS_REQUIRE_AUTH", "true")
		cfg, err := LoadPetManager()
		if err != nil {
			t.Fatalf("LoadPetManager: %v", err)
		}
		if !cfg.RequireAuth {
			t.Fatal("RequireAuth should be true")
		}
	})
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"on", true},
		{"false", false},
		{"off", false},
		{"banana", true}, // falls back to default
	}
	for _, tc := range tests {
		t.Setenv("PETWEATHER_TEST_BOOL", tc.val)
		if got := envBool("PETWEATHER_TEST_BOOL", true); got != tc.want {
			t.Fatalf("envBool(%q) = %v, want %v", tc.val, got, tc.want)
		}
	}
}

package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_PASSWORD", "API_PORT"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		if cfg.DBHost != "localhost" {
			t.Errorf("expected default db host, got %s", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("expected default db port, got %d", cfg.DBPort)
		}
		if cfg.DBPassword != "changeme" {
			t.Errorf("expected fallback db password, got %s", cfg.DBPassword)
		}
		if cfg.APIPort != 3001 {
			t.Errorf("expected default api port, got %d", cfg.APIPort)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "10.1.1.5")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_PASSWORD", "s3cret")
		t.Setenv("API_PORT", "8090")

		cfg := Load()

		if cfg.DBHost != "10.1.1.5" {
			t.Errorf("expected overridden db host, got %s", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("expected overridden db port, got %d", cfg.DBPort)
		}
		if cfg.DBPassword != "s3cret" {
			t.Errorf("expected overridden db password, got %s", cfg.DBPassword)
		}
		if cfg.APIPort != 8090 {
			t.Errorf("expected overridden api port, got %d", cfg.APIPort)
		}
	})

	t.Run("malformed int falls back", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		t.Setenv("DB_PASSWORD", "x")

		cfg := Load()

		if cfg.DBPort != 5432 {
			t.Errorf("expected default port for malformed value, got %d", cfg.DBPort)
		}
	})
}

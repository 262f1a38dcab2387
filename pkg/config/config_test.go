package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PRECIOSA_AUTH_JWTSECRET", "test-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Storage.SQLitePath != "./data/preciosa.db" {
		t.Errorf("Unexpected default sqlite path: %s", cfg.Storage.SQLitePath)
	}
	if cfg.Storage.PostgresURL != "" {
		t.Errorf("Expected remote backend unconfigured by default, got %s", cfg.Storage.PostgresURL)
	}
	if cfg.Storage.ProbeTimeout() != 5*time.Second {
		t.Errorf("Expected 5s probe timeout, got %s", cfg.Storage.ProbeTimeout())
	}
	if cfg.Auth.TokenDuration() != 24*time.Hour {
		t.Errorf("Expected 24h token duration, got %s", cfg.Auth.TokenDuration())
	}
	if cfg.History.SurfaceReadErrors {
		t.Error("Expected read errors to be swallowed by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("PRECIOSA_AUTH_JWTSECRET", "test-secret")

	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
server:
  port: 9090
storage:
  postgresURL: postgres://localhost:5432/preciosa
history:
  surfaceReadErrors: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Storage.PostgresURL != "postgres://localhost:5432/preciosa" {
		t.Errorf("Unexpected postgres URL: %s", cfg.Storage.PostgresURL)
	}
	if !cfg.History.SurfaceReadErrors {
		t.Error("Expected surfaceReadErrors true from file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PRECIOSA_AUTH_JWTSECRET", "test-secret")
	t.Setenv("PRECIOSA_SERVER_PORT", "7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Expected env port 7070, got %d", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	t.Run("Missing JWT secret", func(t *testing.T) {
		_, err := Load("")
		if err == nil {
			t.Error("Expected error without JWT secret, got nil")
		}
	})

	t.Run("Out-of-range port", func(t *testing.T) {
		cfg := &Configuration{
			Server:  ServerConfig{Port: 70000},
			Storage: StorageConfig{ProbeTimeoutSeconds: 5},
			Auth:    AuthConfig{JWTSecret: "secret"},
		}
		if err := cfg.Validate(); err == nil {
			t.Error("Expected error for out-of-range port, got nil")
		}
	})

	t.Run("Non-positive probe timeout", func(t *testing.T) {
		cfg := &Configuration{
			Server:  ServerConfig{Port: 8080},
			Storage: StorageConfig{ProbeTimeoutSeconds: 0},
			Auth:    AuthConfig{JWTSecret: "secret"},
		}
		if err := cfg.Validate(); err == nil {
			t.Error("Expected error for zero probe timeout, got nil")
		}
	})
}

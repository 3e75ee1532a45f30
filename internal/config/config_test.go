package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "homefinder")
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DOCUMENT_STORE_DRIVER", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("REDIS_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Driver != StoreDriverPostgres {
		t.Fatalf("expected postgres driver, got %q", cfg.Store.Driver)
	}
	if cfg.JWT.ExpiresIn != 24*time.Hour {
		t.Fatalf("expected 24h expiry, got %s", cfg.JWT.ExpiresIn)
	}
	if cfg.Redis.Port != "6379" {
		t.Fatalf("expected default redis port, got %q", cfg.Redis.Port)
	}
	if cfg.App.MigrationsDir != "" {
		t.Fatalf("expected embedded migrations by default, got %q", cfg.App.MigrationsDir)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment")
	}
}

func TestLoad_MigrationsDirOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("MIGRATIONS_DIR", " ./db/migrations ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.MigrationsDir != "./db/migrations" {
		t.Fatalf("unexpected migrations dir %q", cfg.App.MigrationsDir)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cases := map[string]bool{
		"development": true,
		"DEV":         true,
		"local":       true,
		"production":  false,
		"staging":     false,
		"":            false,
	}
	for env, want := range cases {
		cfg := Config{App: AppConfig{Environment: env}}
		if got := cfg.IsDevelopment(); got != want {
			t.Fatalf("IsDevelopment(%q) = %v, want %v", env, got, want)
		}
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP_PORT") || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected both keys reported, got %v", err)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("DOCUMENT_STORE_DRIVER", "mongo")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}

func TestLoad_RedisDriverAndDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("DOCUMENT_STORE_DRIVER", "Redis")
	t.Setenv("JWT_EXPIRES_IN", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Driver != StoreDriverRedis {
		t.Fatalf("expected redis driver, got %q", cfg.Store.Driver)
	}
	if cfg.JWT.ExpiresIn != 90*time.Minute {
		t.Fatalf("expected 90m, got %s", cfg.JWT.ExpiresIn)
	}
}

package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// unsetEnv removes a variable for the duration of the test, restoring any
// value the outer environment may have had.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if orig, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, orig) })
	}
	os.Unsetenv(key)
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "taskall")
	t.Setenv("JWT_SECRET", "test-signing-key")
}

func clearOptional(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_POOL_SIZE",
		"JWT_TOKEN_DURATION", "PORT", "CORS_ALLOWED_ORIGINS",
	} {
		unsetEnv(t, key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)
	clearOptional(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("unexpected DB defaults: %s:%d", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.DB.MaxSize != 10 {
		t.Errorf("got pool size %d, want 10", cfg.DB.MaxSize)
	}
	if cfg.Auth.TokenDuration != 4*time.Hour {
		t.Errorf("got token duration %v, want 4h", cfg.Auth.TokenDuration)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("got port %q, want 3000", cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("got origins %v, want [*]", cfg.Server.AllowedOrigins)
	}
}

func TestLoadConfig_MissingJWTSecret(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	unsetEnv(t, "JWT_SECRET")

	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
}

func TestLoadConfig_CollectsAllErrors(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	unsetEnv(t, "DB_USER")
	unsetEnv(t, "DB_PASSWORD")

	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected error for missing variables")
	}
	for _, name := range []string{"DB_USER", "DB_PASSWORD"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("aggregated error should mention %s, got: %v", name, err)
		}
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	t.Setenv("JWT_TOKEN_DURATION", "four hours")

	_, err := LoadConfig()
	if err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}

func TestLoadConfig_OriginsList(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://app.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	want := []string{"http://localhost:5173", "https://app.example.com"}
	if len(cfg.Server.AllowedOrigins) != len(want) {
		t.Fatalf("got %v, want %v", cfg.Server.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.Server.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: got %q, want %q", i, cfg.Server.AllowedOrigins[i], want[i])
		}
	}
}

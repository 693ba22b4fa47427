package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("expected development, got %q", cfg.Server.Env)
	}
	if cfg.Database.Namespace != "fieldday" {
		t.Errorf("expected namespace fieldday, got %q", cfg.Database.Namespace)
	}
	if cfg.JWT.ExpirationMins != 15 {
		t.Errorf("expected 15 minute expiration, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.JWT.RefreshDuration != 30*24*time.Hour {
		t.Errorf("expected 30 day refresh, got %v", cfg.JWT.RefreshDuration)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("defaults must be development mode")
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRATION_MINS", "30")
	t.Setenv("JWT_REFRESH_DURATION", "168h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected db.internal, got %q", cfg.Database.Host)
	}
	if cfg.JWT.ExpirationMins != 30 {
		t.Errorf("expected 30, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.JWT.RefreshDuration != 168*time.Hour {
		t.Errorf("expected 168h, got %v", cfg.JWT.RefreshDuration)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_InvalidInt_FallsBackToDefault(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.JWT.ExpirationMins != 15 {
		t.Errorf("expected default 15, got %d", cfg.JWT.ExpirationMins)
	}
}

func TestValidate_Defaults_OK(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestValidate_BadEnv(t *testing.T) {
	t.Setenv("SERVER_ENV", "staging")

	cfg, _ := Load()
	err := cfg.Validate()

	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected SERVER_ENV in error, got %v", err)
	}
}

func TestValidate_ProductionRequiresKeyPaths(t *testing.T) {
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "")

	cfg, _ := Load()
	// getEnv treats empty as unset, so clear it after loading.
	cfg.JWT.PrivateKeyPath = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "JWT_PRIVATE_KEY_PATH") {
		t.Errorf("expected JWT_PRIVATE_KEY_PATH in error, got %v", err)
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg, _ := Load()
	cfg.Server.Port = ""
	cfg.Database.Host = ""
	cfg.JWT.ExpirationMins = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"SERVER_PORT", "DB_HOST", "JWT_EXPIRATION_MINS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %s in joined error, got %v", want, err)
		}
	}
}

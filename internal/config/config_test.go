package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "biblio",
			Database:  "main",
		},
		JWT: JWTConfig{
			Secret:         "development-secret",
			ExpirationMins: 15,
			Issuer:         "biblio.forgo.software",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := validBaseConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingJWTSecret(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.Secret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("expected error to mention JWT_SECRET, got: %v", err)
	}
}

func TestConfig_Validate_ShortSecretInProduction(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "production"
	cfg.JWT.Secret = "short"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for short production secret")
	}
	if !strings.Contains(err.Error(), "32 bytes") {
		t.Errorf("expected error to mention the length requirement, got: %v", err)
	}
}

func TestConfig_Validate_CollectsMultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Database.Host = ""
	cfg.JWT.ExpirationMins = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"SERVER_PORT", "DB_HOST", "JWT_EXPIRATION_MINS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected joined error to mention %s, got: %v", want, err)
		}
	}
}

func TestConfig_Validate_AdminFieldsTogether(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Admin.Username = "admin"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when only ADMIN_USERNAME is set")
	}
	if !strings.Contains(err.Error(), "ADMIN_USERNAME") {
		t.Errorf("expected error to mention the admin pair, got: %v", err)
	}

	cfg.Admin.Password = "supersecret1"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config with both admin fields, got: %v", err)
	}
}

func TestConfig_Load_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Namespace != "biblio" {
		t.Errorf("expected default namespace biblio, got %s", cfg.Database.Namespace)
	}
	if cfg.JWT.ExpirationMins != 15 {
		t.Errorf("expected default expiration 15, got %d", cfg.JWT.ExpirationMins)
	}
}

func TestDatabaseConfig_Endpoint(t *testing.T) {
	d := DatabaseConfig{Host: "db.internal", Port: "8000"}
	if got := d.Endpoint(); got != "ws://db.internal:8000" {
		t.Errorf("expected ws endpoint, got %s", got)
	}
}

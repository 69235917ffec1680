package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// limpia las vars que Load mira para que el entorno del runner no interfiera
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "SERVER_ADDR", "PORT", "SERVER_CORS_ALLOWED_ORIGINS",
		"MONGO_URI", "MONGO_DATABASE", "DB_NAME", "JWT_SECRET",
		"JWT_ACCESS_TTL", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "passcode_test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Storage.Mongo.Database != "passcode_test" {
		t.Errorf("Database = %q", cfg.Storage.Mongo.Database)
	}
	if cfg.AccessTTL() != 24*time.Hour {
		t.Errorf("AccessTTL = %v, want default 24h", cfg.AccessTTL())
	}
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
server:
  addr: ":8081"
  cors_allowed_origins: ["http://localhost:5173"]
storage:
  mongo:
    uri: mongodb://file-host:27017
    database: fromfile
jwt:
  secret: file-secret
  access_ttl: 1h
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MONGO_URI", "mongodb://env-host:27017")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Storage.Mongo.URI != "mongodb://env-host:27017" {
		t.Errorf("env must win over yaml, got %q", cfg.Storage.Mongo.URI)
	}
	if cfg.Storage.Mongo.Database != "fromfile" {
		t.Errorf("Database = %q, want fromfile", cfg.Storage.Mongo.Database)
	}
	if cfg.AccessTTL() != time.Hour {
		t.Errorf("AccessTTL = %v, want 1h", cfg.AccessTTL())
	}
	if len(cfg.Server.CORSAllowedOrigins) != 1 {
		t.Errorf("CORSAllowedOrigins = %v", cfg.Server.CORSAllowedOrigins)
	}
}

func TestLoad_FailFast(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"missing uri", map[string]string{"DB_NAME": "x", "JWT_SECRET": "y"}},
		{"missing database", map[string]string{"MONGO_URI": "mongodb://h", "JWT_SECRET": "y"}},
		{"missing secret", map[string]string{"MONGO_URI": "mongodb://h", "DB_NAME": "x"}},
		{"bad ttl", map[string]string{"MONGO_URI": "mongodb://h", "DB_NAME": "x", "JWT_SECRET": "y", "JWT_ACCESS_TTL": "un rato"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

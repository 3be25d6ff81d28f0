package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
database:
  host: db.local
  port: 5432
  user: app
  password: secret
  dbname: travel
  sslmode: require
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}

	want := "host=db.local port=5432 user=app password=secret dbname=travel sslmode=require"
	if got := cfg.Database.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestLoadSecretsFromEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
llm:
  model: gemini-pro
`)

	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("GEMINI_API_KEY", "envkey")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Password != "envpass" {
		t.Errorf("db password = %q, want env value", cfg.Database.Password)
	}
	if cfg.LLM.APIKey != "envkey" {
		t.Errorf("llm api key = %q, want env value", cfg.LLM.APIKey)
	}
}

func TestLoadFileValueWinsOverEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  password: filepass
`)

	t.Setenv("DB_PASSWORD", "envpass")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Password != "filepass" {
		t.Errorf("db password = %q, want file value", cfg.Database.Password)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

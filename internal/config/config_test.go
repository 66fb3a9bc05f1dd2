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
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Fatalf("default port should be 5000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("default driver should be sqlite, got %q", cfg.Database.Driver)
	}
	if cfg.Generation.MinCount != 5 || cfg.Generation.MaxCount != 25 {
		t.Fatalf("generation defaults off: %+v", cfg.Generation)
	}
	if cfg.RateLimit.WindowMinutes != 15 || cfg.RateLimit.MaxRequests != 100 {
		t.Fatalf("rate limit defaults off: %+v", cfg.RateLimit)
	}
	if cfg.AI.BaseURL == "" || cfg.Search.BaseURL == "" {
		t.Fatalf("provider base urls should default: %+v %+v", cfg.AI, cfg.Search)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  driver: mysql
  host: db.internal
  port: 3306
  user: app
  password: secret
  dbname: wms
  charset: utf8mb4
generation:
  min_count: 3
  max_count: 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port override lost: %d", cfg.Server.Port)
	}
	if cfg.Generation.MinCount != 3 || cfg.Generation.MaxCount != 50 {
		t.Fatalf("generation override lost: %+v", cfg.Generation)
	}

	dsn := cfg.Database.DSN()
	want := "app:secret@tcp(db.internal:3306)/wms?charset=utf8mb4&parseTime=True&loc=UTC"
	if dsn != want {
		t.Fatalf("dsn mismatch:\n got %s\nwant %s", dsn, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing config file must error")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/logic"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smlogic.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.Driver != "sqlite" {
		t.Errorf("Catalog.Driver = %q, want sqlite", cfg.Catalog.Driver)
	}
	if cfg.Preset != "" {
		t.Errorf("Preset = %q, want empty", cfg.Preset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/smlogic.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Catalog.SQLitePath != "data/catalog.db" {
		t.Errorf("expected default sqlite path, got %q", cfg.Catalog.SQLitePath)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
preset: data/presets/veteran.json
catalog:
  driver: postgres
  postgres:
    host: db.internal
    port: 5435
pickup:
  majors: minimal
  quota:
    Missile: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Preset != "data/presets/veteran.json" {
		t.Errorf("Preset = %q", cfg.Preset)
	}
	if cfg.Catalog.Driver != "postgres" || cfg.Catalog.Postgres.Host != "db.internal" || cfg.Catalog.Postgres.Port != 5435 {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	// Unset keys keep their defaults.
	if cfg.Catalog.Postgres.User != "smlogic" {
		t.Errorf("Postgres.User = %q, want default smlogic", cfg.Catalog.Postgres.User)
	}
	if cfg.Pickup.Minors != "quota" {
		t.Errorf("Pickup.Minors = %q, want default quota", cfg.Pickup.Minors)
	}
	if cfg.Pickup.Quota["Missile"] != 4 {
		t.Errorf("Quota[Missile] = %d, want 4", cfg.Pickup.Quota["Missile"])
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "catalog: [unclosed"},
		{"unknown driver", "catalog:\n  driver: mysql\n"},
		{"sqlite without path", "catalog:\n  driver: sqlite\n  sqlite_path: \"\"\n"},
		{"bad port", "catalog:\n  postgres:\n    port: 70000\n"},
		{"unknown policy", "pickup:\n  majors: some\n"},
		{"negative quota", "pickup:\n  quota:\n    Super: -1\n"},
		{"major in quota", "pickup:\n  quota:\n    Varia: 1\n"},
		{"unknown item in quota", "pickup:\n  quota:\n    Bananas: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCatalogDatabase(t *testing.T) {
	t.Setenv(PostgresPasswordEnv, "secret")

	c := DefaultConfig().Catalog
	c.Driver = "Postgres"
	c.Postgres.SSLMode = ""
	db := c.Database()

	if db.Driver != "postgres" {
		t.Errorf("Driver = %q, want postgres", db.Driver)
	}
	if db.Postgres.Password != "secret" {
		t.Errorf("Password = %q, want it from the environment", db.Postgres.Password)
	}
	if db.Postgres.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want the pool default", db.Postgres.SSLMode)
	}
	if db.SQLitePath != "data/catalog.db" {
		t.Errorf("SQLitePath = %q", db.SQLitePath)
	}
}

func TestPickup(t *testing.T) {
	pc := PickupConfig{
		Majors: "Minimal",
		Minors: "quota",
		Quota:  map[string]int{"missile": 3, "PowerBomb": 1},
	}

	pickup, err := pc.Pickup()
	if err != nil {
		t.Fatalf("Pickup() error = %v", err)
	}
	if pickup.Majors != logic.PolicyMinimal || pickup.Minors != logic.PolicyQuota {
		t.Errorf("policies = %s/%s", pickup.Majors, pickup.Minors)
	}
	if pickup.MinorQuota[items.Missile] != 3 || pickup.MinorQuota[items.PowerBomb] != 1 {
		t.Errorf("MinorQuota = %v", pickup.MinorQuota)
	}
}

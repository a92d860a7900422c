package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/smlogic/internal/preset"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(DefaultConfig(filepath.Join(t.TempDir(), "catalog", "presets.db")))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustPreset(t *testing.T, data string) *preset.Config {
	t.Helper()
	cfg, err := preset.ParseYAML([]byte(data))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	return cfg
}

const veteranYAML = `knows:
  ShortCharge:
    enabled: true
    difficulty: medium
settings:
  bosses:
    Ridley: Piece of cake
`

const newbieYAML = `knows:
  InfiniteBombJump:
    enabled: false
  GravityJump:
    enabled: false
settings:
  hell_runs:
    MainUpperNorfair: No thanks
`

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(Config{Driver: "sqlite"}); err == nil {
		t.Error("Open() should fail without a sqlite path")
	}
}

func TestSaveAndGetPreset(t *testing.T) {
	db := setupTestDB(t)
	cfg := mustPreset(t, veteranYAML)

	saved, err := db.SavePreset("veteran", cfg)
	if err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	if saved.ID == 0 {
		t.Error("saved preset should have an ID")
	}
	if saved.Score != preset.ComputeScore(cfg) {
		t.Errorf("Score = %d, want %d", saved.Score, preset.ComputeScore(cfg))
	}

	got, err := db.GetPreset("VETERAN")
	if err != nil {
		t.Fatalf("GetPreset() error = %v", err)
	}
	if got.Name != "veteran" {
		t.Errorf("Name = %q, want veteran", got.Name)
	}

	restored, err := got.Config()
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	if preset.ComputeScore(restored) != saved.Score {
		t.Errorf("restored score = %d, want %d", preset.ComputeScore(restored), saved.Score)
	}
	fingerprint, _ := preset.Fingerprint(restored)
	if fingerprint != saved.Fingerprint {
		t.Errorf("restored fingerprint = %s, want %s", fingerprint, saved.Fingerprint)
	}
}

func TestSavePresetReplacesByName(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.SavePreset("mine", mustPreset(t, veteranYAML)); err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	updated, err := db.SavePreset("mine", mustPreset(t, newbieYAML))
	if err != nil {
		t.Fatalf("SavePreset() update error = %v", err)
	}

	records, err := db.ListPresetsByScore()
	if err != nil {
		t.Fatalf("ListPresetsByScore() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Score != updated.Score {
		t.Errorf("Score = %d, want %d", records[0].Score, updated.Score)
	}
}

func TestSavePresetRejectsDuplicateContent(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.SavePreset("veteran", mustPreset(t, veteranYAML)); err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	_, err := db.SavePreset("copy", mustPreset(t, veteranYAML))
	if !errors.Is(err, ErrDuplicatePreset) {
		t.Errorf("SavePreset(copy) error = %v, want ErrDuplicatePreset", err)
	}
}

func TestSavePresetEmptyName(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.SavePreset("  ", preset.Default()); err == nil {
		t.Error("SavePreset() should reject an empty name")
	}
}

func TestListPresetsByScore(t *testing.T) {
	db := setupTestDB(t)

	presets := map[string]string{
		"veteran": veteranYAML,
		"newbie":  newbieYAML,
		"default": "",
	}
	for name, data := range presets {
		if _, err := db.SavePreset(name, mustPreset(t, data)); err != nil {
			t.Fatalf("SavePreset(%s) error = %v", name, err)
		}
	}

	records, err := db.ListPresetsByScore()
	if err != nil {
		t.Fatalf("ListPresetsByScore() error = %v", err)
	}
	want := []string{"veteran", "default", "newbie"}
	if len(records) != len(want) {
		t.Fatalf("len(records) = %d, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("records[%d] = %s, want %s", i, records[i].Name, name)
		}
	}
	for i := 1; i < len(records); i++ {
		if records[i].Score > records[i-1].Score {
			t.Errorf("records not sorted by score: %d after %d", records[i].Score, records[i-1].Score)
		}
	}
}

func TestDeletePreset(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.SavePreset("veteran", mustPreset(t, veteranYAML)); err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	if err := db.DeletePreset("veteran"); err != nil {
		t.Fatalf("DeletePreset() error = %v", err)
	}
	if _, err := db.GetPreset("veteran"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("GetPreset() after delete error = %v, want ErrPresetNotFound", err)
	}
	if err := db.DeletePreset("veteran"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("DeletePreset() twice error = %v, want ErrPresetNotFound", err)
	}
}

func TestReopenKeepsPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.db")

	db, err := Open(DefaultConfig(path))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := db.SavePreset("veteran", mustPreset(t, veteranYAML)); err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	db.Close()

	db, err = Open(DefaultConfig(path))
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()

	if _, err := db.GetPreset("veteran"); err != nil {
		t.Errorf("GetPreset() after reopen error = %v", err)
	}
}

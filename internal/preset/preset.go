// Package preset loads player presets: which techniques the player knows
// and how hard each boss, hell run and hazard room may be rated. A loaded
// Config is immutable and can be shared by concurrent queries.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lawnchairsociety/smlogic/internal/knows"
	"github.com/lawnchairsociety/smlogic/internal/logger"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
	"gopkg.in/yaml.v3"
)

// Technique is a preset entry for one technique.
type Technique struct {
	Enabled    bool   `yaml:"enabled"`
	Difficulty string `yaml:"difficulty,omitempty"`
}

// SettingsSection selects a preset label per configurable table.
type SettingsSection struct {
	Bosses    map[string]string        `yaml:"bosses,omitempty"`
	HellRuns  map[string]string        `yaml:"hell_runs,omitempty"`
	HardRooms map[string]string        `yaml:"hard_rooms,omitempty"`
	Rates     *settings.AlgorithmRates `yaml:"rates,omitempty"`
}

// Document is the on-disk form of a preset. Only the entries a preset
// sets explicitly are present.
type Document struct {
	Name     string               `yaml:"name,omitempty"`
	Knows    map[string]Technique `yaml:"knows,omitempty"`
	Settings SettingsSection      `yaml:"settings,omitempty"`
}

// Config is a validated preset.
type Config struct {
	Name string
	// Document is the canonical form of the preset: known names, lower
	// case difficulty labels and rates omitted when they are the defaults.
	Document Document
	Knows    *knows.Registry
	Settings *settings.Settings
}

// Default returns the preset with every built-in value.
func Default() *Config {
	return &Config{
		Name:     "default",
		Knows:    knows.Defaults(),
		Settings: settings.Defaults(),
	}
}

// Load reads a preset file. The format is chosen from the extension:
// .yaml and .yml are YAML, .json is the legacy JSON layout.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	case ".json":
		cfg, err = ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported preset file type: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %s: %w", path, err)
	}

	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	logger.Info("preset loaded", "name", cfg.Name, "path", path, "score", ComputeScore(cfg))
	return cfg, nil
}

// ParseYAML decodes and validates a YAML preset. Unknown keys at any
// level are rejected.
func ParseYAML(data []byte) (*Config, error) {
	rates := settings.DefaultRates()
	doc := Document{Settings: SettingsSection{Rates: &rates}}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, malformed("preset", "", "", fmt.Errorf("failed to parse YAML: %w", err))
	}
	return Build(doc)
}

// Build validates a document and resolves it against the built-in tables.
func Build(doc Document) (*Config, error) {
	canonical := Document{Name: doc.Name}

	overrides := make(map[knows.ID]knows.Technique, len(doc.Knows))
	seen := make(map[knows.ID]string, len(doc.Knows))
	for name, t := range doc.Knows {
		id, err := knows.ParseID(name)
		if err != nil {
			return nil, malformed("knows", name, "", err)
		}
		// names match case-insensitively, so two spellings would race
		if prev, ok := seen[id]; ok {
			return nil, malformed("knows", name, "", fmt.Errorf("duplicate of %s", prev))
		}
		seen[id] = name
		def, _ := knows.Default(id)
		difficulty := def.Difficulty
		if t.Difficulty != "" {
			difficulty, err = smbool.ParseDifficulty(t.Difficulty)
			if err != nil {
				return nil, malformed("knows", name, t.Difficulty, err)
			}
		}
		overrides[id] = knows.Technique{Enabled: t.Enabled, Difficulty: difficulty}
		if canonical.Knows == nil {
			canonical.Knows = make(map[string]Technique)
		}
		canonical.Knows[string(id)] = Technique{Enabled: t.Enabled, Difficulty: smbool.LevelName(difficulty)}
	}

	registry, err := knows.NewRegistry(overrides)
	if err != nil {
		return nil, malformed("knows", "", "", err)
	}

	sel, section, err := selection(doc.Settings)
	if err != nil {
		return nil, err
	}
	canonical.Settings = section

	resolved, err := settings.New(sel)
	if err != nil {
		return nil, malformed("settings", "", "", err)
	}

	return &Config{
		Name:     doc.Name,
		Document: canonical,
		Knows:    registry,
		Settings: resolved,
	}, nil
}

func selection(s SettingsSection) (settings.Selection, SettingsSection, error) {
	var sel settings.Selection
	canonical := SettingsSection{}

	for name, label := range s.Bosses {
		boss := settings.Boss(name)
		if !slices.Contains(settings.Bosses(), boss) {
			return sel, canonical, malformed("settings.bosses", name, "", errors.New("unknown boss"))
		}
		if !slices.Contains(settings.BossLabels(boss), label) {
			return sel, canonical, malformed("settings.bosses", name, label, errors.New("unknown label"))
		}
		if sel.Bosses == nil {
			sel.Bosses = make(map[settings.Boss]string)
			canonical.Bosses = make(map[string]string)
		}
		sel.Bosses[boss] = label
		canonical.Bosses[name] = label
	}

	for name, label := range s.HellRuns {
		run := settings.HellRun(name)
		if !slices.Contains(settings.HellRuns(), run) {
			return sel, canonical, malformed("settings.hell_runs", name, "", errors.New("unknown hell run"))
		}
		if !slices.Contains(settings.HellRunLabels(run), label) {
			return sel, canonical, malformed("settings.hell_runs", name, label, errors.New("unknown label"))
		}
		if sel.HellRuns == nil {
			sel.HellRuns = make(map[settings.HellRun]string)
			canonical.HellRuns = make(map[string]string)
		}
		sel.HellRuns[run] = label
		canonical.HellRuns[name] = label
	}

	for name, label := range s.HardRooms {
		room := settings.HardRoom(name)
		if !slices.Contains(settings.HardRooms(), room) {
			return sel, canonical, malformed("settings.hard_rooms", name, "", errors.New("unknown hard room"))
		}
		if !slices.Contains(settings.HardRoomLabels(room), label) {
			return sel, canonical, malformed("settings.hard_rooms", name, label, errors.New("unknown label"))
		}
		if sel.HardRooms == nil {
			sel.HardRooms = make(map[settings.HardRoom]string)
			canonical.HardRooms = make(map[string]string)
		}
		sel.HardRooms[room] = label
		canonical.HardRooms[name] = label
	}

	if s.Rates != nil && *s.Rates != settings.DefaultRates() {
		if err := s.Rates.Validate(); err != nil {
			return sel, canonical, malformed("settings.rates", "", "", err)
		}
		rates := *s.Rates
		sel.Rates = &rates
		canonical.Rates = &rates
	}

	return sel, canonical, nil
}

// Encode renders the canonical document as YAML.
func (c *Config) Encode() ([]byte, error) {
	doc := c.Document
	doc.Name = c.Name
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preset: %w", err)
	}
	return data, nil
}

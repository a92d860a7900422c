package preset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
	"github.com/tidwall/gjson"
)

// ParseJSON reads a preset in the legacy JSON layout:
//
//	{"Knows": {"GravityJump": [true, 10]}, "Settings": {"Kraid": "Default", "X-Ray": "Solution"}}
//
// Technique difficulties are numbers on the difficulty scale. Top-level
// keys other than Knows and Settings, such as controller mappings, are
// ignored.
func ParseJSON(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed("preset", "", "", errors.New("invalid JSON"))
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, malformed("preset", "", "", errors.New("top level must be an object"))
	}

	doc := Document{Name: root.Get("name").String()}

	var err error
	root.Get("Knows").ForEach(func(key, value gjson.Result) bool {
		var t Technique
		t, err = legacyTechnique(key.String(), value)
		if err != nil {
			return false
		}
		if doc.Knows == nil {
			doc.Knows = make(map[string]Technique)
		}
		doc.Knows[key.String()] = t
		return true
	})
	if err != nil {
		return nil, err
	}

	root.Get("Settings").ForEach(func(key, value gjson.Result) bool {
		err = legacySetting(&doc.Settings, key.String(), value)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return Build(doc)
}

func legacyTechnique(name string, value gjson.Result) (Technique, error) {
	pair := value.Array()
	if !value.IsArray() || len(pair) != 2 {
		return Technique{}, malformed("Knows", name, value.Raw, errors.New("want [enabled, difficulty]"))
	}
	if pair[0].Type != gjson.True && pair[0].Type != gjson.False {
		return Technique{}, malformed("Knows", name, pair[0].Raw, errors.New("enabled must be a boolean"))
	}
	if pair[1].Type != gjson.Number || !smbool.IsLevel(pair[1].Float()) {
		return Technique{}, malformed("Knows", name, pair[1].Raw, errors.New("difficulty out of range"))
	}
	return Technique{
		Enabled:    pair[0].Bool(),
		Difficulty: smbool.LevelName(pair[1].Float()),
	}, nil
}

func legacySetting(s *SettingsSection, key string, value gjson.Result) error {
	if value.Type != gjson.String {
		return malformed("Settings", key, value.Raw, errors.New("label must be a string"))
	}
	label := value.String()

	switch {
	case slices.Contains(settings.Bosses(), settings.Boss(key)):
		if s.Bosses == nil {
			s.Bosses = make(map[string]string)
		}
		s.Bosses[key] = label
	case slices.Contains(settings.HellRuns(), settings.HellRun(key)):
		if s.HellRuns == nil {
			s.HellRuns = make(map[string]string)
		}
		s.HellRuns[key] = label
	case slices.Contains(settings.HardRooms(), settings.HardRoom(key)):
		if s.HardRooms == nil {
			s.HardRooms = make(map[string]string)
		}
		s.HardRooms[key] = label
	default:
		return malformed("Settings", key, label, fmt.Errorf("unknown setting"))
	}
	return nil
}

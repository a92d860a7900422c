package preset

import (
	"github.com/lawnchairsociety/smlogic/internal/knows"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// The more techniques known and the easier they are, the higher the score.
var difficultyScore = map[smbool.Difficulty]int{
	smbool.Easy:     6,
	smbool.Medium:   5,
	smbool.Hard:     4,
	smbool.Harder:   3,
	smbool.Hardcore: 2,
	smbool.Mania:    1,
}

var bossScore = map[string]int{
	"He's annoying":                 1,
	"A lot of trouble":              1,
	"I'm scared!":                   1,
	"It can get ugly":               1,
	settings.DefaultLabel:           2,
	"Quick Kill":                    3,
	"Used to it":                    3,
	"Is this really the last boss?": 3,
	"No problemo":                   4,
	"Piece of cake":                 4,
	"Nice cutscene bro":             4,
}

var hellRunScore = map[string]int{
	"No thanks":           0,
	"Solution":            0,
	"Gimme energy":        2,
	settings.DefaultLabel: 4,
	"Bring the heat":      6,
	"I run RBO":           8,
}

var lowerNorfairScore = map[string]int{
	settings.DefaultLabel: 0,
	"Solution":            0,
	"Bring the heat":      6,
	"I run RBO":           12,
}

var hardRoomScore = map[settings.HardRoom]map[string]int{
	settings.XRay: {
		"Aarghh":              0,
		"Solution":            0,
		"I don't like spikes": 1,
		settings.DefaultLabel: 2,
		"I don't mind spikes": 3,
		"D-Boost master":      4,
	},
	settings.Gauntlet: {
		"Aarghh":              0,
		"I don't like acid":   1,
		settings.DefaultLabel: 2,
	},
}

// ComputeScore rates how demanding a preset is; a higher score means a
// more skilled player. Every enabled technique counts, using its built-in
// value when the preset does not mention it. Settings only count when the
// preset selects a label explicitly.
func ComputeScore(cfg *Config) int {
	score := 0

	for _, id := range knows.All() {
		if t := cfg.Knows.Technique(id); t.Enabled {
			score += difficultyScore[t.Difficulty]
		}
	}

	s := cfg.Document.Settings
	for _, room := range settings.HardRooms() {
		if label, ok := s.HardRooms[string(room)]; ok {
			score += hardRoomScore[room][label]
		}
	}
	for _, boss := range settings.Bosses() {
		if label, ok := s.Bosses[string(boss)]; ok {
			score += bossScore[label]
		}
	}
	for _, run := range []settings.HellRun{settings.HellRunIce, settings.HellRunMainUpperNorfair} {
		if label, ok := s.HellRuns[string(run)]; ok {
			score += hellRunScore[label]
		}
	}
	if label, ok := s.HellRuns[string(settings.HellRunLowerNorfair)]; ok {
		score += lowerNorfairScore[label]
	}

	return score
}

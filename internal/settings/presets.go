package settings

import (
	"sort"

	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

func rate(r float64) *float64 {
	return &r
}

var bossPresets = map[Boss]map[string]DifficultyTable{
	Kraid: {
		"He's annoying": {
			Rate:   rate(0.0075),
			Energy: map[float64]float64{0.5: smbool.Hardcore, 1: smbool.Harder, 2: smbool.Medium, 3: smbool.Easy},
		},
		DefaultLabel: {
			Rate:   rate(0.015),
			Energy: map[float64]float64{0.5: smbool.Hard, 1: smbool.Medium, 2: smbool.Easy},
		},
		"Quick Kill": {
			Rate:   rate(1),
			Energy: map[float64]float64{0.5: smbool.Easy},
		},
	},
	Phantoon: {
		"A lot of trouble": {
			Rate:   rate(0.010),
			Energy: map[float64]float64{1: smbool.Mania, 2: smbool.Hardcore, 4: smbool.Harder, 6: smbool.Hard, 8: smbool.Medium, 10: smbool.Easy},
		},
		DefaultLabel: {
			Rate:   rate(0.015),
			Energy: map[float64]float64{1: smbool.Hardcore, 2: smbool.Harder, 4: smbool.Hard, 6: smbool.Medium, 10: smbool.Easy},
		},
		"Used to it": {
			Rate:   rate(0.02),
			Energy: map[float64]float64{1: smbool.Harder, 2: smbool.Hard, 4: smbool.Medium, 6: smbool.Easy},
		},
	},
	Draygon: {
		"It can get ugly": {
			Rate:   rate(0.05),
			Energy: map[float64]float64{6: smbool.Mania, 8: smbool.Hardcore, 10: smbool.Harder, 14: smbool.Hard, 16: smbool.Medium, 20: smbool.Easy},
		},
		DefaultLabel: {
			Rate:   rate(0.08),
			Energy: map[float64]float64{6: smbool.Hardcore, 8: smbool.Harder, 12: smbool.Hard, 14: smbool.Medium, 16: smbool.Easy},
		},
		"No problemo": {
			Rate:   rate(0.1),
			Energy: map[float64]float64{4: smbool.Hard, 6: smbool.Medium, 8: smbool.Easy},
		},
	},
	Ridley: {
		"I'm scared!": {
			Rate:   rate(0.047),
			Energy: map[float64]float64{10: smbool.Mania, 14: smbool.Hardcore, 18: smbool.Harder, 22: smbool.Hard, 26: smbool.Medium, 30: smbool.Easy},
		},
		DefaultLabel: {
			Rate:   rate(0.12),
			Energy: map[float64]float64{10: smbool.Harder, 14: smbool.Hard, 18: smbool.Medium, 24: smbool.Easy},
		},
		"Piece of cake": {
			Rate:   rate(0.5),
			Energy: map[float64]float64{6: smbool.Medium, 10: smbool.Easy},
		},
	},
	MotherBrain: {
		"It can get ugly": {
			Rate:   rate(0.18),
			Energy: map[float64]float64{8: smbool.Mania, 12: smbool.Hardcore, 16: smbool.Harder, 20: smbool.Hard, 24: smbool.Medium, 28: smbool.Easy},
		},
		DefaultLabel: {
			Rate:   rate(0.25),
			Energy: map[float64]float64{8: smbool.Hardcore, 12: smbool.Harder, 16: smbool.Hard, 20: smbool.Medium, 24: smbool.Easy},
		},
		"Is this really the last boss?": {
			Rate:   rate(0.5),
			Energy: map[float64]float64{8: smbool.Hard, 12: smbool.Medium, 16: smbool.Easy},
		},
		"Nice cutscene bro": {
			Rate:   rate(10),
			Energy: map[float64]float64{2: smbool.Easy},
		},
	},
}

var upperHellRuns = map[string][]items.Threshold{
	"No thanks":      nil,
	"Solution":       {{Count: 5, Difficulty: smbool.Harder}, {Count: 8, Difficulty: smbool.Hard}, {Count: 12, Difficulty: smbool.Medium}},
	"Gimme energy":   {{Count: 4, Difficulty: smbool.Hardcore}, {Count: 5, Difficulty: smbool.Harder}, {Count: 6, Difficulty: smbool.Hard}, {Count: 10, Difficulty: smbool.Medium}},
	DefaultLabel:     {{Count: 3, Difficulty: smbool.Harder}, {Count: 4, Difficulty: smbool.Hard}, {Count: 6, Difficulty: smbool.Medium}, {Count: 10, Difficulty: smbool.Easy}},
	"Bring the heat": {{Count: 3, Difficulty: smbool.Hard}, {Count: 4, Difficulty: smbool.Medium}, {Count: 6, Difficulty: smbool.Easy}},
	"I run RBO":      {{Count: 3, Difficulty: smbool.Medium}, {Count: 4, Difficulty: smbool.Easy}},
}

var hellRunPresets = map[HellRun]map[string][]items.Threshold{
	HellRunIce:              upperHellRuns,
	HellRunMainUpperNorfair: upperHellRuns,
	HellRunLowerNorfair: {
		"Solution":       {{Count: 10, Difficulty: smbool.Hardcore}, {Count: 14, Difficulty: smbool.Hard}},
		DefaultLabel:     {{Count: 8, Difficulty: smbool.Hardcore}, {Count: 10, Difficulty: smbool.Harder}, {Count: 14, Difficulty: smbool.Hard}, {Count: 18, Difficulty: smbool.Medium}},
		"Bring the heat": {{Count: 6, Difficulty: smbool.Hardcore}, {Count: 8, Difficulty: smbool.Harder}, {Count: 10, Difficulty: smbool.Hard}, {Count: 14, Difficulty: smbool.Medium}},
		"I run RBO":      {{Count: 3, Difficulty: smbool.Harder}, {Count: 5, Difficulty: smbool.Hard}, {Count: 8, Difficulty: smbool.Medium}, {Count: 12, Difficulty: smbool.Easy}},
	},
}

var hardRoomPresets = map[HardRoom]map[string][]items.Threshold{
	XRay: {
		"Aarghh":              {{Count: 8, Difficulty: smbool.Harder}, {Count: 10, Difficulty: smbool.Hard}, {Count: 14, Difficulty: smbool.Medium}},
		"Solution":            {{Count: 6, Difficulty: smbool.Hard}, {Count: 10, Difficulty: smbool.Medium}},
		"I don't like spikes": {{Count: 4, Difficulty: smbool.Harder}, {Count: 6, Difficulty: smbool.Hard}, {Count: 8, Difficulty: smbool.Medium}, {Count: 10, Difficulty: smbool.Easy}},
		DefaultLabel:          {{Count: 2, Difficulty: smbool.Harder}, {Count: 3, Difficulty: smbool.Hard}, {Count: 5, Difficulty: smbool.Medium}, {Count: 7, Difficulty: smbool.Easy}},
		"I don't mind spikes": {{Count: 1, Difficulty: smbool.Hard}, {Count: 2, Difficulty: smbool.Medium}, {Count: 4, Difficulty: smbool.Easy}},
		"D-Boost master":      {{Count: 0, Difficulty: smbool.Medium}, {Count: 1, Difficulty: smbool.Easy}},
	},
	Gauntlet: {
		"Aarghh":            {{Count: 5, Difficulty: smbool.Harder}, {Count: 7, Difficulty: smbool.Hard}},
		"I don't like acid": {{Count: 2, Difficulty: smbool.Harder}, {Count: 3, Difficulty: smbool.Hard}, {Count: 5, Difficulty: smbool.Medium}},
		DefaultLabel:        {{Count: 0, Difficulty: smbool.Harder}, {Count: 1, Difficulty: smbool.Hard}, {Count: 2, Difficulty: smbool.Medium}, {Count: 3, Difficulty: smbool.Easy}},
	},
}

// BossLabels returns the preset labels available for a boss, sorted.
func BossLabels(boss Boss) []string {
	return sortedKeys(bossPresets[boss])
}

// HellRunLabels returns the preset labels available for a hell run, sorted.
func HellRunLabels(run HellRun) []string {
	return sortedKeys(hellRunPresets[run])
}

// HardRoomLabels returns the preset labels available for a hazard room, sorted.
func HardRoomLabels(room HardRoom) []string {
	return sortedKeys(hardRoomPresets[room])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package settings holds the per-preset tables that tune boss fights,
// hell runs and hazard rooms, plus the rates used by the combat simulator.
package settings

import (
	"fmt"
	"sort"

	"github.com/lawnchairsociety/smlogic/internal/items"
)

// Boss identifies a boss with a configurable difficulty table.
type Boss string

const (
	Kraid       Boss = "Kraid"
	Phantoon    Boss = "Phantoon"
	Draygon     Boss = "Draygon"
	Ridley      Boss = "Ridley"
	MotherBrain Boss = "MotherBrain"
)

// Bosses returns every configurable boss in a stable order.
func Bosses() []Boss {
	return []Boss{Kraid, Phantoon, Draygon, Ridley, MotherBrain}
}

// HellRun identifies a heated traversal gated by energy tanks.
type HellRun string

const (
	HellRunIce              HellRun = "Ice"
	HellRunMainUpperNorfair HellRun = "MainUpperNorfair"
	HellRunLowerNorfair     HellRun = "LowerNorfair"
)

// HellRuns returns every hell run in a stable order.
func HellRuns() []HellRun {
	return []HellRun{HellRunIce, HellRunMainUpperNorfair, HellRunLowerNorfair}
}

// HardRoom identifies a hazard room gated by energy tanks.
type HardRoom string

const (
	XRay     HardRoom = "X-Ray"
	Gauntlet HardRoom = "Gauntlet"
)

// HardRooms returns every hazard room in a stable order.
func HardRooms() []HardRoom {
	return []HardRoom{XRay, Gauntlet}
}

// DefaultLabel is the preset label selected when a preset names none.
const DefaultLabel = "Default"

// DifficultyTable rates a boss fight. Energy maps the effective energy
// available to the player to a base difficulty; Rate normalizes the
// estimated fight duration.
type DifficultyTable struct {
	Rate   *float64            `yaml:"rate,omitempty"`
	Energy map[float64]float64 `yaml:"energy"`
}

// SortedEnergy returns the Energy keys in ascending order.
func (t DifficultyTable) SortedEnergy() []float64 {
	keys := make([]float64, 0, len(t.Energy))
	for k := range t.Energy {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

// Selection names the preset label chosen for each configurable table.
// Missing entries fall back to DefaultLabel.
type Selection struct {
	Bosses    map[Boss]string
	HellRuns  map[HellRun]string
	HardRooms map[HardRoom]string
	Rates     *AlgorithmRates
}

// Settings is the resolved, immutable configuration consumed by queries.
type Settings struct {
	bosses         map[Boss]DifficultyTable
	bossLabels     map[Boss]string
	hellRuns       map[HellRun][]items.Threshold
	hellRunLabels  map[HellRun]string
	hardRooms      map[HardRoom][]items.Threshold
	hardRoomLabels map[HardRoom]string
	rates          AlgorithmRates
}

// New resolves a selection against the built-in preset tables.
func New(sel Selection) (*Settings, error) {
	s := &Settings{
		bosses:         make(map[Boss]DifficultyTable),
		bossLabels:     make(map[Boss]string),
		hellRuns:       make(map[HellRun][]items.Threshold),
		hellRunLabels:  make(map[HellRun]string),
		hardRooms:      make(map[HardRoom][]items.Threshold),
		hardRoomLabels: make(map[HardRoom]string),
		rates:          DefaultRates(),
	}

	for boss := range sel.Bosses {
		if _, ok := bossPresets[boss]; !ok {
			return nil, fmt.Errorf("unknown boss: %s", boss)
		}
	}
	for _, boss := range Bosses() {
		label := labelOrDefault(sel.Bosses[boss])
		table, ok := bossPresets[boss][label]
		if !ok {
			return nil, fmt.Errorf("unknown %s difficulty: %q", boss, label)
		}
		s.bosses[boss] = table
		s.bossLabels[boss] = label
	}

	for run := range sel.HellRuns {
		if _, ok := hellRunPresets[run]; !ok {
			return nil, fmt.Errorf("unknown hell run: %s", run)
		}
	}
	for _, run := range HellRuns() {
		label := labelOrDefault(sel.HellRuns[run])
		table, ok := hellRunPresets[run][label]
		if !ok {
			return nil, fmt.Errorf("unknown %s hell run setting: %q", run, label)
		}
		s.hellRuns[run] = table
		s.hellRunLabels[run] = label
	}

	for room := range sel.HardRooms {
		if _, ok := hardRoomPresets[room]; !ok {
			return nil, fmt.Errorf("unknown hard room: %s", room)
		}
	}
	for _, room := range HardRooms() {
		label := labelOrDefault(sel.HardRooms[room])
		table, ok := hardRoomPresets[room][label]
		if !ok {
			return nil, fmt.Errorf("unknown %s room setting: %q", room, label)
		}
		s.hardRooms[room] = table
		s.hardRoomLabels[room] = label
	}

	if sel.Rates != nil {
		if err := sel.Rates.Validate(); err != nil {
			return nil, err
		}
		s.rates = *sel.Rates
	}

	return s, nil
}

// Defaults returns the settings with every table at its default label.
func Defaults() *Settings {
	s, err := New(Selection{})
	if err != nil {
		panic(fmt.Sprintf("built-in settings are invalid: %v", err))
	}
	return s
}

func labelOrDefault(label string) string {
	if label == "" {
		return DefaultLabel
	}
	return label
}

// BossTable returns the difficulty table selected for a boss.
func (s *Settings) BossTable(boss Boss) DifficultyTable {
	return s.bosses[boss]
}

// BossLabel returns the preset label selected for a boss.
func (s *Settings) BossLabel(boss Boss) string {
	return s.bossLabels[boss]
}

// HellRunTable returns the energy thresholds for a hell run. A nil table
// means the hell run is never expected.
func (s *Settings) HellRunTable(run HellRun) []items.Threshold {
	return s.hellRuns[run]
}

// HellRunLabel returns the preset label selected for a hell run.
func (s *Settings) HellRunLabel(run HellRun) string {
	return s.hellRunLabels[run]
}

// HardRoomTable returns the energy thresholds for a hazard room.
func (s *Settings) HardRoomTable(room HardRoom) []items.Threshold {
	return s.hardRooms[room]
}

// HardRoomLabel returns the preset label selected for a hazard room.
func (s *Settings) HardRoomLabel(room HardRoom) string {
	return s.hardRoomLabels[room]
}

// Rates returns the combat simulator rates.
func (s *Settings) Rates() AlgorithmRates {
	return s.rates
}

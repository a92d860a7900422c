// Package objectives tracks which bosses the search has killed and the
// goals that must be cleared before the game can be finished.
package objectives

import (
	"sync"

	"github.com/lawnchairsociety/smlogic/internal/settings"
)

// DeathReader is the read side of the boss death state.
type DeathReader interface {
	Dead(boss settings.Boss) bool
}

// EventReader reports map events that are not boss deaths. Goals built on
// events only clear when the DeathReader handed to them also implements it.
type EventReader interface {
	Reached(event Event) bool
}

// Event is a map milestone the host tracks outside of boss fights.
type Event string

const (
	ShaktoolPath  Event = "ShaktoolPath"
	ScavengerHunt Event = "ScavengerHunt"
)

// Mini-bosses share the death state with the main bosses but have no
// difficulty table.
const (
	SporeSpawn   settings.Boss = "SporeSpawn"
	Botwoon      settings.Boss = "Botwoon"
	Crocomire    settings.Boss = "Crocomire"
	BombTorizo   settings.Boss = "BombTorizo"
	GoldenTorizo settings.Boss = "GoldenTorizo"
)

// MiniBosses lists the mini-bosses in map order.
var MiniBosses = []settings.Boss{SporeSpawn, Botwoon, Crocomire, BombTorizo, GoldenTorizo}

// BossState records boss deaths and reached events during a search pass.
// The host owns it and is the only writer; predicates read it through
// DeathReader.
type BossState struct {
	mu     sync.RWMutex
	dead   map[settings.Boss]bool
	events map[Event]bool
}

// NewBossState creates a state with every boss alive.
func NewBossState() *BossState {
	return &BossState{
		dead:   make(map[settings.Boss]bool),
		events: make(map[Event]bool),
	}
}

// Kill marks a boss as dead.
func (s *BossState) Kill(boss settings.Boss) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dead[boss] = true
}

// Revive marks a boss as alive again, used when the search backtracks.
func (s *BossState) Revive(boss settings.Boss) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dead, boss)
}

// Reset revives every boss and forgets every event.
func (s *BossState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dead = make(map[settings.Boss]bool)
	s.events = make(map[Event]bool)
}

// Reach marks an event as reached.
func (s *BossState) Reach(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event] = true
}

// Forget undoes Reach when the search backtracks.
func (s *BossState) Forget(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.events, event)
}

// Reached reports whether an event has been reached.
func (s *BossState) Reached(event Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events[event]
}

// Dead reports whether a boss has been killed.
func (s *BossState) Dead(boss settings.Boss) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dead[boss]
}

// Killed returns the dead bosses in canonical order.
func (s *BossState) Killed() []settings.Boss {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []settings.Boss
	for _, b := range settings.Bosses() {
		if s.dead[b] {
			out = append(out, b)
		}
	}
	return out
}

// Area is a map region guarded by a boss.
type Area string

const (
	Brinstar     Area = "Brinstar"
	Norfair      Area = "Norfair"
	LowerNorfair Area = "LowerNorfair"
	WreckedShip  Area = "WreckedShip"
	Maridia      Area = "Maridia"
	Crateria     Area = "Crateria"
	Tourian      Area = "Tourian"
)

var areaBosses = map[Area]settings.Boss{
	Brinstar:     settings.Kraid,
	Norfair:      settings.Ridley,
	LowerNorfair: settings.Ridley,
	WreckedShip:  settings.Phantoon,
	Maridia:      settings.Draygon,
}

// G4 are the four bosses guarding the statues room.
var G4 = []settings.Boss{settings.Kraid, settings.Phantoon, settings.Draygon, settings.Ridley}

// AreaBoss returns the boss guarding an area.
func AreaBoss(area Area) (settings.Boss, bool) {
	b, ok := areaBosses[area]
	return b, ok
}

// AreaBossDead reports whether the boss of an area is dead. Areas without
// a boss count as cleared.
func AreaBossDead(deaths DeathReader, area Area) bool {
	b, ok := areaBosses[area]
	if !ok {
		return true
	}
	return deaths.Dead(b)
}

// AllBossesDead reports whether the four G4 bosses are dead.
func AllBossesDead(deaths DeathReader) bool {
	for _, b := range G4 {
		if !deaths.Dead(b) {
			return false
		}
	}
	return true
}

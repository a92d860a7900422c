package objectives

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// Goal is an end-game requirement.
type Goal struct {
	Name string
	// Exclusion lists goals that make this one redundant.
	Exclusion []string
	clear     func(DeathReader) bool
}

// Completed reports whether the goal is cleared.
func (g *Goal) Completed(deaths DeathReader) bool {
	return g.clear(deaths)
}

func killGoal(boss settings.Boss) *Goal {
	return &Goal{
		Name:      "kill " + strings.ToLower(string(boss)),
		Exclusion: []string{"kill G4"},
		clear:     func(d DeathReader) bool { return d.Dead(boss) },
	}
}

const (
	goalMiniBosses    = "kill mini bosses"
	goalShaktool      = "shaktool cleared path"
	goalScavengerHunt = "finish scavenger hunt"
)

var miniBossGoalNames = map[settings.Boss]string{
	SporeSpawn:   "kill spore spawn",
	Botwoon:      "kill botwoon",
	Crocomire:    "kill crocomire",
	BombTorizo:   "kill bomb torizo",
	GoldenTorizo: "kill golden torizo",
}

func miniBossGoal(boss settings.Boss) *Goal {
	return &Goal{
		Name:      miniBossGoalNames[boss],
		Exclusion: []string{goalMiniBosses},
		clear:     func(d DeathReader) bool { return d.Dead(boss) },
	}
}

func eventGoal(name string, event Event) *Goal {
	return &Goal{
		Name: name,
		clear: func(d DeathReader) bool {
			r, ok := d.(EventReader)
			return ok && r.Reached(event)
		},
	}
}

// AllMiniBossesDead reports whether every mini-boss is dead.
func AllMiniBossesDead(deaths DeathReader) bool {
	for _, b := range MiniBosses {
		if !deaths.Dead(b) {
			return false
		}
	}
	return true
}

var goals = func() map[string]*Goal {
	m := make(map[string]*Goal)
	add := func(g *Goal) { m[g.Name] = g }

	var g4Names, miniNames []string
	for _, b := range G4 {
		g := killGoal(b)
		g4Names = append(g4Names, g.Name)
		add(g)
	}
	add(&Goal{Name: "kill G4", Exclusion: g4Names, clear: AllBossesDead})

	for _, b := range MiniBosses {
		g := miniBossGoal(b)
		miniNames = append(miniNames, g.Name)
		add(g)
	}
	add(&Goal{Name: goalMiniBosses, Exclusion: miniNames, clear: AllMiniBossesDead})

	add(eventGoal(goalShaktool, ShaktoolPath))
	add(eventGoal(goalScavengerHunt, ScavengerHunt))
	return m
}()

// GoalNames returns every known goal, sorted.
func GoalNames() []string {
	names := make([]string, 0, len(goals))
	for name := range goals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Objectives is the set of active goals of a seed.
type Objectives struct {
	active []*Goal
}

// New returns an empty objective set.
func New() *Objectives {
	return &Objectives{}
}

// Vanilla returns the stock objectives: kill the four G4 bosses.
func Vanilla() *Objectives {
	o := New()
	o.SetVanilla()
	return o
}

// SetVanilla replaces the active goals with the stock ones.
func (o *Objectives) SetVanilla() {
	o.active = nil
	for _, b := range G4 {
		o.active = append(o.active, goals[killGoal(b).Name])
	}
}

// SetScavengerHunt adds the scavenger hunt goal. When the hunt does not
// trigger the escape on its own, the stock goals stay in front of it.
func (o *Objectives) SetScavengerHunt(triggerEscape bool) error {
	if !triggerEscape {
		o.SetVanilla()
	}
	return o.AddGoal(goalScavengerHunt)
}

// AddGoal activates a goal by name. Goals already covered by an active
// goal's exclusion list are rejected.
func (o *Objectives) AddGoal(name string) error {
	g, ok := goals[name]
	if !ok {
		return fmt.Errorf("unknown goal: %s", name)
	}
	for _, active := range o.active {
		if active.Name == name {
			return fmt.Errorf("goal already active: %s", name)
		}
		for _, ex := range active.Exclusion {
			if ex == name {
				return fmt.Errorf("goal %s conflicts with %s", name, active.Name)
			}
		}
	}
	o.active = append(o.active, g)
	return nil
}

// Goals returns the active goal names in activation order.
func (o *Objectives) Goals() []string {
	names := make([]string, len(o.active))
	for i, g := range o.active {
		names[i] = g.Name
	}
	return names
}

// CanClearGoals is satisfied when every active goal is completed.
func (o *Objectives) CanClearGoals(deaths DeathReader) smbool.Bool {
	for _, g := range o.active {
		if !g.Completed(deaths) {
			return smbool.False()
		}
	}
	return smbool.True(0)
}

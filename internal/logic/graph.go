package logic

import (
	"fmt"

	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// Predicate is a named item-only query.
type Predicate struct {
	Name string
	Eval func(l *Logic, it items.Items) smbool.Bool
}

// Predicates returns every item-only predicate. The order is a valid
// evaluation order of the dependency graph: each entry only calls entries
// listed before it.
func Predicates() []Predicate {
	ps := []Predicate{
		{"HeatProof", (*Logic).HeatProof},
	}
	for _, run := range settings.HellRuns() {
		ps = append(ps, Predicate{"CanHellRun" + string(run), func(l *Logic, it items.Items) smbool.Bool {
			return l.CanHellRun(it, run)
		}})
	}
	for _, room := range settings.HardRooms() {
		ps = append(ps, Predicate{"CanSurviveHardRoom" + string(room), func(l *Logic, it items.Items) smbool.Bool {
			return l.CanSurviveHardRoom(it, room)
		}})
	}
	ps = append(ps,
		Predicate{"CanFly", (*Logic).CanFly},
		Predicate{"CanFlyDiagonally", (*Logic).CanFlyDiagonally},
		Predicate{"CanUseBombs", (*Logic).CanUseBombs},
		Predicate{"CanOpenRedDoors", (*Logic).CanOpenRedDoors},
		Predicate{"CanOpenGreenDoors", (*Logic).CanOpenGreenDoors},
		Predicate{"CanOpenYellowDoors", (*Logic).CanOpenYellowDoors},
		Predicate{"CanUsePowerBombs", (*Logic).CanUsePowerBombs},
		Predicate{"CanDestroyBombWalls", (*Logic).CanDestroyBombWalls},
		Predicate{"CanPassBombPassages", (*Logic).CanPassBombPassages},
		Predicate{"CanEnterAndLeaveGauntlet", (*Logic).CanEnterAndLeaveGauntlet},
		Predicate{"CanAccessRedBrinstar", (*Logic).CanAccessRedBrinstar},
		Predicate{"CanAccessKraid", (*Logic).CanAccessKraid},
		Predicate{"CanAccessWs", (*Logic).CanAccessWs},
		Predicate{"CanAccessHeatedNorfair", (*Logic).CanAccessHeatedNorfair},
		Predicate{"CanAccessCrocomire", (*Logic).CanAccessCrocomire},
		Predicate{"CanAccessLowerNorfair", (*Logic).CanAccessLowerNorfair},
		Predicate{"CanPassWorstRoom", (*Logic).CanPassWorstRoom},
		Predicate{"CanAccessOuterMaridia", (*Logic).CanAccessOuterMaridia},
		Predicate{"CanAccessInnerMaridia", (*Logic).CanAccessInnerMaridia},
		Predicate{"CanDoSuitlessMaridia", (*Logic).CanDoSuitlessMaridia},
		Predicate{"CanDefeatBotwoon", (*Logic).CanDefeatBotwoon},
		Predicate{"EnoughStuffsKraid", (*Logic).EnoughStuffsKraid},
		Predicate{"EnoughStuffsPhantoon", (*Logic).EnoughStuffsPhantoon},
		Predicate{"EnoughStuffsDraygon", (*Logic).EnoughStuffsDraygon},
		Predicate{"EnoughStuffsRidley", (*Logic).EnoughStuffsRidley},
		Predicate{"EnoughStuffsMotherbrain", (*Logic).EnoughStuffsMotherbrain},
		Predicate{"CanDefeatDraygon", (*Logic).CanDefeatDraygon},
		Predicate{"CanPassMetroids", (*Logic).CanPassMetroids},
		Predicate{"CanPassZebetites", (*Logic).CanPassZebetites},
		Predicate{"EnoughStuffTourian", (*Logic).EnoughStuffTourian},
	)
	return ps
}

// Lookup finds a predicate by name.
func Lookup(name string) (Predicate, error) {
	for _, p := range Predicates() {
		if p.Name == name {
			return p, nil
		}
	}
	return Predicate{}, fmt.Errorf("unknown predicate: %s", name)
}

// Result is the evaluation of one predicate.
type Result struct {
	Name string
	smbool.Bool
}

// EvaluateAll runs every predicate against the items.
func (l *Logic) EvaluateAll(it items.Items) []Result {
	ps := Predicates()
	out := make([]Result, len(ps))
	for i, p := range ps {
		out[i] = Result{Name: p.Name, Bool: p.Eval(l, it)}
	}
	return out
}

package logic

import (
	"github.com/lawnchairsociety/smlogic/internal/combat"
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/knows"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// Boss energy pools.
const (
	KraidEnergy       = 1000.0
	PhantoonEnergy    = 2500.0
	DraygonEnergy     = 6000.0
	RidleyEnergy      = 18000.0
	MotherBrain1      = 3000.0
	MotherBrain2      = 18000.0
	ZebetiteEnergy    = 1100.0
	zebetitesPerEntry = 4
)

var phantoonOptions = combat.Options{DoubleSuper: true, Charge: true, GivesDrops: true}

// bossFights holds the energy and damage rules of each rated fight. Mother
// Brain is rated on both phases together.
var bossFights = map[settings.Boss]struct {
	energy float64
	opts   combat.Options
}{
	settings.Kraid:       {KraidEnergy, combat.DefaultOptions()},
	settings.Phantoon:    {PhantoonEnergy, phantoonOptions},
	settings.Draygon:     {DraygonEnergy, combat.DefaultOptions()},
	settings.Ridley:      {RidleyEnergy, combat.Options{DoubleSuper: true, Charge: true}},
	settings.MotherBrain: {MotherBrain1 + MotherBrain2, combat.Options{Charge: true}},
}

// BossFight returns the simulated fight the boss check rates. Unknown
// bosses yield an infeasible result.
func (l *Logic) BossFight(it items.Items, boss settings.Boss) combat.FightResult {
	f, ok := bossFights[boss]
	if !ok {
		return combat.FightResult{}
	}
	return l.fight(it, f.energy, f.opts)
}

func (l *Logic) fight(it items.Items, energy float64, opts combat.Options) combat.FightResult {
	return combat.CanInflictEnoughDamages(it, l.settings.Rates(), energy, opts)
}

func (l *Logic) rate(it items.Items, boss settings.Boss, result combat.FightResult) float64 {
	return combat.ComputeBossDifficulty(it, l.settings.Rates(), result.AmmoMargin, result.Seconds, l.settings.BossTable(boss))
}

func (l *Logic) bossFight(it items.Items, boss settings.Boss, result combat.FightResult) smbool.Bool {
	if !result.Feasible() {
		return smbool.False()
	}
	return smbool.True(l.rate(it, boss, result))
}

func (l *Logic) EnoughStuffsKraid(it items.Items) smbool.Bool {
	return l.bossFight(it, settings.Kraid, l.BossFight(it, settings.Kraid))
}

// EnoughStuffsRidley: Ridley drops nothing worth counting on.
func (l *Logic) EnoughStuffsRidley(it items.Items) smbool.Bool {
	return l.bossFight(it, settings.Ridley, l.BossFight(it, settings.Ridley))
}

// EnoughStuffsDraygon: a regular fight, or one of the tricks that skip it.
func (l *Logic) EnoughStuffsDraygon(it items.Items) smbool.Bool {
	result := l.BossFight(it, settings.Draygon)
	return smbool.Or(
		l.bossFight(it, settings.Draygon, result),
		smbool.And(l.know(knows.DraygonGrappleKill), have(it, items.Grapple)),
		smbool.And(
			l.know(knows.MicrowaveDraygon),
			have(it, items.Plasma),
			have(it, items.Charge),
			have(it, items.XRayScope),
		),
		smbool.And(l.know(knows.ShortCharge), have(it, items.SpeedBooster)),
	)
}

// EnoughStuffsPhantoon: dodging the flames is easier with charge or screw
// attack and harder with only a couple of missile packs.
func (l *Logic) EnoughStuffsPhantoon(it items.Items) smbool.Bool {
	result := l.BossFight(it, settings.Phantoon)
	if !result.Feasible() {
		return smbool.False()
	}

	rates := l.settings.Rates()
	difficulty := l.rate(it, settings.Phantoon, result)
	hasCharge := have(it, items.Charge).Satisfied
	if hasCharge || have(it, items.ScrewAttack).Satisfied {
		difficulty /= rates.PhantoonFlamesAvoidBonus
	} else if items.Count(it, items.Missile) <= 2 {
		difficulty *= rates.PhantoonLowMissileMalus
	}

	return smbool.Or(
		smbool.True(difficulty),
		smbool.And(
			l.know(knows.MicrowavePhantoon),
			have(it, items.Plasma),
			have(it, items.Charge),
			have(it, items.XRayScope),
		),
	)
}

// EnoughStuffsMotherbrain: the first phase is immune to charged shots; the
// rating covers both phases together.
func (l *Logic) EnoughStuffsMotherbrain(it items.Items) smbool.Bool {
	first := l.fight(it, MotherBrain1, combat.Options{})
	if !first.Feasible() {
		return smbool.False()
	}
	return l.bossFight(it, settings.MotherBrain, l.BossFight(it, settings.MotherBrain))
}

// EnoughStuffs dispatches to the boss specific check.
func (l *Logic) EnoughStuffs(it items.Items, boss settings.Boss) smbool.Bool {
	switch boss {
	case settings.Kraid:
		return l.EnoughStuffsKraid(it)
	case settings.Phantoon:
		return l.EnoughStuffsPhantoon(it)
	case settings.Draygon:
		return l.EnoughStuffsDraygon(it)
	case settings.Ridley:
		return l.EnoughStuffsRidley(it)
	case settings.MotherBrain:
		return l.EnoughStuffsMotherbrain(it)
	default:
		return smbool.False()
	}
}

// Package combat estimates whether a loadout can kill a boss, how much
// ammunition it has to spare and how long the fight lasts, and turns that
// into a difficulty rating.
package combat

import (
	"sort"

	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/settings"
)

// Per-shot damage of each ammunition type. Every expansion holds five shots.
const (
	MissileDamage   = 100.0
	SuperDamage     = 300.0
	PowerBombDamage = 200.0
	ShotsPerPack    = 5

	// no boss takes more charged shots than this
	maxChargedShots = 10000
)

// beamCombos lists beam combinations from strongest to weakest. The first
// combination fully owned sets the damage of a charged shot before the
// charge multiplier.
var beamCombos = []struct {
	beams  []items.Item
	damage float64
}{
	{[]items.Item{items.Ice, items.Wave, items.Plasma}, 300},
	{[]items.Item{items.Wave, items.Plasma}, 250},
	{[]items.Item{items.Ice, items.Plasma}, 200},
	{[]items.Item{items.Plasma}, 150},
	{[]items.Item{items.Ice, items.Wave, items.Spazer}, 100},
	{[]items.Item{items.Wave, items.Spazer}, 70},
	{[]items.Item{items.Ice, items.Spazer}, 60},
	{[]items.Item{items.Ice, items.Wave}, 60},
	{[]items.Item{items.Wave}, 50},
	{[]items.Item{items.Spazer}, 40},
	{[]items.Item{items.Ice}, 30},
}

// BeamDamage returns the damage of the best beam combination owned.
func BeamDamage(it items.Items) float64 {
	for _, combo := range beamCombos {
		if haveAll(it, combo.beams) {
			return combo.damage
		}
	}
	return 0
}

func haveAll(it items.Items, list []items.Item) bool {
	for _, item := range list {
		if items.Count(it, item) == 0 {
			return false
		}
	}
	return true
}

// Options describe how a boss can be damaged.
type Options struct {
	// DoubleSuper doubles super missile damage.
	DoubleSuper bool
	// Charge allows charged beam shots.
	Charge bool
	// Power allows power bombs.
	Power bool
	// GivesDrops means the boss refills ammunition during the fight.
	GivesDrops bool
}

// DefaultOptions allows charged shots and assumes the boss drops ammo.
func DefaultOptions() Options {
	return Options{Charge: true, GivesDrops: true}
}

// FightResult is the outcome of a fight estimation. A zero AmmoMargin
// means the boss cannot be beaten with the loadout.
type FightResult struct {
	// AmmoMargin is the ratio of ammunition damage to boss energy, plus
	// two when charged shots are available.
	AmmoMargin float64
	// Seconds is the estimated fight duration with perfect aim.
	Seconds float64
}

// Feasible reports whether the fight can be won.
func (r FightResult) Feasible() bool {
	return r.AmmoMargin > 0
}

type damageSource struct {
	dps    float64
	amount float64
	shot   float64
}

// CanInflictEnoughDamages estimates a fight against a boss with the given
// energy. bossEnergy must be positive.
func CanInflictEnoughDamages(it items.Items, rates settings.AlgorithmRates, bossEnergy float64, opts Options) FightResult {
	if bossEnergy <= 0 {
		return FightResult{}
	}

	var chargeDamage float64
	if opts.Charge && items.Count(it, items.Charge) > 0 {
		chargeDamage = BeamDamage(it) * 3
	}

	missiles := float64(items.Count(it, items.Missile) * ShotsPerPack)
	missilesDamage := missiles * MissileDamage

	oneSuper := SuperDamage
	if opts.DoubleSuper {
		oneSuper *= 2
	}
	supers := float64(items.Count(it, items.Super) * ShotsPerPack)
	supersDamage := supers * oneSuper

	var powerBombs, powerDamage float64
	if opts.Power && items.Count(it, items.PowerBomb) > 0 {
		powerBombs = float64(items.Count(it, items.PowerBomb) * ShotsPerPack)
		powerDamage = powerBombs * PowerBombDamage
	}

	ammoDamage := missilesDamage + supersDamage + powerDamage
	if chargeDamage <= 0 && !opts.GivesDrops && ammoDamage < bossEnergy {
		return FightResult{}
	}

	margin := ammoDamage / bossEnergy
	if chargeDamage > 0 {
		margin += 2
	}

	var powerDPS float64
	if powerDamage > 0 {
		powerDPS = rates.PowerBombsPerSecond * PowerBombDamage
	}
	sources := []damageSource{
		{dps: rates.MissilesPerSecond * MissileDamage, amount: missiles, shot: MissileDamage},
		{dps: rates.SupersPerSecond * oneSuper, amount: supers, shot: oneSuper},
		{dps: powerDPS, amount: powerBombs, shot: PowerBombDamage},
		{dps: chargeDamage * rates.ChargedShotsPerSecond, amount: maxChargedShots, shot: chargeDamage},
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].dps > sources[j].dps
	})

	energy := bossEnergy
	var secs float64
	for _, src := range sources {
		if src.dps == 0 || src.shot == 0 || src.amount == 0 {
			continue
		}
		fire := min(energy/src.shot, src.amount)
		secs += fire * (src.shot / src.dps)
		energy -= fire * src.shot
		if energy <= 0 {
			break
		}
	}
	if energy > 0 {
		secs += energy * rates.MissileDropsPerMinute * 100 / 60
	}

	return FightResult{AmmoMargin: margin, Seconds: secs}
}

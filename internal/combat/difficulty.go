package combat

import (
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// ReferenceDuration is the fight length, in seconds, at which the energy
// table difficulty applies unchanged. It is also the normalization rate
// used when a table has none.
const ReferenceDuration = 120.0

// EffectiveEnergy is half the tank count, doubled for each suit owned.
func EffectiveEnergy(it items.Items) float64 {
	coeff := 0.5
	if items.Count(it, items.Varia) > 0 {
		coeff *= 2
	}
	if items.Count(it, items.Gravity) > 0 {
		coeff *= 2
	}
	return coeff * float64(items.EnergyReserveCount(it))
}

// BaseDifficulty interpolates the energy table linearly. Energy below the
// first key uses the first value and energy above the last key uses the
// last value. An empty table rates the fight medium.
func BaseDifficulty(table settings.DifficultyTable, energy float64) float64 {
	keys := table.SortedEnergy()
	if len(keys) == 0 {
		return smbool.Medium
	}

	current := keys[0]
	difficulty := table.Energy[current]
	var sup float64
	found := false
	for _, k := range keys {
		if k > energy {
			sup = k
			found = true
			break
		}
		current = k
		difficulty = table.Energy[k]
	}

	if found && energy > current {
		difficulty += (table.Energy[sup] - difficulty) / (sup - current) * (energy - current)
	}
	return difficulty
}

// ComputeBossDifficulty rates a fight from the player's energy, the
// estimated duration and the ammunition margin. A low margin only ever
// makes the fight harder.
func ComputeBossDifficulty(it items.Items, rates settings.AlgorithmRates, ammoMargin, secs float64, table settings.DifficultyTable) float64 {
	rate := ReferenceDuration
	if table.Rate != nil && *table.Rate > 0 {
		rate = *table.Rate
	}
	duration := secs / rate

	difficulty := BaseDifficulty(table, EffectiveEnergy(it))
	difficulty *= duration / ReferenceDuration

	adjust := 1 - (ammoMargin - rates.AmmoMarginIfNoCharge)
	if adjust > 1 {
		difficulty *= adjust
	}

	return difficulty
}

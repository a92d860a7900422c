package items

import "github.com/lawnchairsociety/smlogic/internal/smbool"

// Threshold pairs a minimum count with the difficulty of getting by with
// exactly that many copies.
type Threshold struct {
	Count      int               `yaml:"count"`
	Difficulty smbool.Difficulty `yaml:"difficulty"`
}

// Have tests for at least one copy of item, with no difficulty.
func Have(it Items, item Item) smbool.Bool {
	return HaveWeighted(it, item, 0)
}

// HaveWeighted tests for at least one copy of item with the given difficulty.
func HaveWeighted(it Items, item Item, difficulty smbool.Difficulty) smbool.Bool {
	return smbool.Of(it[item] > 0, difficulty)
}

// Count returns the number of copies of item owned.
func Count(it Items, item Item) int {
	return it[item]
}

// HaveCount reports whether at least count copies are owned.
func HaveCount(it Items, item Item, count int) bool {
	return Count(it, item) >= count
}

// CountOk tests for at least count copies of item.
func CountOk(it Items, item Item, count int, difficulty smbool.Difficulty) smbool.Bool {
	return smbool.Of(HaveCount(it, item, count), difficulty)
}

// CountOkList evaluates each threshold and keeps the easiest one met, so
// owning more copies is never harder than owning fewer.
func CountOkList(it Items, item Item, thresholds []Threshold) smbool.Bool {
	results := make([]smbool.Bool, len(thresholds))
	for i, th := range thresholds {
		results[i] = CountOk(it, item, th.Count, th.Difficulty)
	}
	return smbool.Or(results...)
}

// EnergyReserveCount is the number of energy tanks and reserve tanks combined.
func EnergyReserveCount(it Items) int {
	return Count(it, ETank) + Count(it, Reserve)
}

// EnergyReserveCountOk tests for at least count energy and reserve tanks.
func EnergyReserveCountOk(it Items, count int, difficulty smbool.Difficulty) smbool.Bool {
	return smbool.Of(EnergyReserveCount(it) >= count, difficulty)
}

// EnergyReserveCountOkList is CountOkList over the combined tank count.
// An empty table is never satisfied.
func EnergyReserveCountOkList(it Items, thresholds []Threshold) smbool.Bool {
	results := make([]smbool.Bool, len(thresholds))
	for i, th := range thresholds {
		results[i] = EnergyReserveCountOk(it, th.Count, th.Difficulty)
	}
	return smbool.Or(results...)
}

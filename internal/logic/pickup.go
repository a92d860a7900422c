package logic

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// Policy decides when enough items of a kind have been placed.
type Policy string

const (
	// PolicyAll needs every location of the kind filled.
	PolicyAll Policy = "all"
	// PolicyMinimal needs the smallest loadout that can finish the game.
	PolicyMinimal Policy = "minimal"
	// PolicyQuota needs Tourian reachable and the minor quota collected.
	PolicyQuota Policy = "quota"
)

// ParsePolicy parses a policy name, case-insensitive.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyAll, PolicyMinimal, PolicyQuota:
		return p, nil
	default:
		return "", fmt.Errorf("unknown pickup policy: %s", s)
	}
}

// Pickup holds the end conditions of the item placement.
type Pickup struct {
	Majors Policy
	Minors Policy
	// MinorQuota is the number of packs of each minor needed with PolicyQuota.
	MinorQuota map[items.Item]int
}

// EnoughMajors checks the major items end condition; remaining is the
// number of major locations still unfilled.
func (l *Logic) EnoughMajors(p Pickup, it items.Items, remaining int) smbool.Bool {
	return l.enough(p.Majors, p, it, remaining)
}

// EnoughMinors checks the minor items end condition; remaining is the
// number of minor locations still unfilled.
func (l *Logic) EnoughMinors(p Pickup, it items.Items, remaining int) smbool.Bool {
	return l.enough(p.Minors, p, it, remaining)
}

func (l *Logic) enough(policy Policy, p Pickup, it items.Items, remaining int) smbool.Bool {
	switch policy {
	case PolicyAll:
		return smbool.Of(remaining == 0, 0)
	case PolicyMinimal:
		return smbool.Of(MinimalLoadout(it), 0)
	case PolicyQuota:
		return smbool.And(
			l.EnoughStuffTourian(it),
			smbool.Of(
				items.HaveCount(it, items.Missile, p.MinorQuota[items.Missile]) &&
					items.HaveCount(it, items.Super, p.MinorQuota[items.Super]) &&
					items.HaveCount(it, items.PowerBomb, p.MinorQuota[items.PowerBomb]),
				0,
			),
		)
	default:
		return smbool.False()
	}
}

// MinimalLoadout reports whether the items can theoretically finish the
// game: Morph, bombs or power bombs for the passages, three tanks for the
// rainbow beam, Varia for Lower Norfair, Speed Booster or Ice for Botwoon
// and Gravity for Draygon.
func MinimalLoadout(it items.Items) bool {
	return items.HaveCount(it, items.Morph, 1) &&
		(items.HaveCount(it, items.Bomb, 1) || items.HaveCount(it, items.PowerBomb, 1)) &&
		items.HaveCount(it, items.ETank, 3) &&
		items.HaveCount(it, items.Varia, 1) &&
		(items.HaveCount(it, items.SpeedBooster, 1) || items.HaveCount(it, items.Ice, 1)) &&
		items.HaveCount(it, items.Gravity, 1)
}

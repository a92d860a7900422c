// Package items defines the randomized pickups and the item multiset the
// logic predicates are evaluated against.
package items

import (
	"fmt"
	"strings"
)

// Item is the canonical name of a pickup.
type Item string

const (
	Missile      Item = "Missile"
	Super        Item = "Super"
	PowerBomb    Item = "PowerBomb"
	ETank        Item = "ETank"
	Reserve      Item = "Reserve"
	Morph        Item = "Morph"
	Bomb         Item = "Bomb"
	SpringBall   Item = "SpringBall"
	HiJump       Item = "HiJump"
	SpeedBooster Item = "SpeedBooster"
	SpaceJump    Item = "SpaceJump"
	ScrewAttack  Item = "ScrewAttack"
	Grapple      Item = "Grapple"
	XRayScope    Item = "XRayScope"
	Varia        Item = "Varia"
	Gravity      Item = "Gravity"
	Charge       Item = "Charge"
	Ice          Item = "Ice"
	Wave         Item = "Wave"
	Spazer       Item = "Spazer"
	Plasma       Item = "Plasma"
)

// All returns every known item, minors first.
func All() []Item {
	return []Item{
		Missile, Super, PowerBomb, ETank, Reserve,
		Morph, Bomb, SpringBall, HiJump, SpeedBooster, SpaceJump, ScrewAttack,
		Grapple, XRayScope, Varia, Gravity,
		Charge, Ice, Wave, Spazer, Plasma,
	}
}

// IsMinor reports whether the item is an ammo expansion.
func (i Item) IsMinor() bool {
	return i == Missile || i == Super || i == PowerBomb
}

// IsValid reports whether the item is one of the known pickups.
func (i Item) IsValid() bool {
	for _, known := range All() {
		if known == i {
			return true
		}
	}
	return false
}

// ParseItem parses an item name, case-insensitive.
func ParseItem(s string) (Item, error) {
	trimmed := strings.TrimSpace(s)
	for _, known := range All() {
		if strings.EqualFold(string(known), trimmed) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown item: %s", s)
}

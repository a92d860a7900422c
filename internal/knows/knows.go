// Package knows holds the player techniques a preset assumes are known,
// each with the difficulty of performing it.
package knows

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// ID identifies a technique.
type ID string

const (
	InfiniteBombJump           ID = "InfiniteBombJump"
	DiagonalBombJump           ID = "DiagonalBombJump"
	HiJumpGauntletAccess       ID = "HiJumpGauntletAccess"
	GauntletWithPowerBombs     ID = "GauntletWithPowerBombs"
	GauntletWithBombs          ID = "GauntletWithBombs"
	SimpleShortCharge          ID = "SimpleShortCharge"
	GauntletEntrySpark         ID = "GauntletEntrySpark"
	EarlyKraid                 ID = "EarlyKraid"
	ContinuousWallJump         ID = "ContinuousWallJump"
	GravityJump                ID = "GravityJump"
	MockballWs                 ID = "MockballWs"
	GreenGateGlitch            ID = "GreenGateGlitch"
	LavaDive                   ID = "LavaDive"
	WorstRoomIceCharge         ID = "WorstRoomIceCharge"
	WorstRoomHiJump            ID = "WorstRoomHiJump"
	SuitlessOuterMaridia       ID = "SuitlessOuterMaridia"
	SuitlessOuterMaridiaNoGuns ID = "SuitlessOuterMaridiaNoGuns"
	SpringBallJump             ID = "SpringBallJump"
	MochtroidClip              ID = "MochtroidClip"
	DraygonGrappleKill         ID = "DraygonGrappleKill"
	MicrowaveDraygon           ID = "MicrowaveDraygon"
	MicrowavePhantoon          ID = "MicrowavePhantoon"
	ShortCharge                ID = "ShortCharge"
	IceZebSkip                 ID = "IceZebSkip"
	SpeedZebSkip               ID = "SpeedZebSkip"
)

// Technique is one known-or-not technique and its difficulty.
type Technique struct {
	Enabled    bool
	Difficulty smbool.Difficulty
}

// Bool converts the technique into the weighted boolean used by predicates.
func (t Technique) Bool() smbool.Bool {
	return smbool.Of(t.Enabled, t.Difficulty)
}

// defaults is what a preset gets for every technique it does not mention.
var defaults = []struct {
	id  ID
	def Technique
}{
	{InfiniteBombJump, Technique{true, smbool.Medium}},
	{DiagonalBombJump, Technique{false, smbool.Hardcore}},
	{HiJumpGauntletAccess, Technique{true, smbool.Harder}},
	{GauntletWithPowerBombs, Technique{true, smbool.Hard}},
	{GauntletWithBombs, Technique{true, smbool.Hard}},
	{SimpleShortCharge, Technique{true, smbool.Hard}},
	{GauntletEntrySpark, Technique{true, smbool.Hard}},
	{EarlyKraid, Technique{true, smbool.Easy}},
	{ContinuousWallJump, Technique{false, smbool.Harder}},
	{GravityJump, Technique{true, smbool.Hard}},
	{MockballWs, Technique{false, smbool.Hardcore}},
	{GreenGateGlitch, Technique{true, smbool.Medium}},
	{LavaDive, Technique{true, smbool.Harder}},
	{WorstRoomIceCharge, Technique{false, smbool.Mania}},
	{WorstRoomHiJump, Technique{true, smbool.Hard}},
	{SuitlessOuterMaridia, Technique{true, smbool.Hardcore}},
	{SuitlessOuterMaridiaNoGuns, Technique{false, smbool.Mania}},
	{SpringBallJump, Technique{true, smbool.Hard}},
	{MochtroidClip, Technique{true, smbool.Medium}},
	{DraygonGrappleKill, Technique{true, smbool.Medium}},
	{MicrowaveDraygon, Technique{true, smbool.Easy}},
	{MicrowavePhantoon, Technique{true, smbool.Medium}},
	{ShortCharge, Technique{false, smbool.Harder}},
	{IceZebSkip, Technique{false, smbool.Hardcore}},
	{SpeedZebSkip, Technique{false, smbool.Hardcore}},
}

// All returns every technique identifier in a stable order.
func All() []ID {
	ids := make([]ID, len(defaults))
	for i, d := range defaults {
		ids[i] = d.id
	}
	return ids
}

// IsValid reports whether id names a known technique.
func (id ID) IsValid() bool {
	_, ok := Default(id)
	return ok
}

// Default returns the built-in value of a technique.
func Default(id ID) (Technique, bool) {
	for _, d := range defaults {
		if d.id == id {
			return d.def, true
		}
	}
	return Technique{}, false
}

// ParseID resolves a technique name, case-insensitive.
func ParseID(s string) (ID, error) {
	trimmed := strings.TrimSpace(s)
	for _, d := range defaults {
		if strings.EqualFold(string(d.id), trimmed) {
			return d.id, nil
		}
	}
	return "", fmt.Errorf("unknown technique: %s", s)
}

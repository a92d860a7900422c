package logic

import (
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/knows"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// minHellRunTanks is the tank count below which no hell run is expected.
const minHellRunTanks = 3

// HeatProof reports whether heated rooms deal no damage.
func (l *Logic) HeatProof(it items.Items) smbool.Bool {
	return have(it, items.Varia)
}

// CanHellRun checks a heated traversal against the configured tank table.
func (l *Logic) CanHellRun(it items.Items, run settings.HellRun) smbool.Bool {
	if l.HeatProof(it).Satisfied {
		return smbool.True(smbool.Easy)
	}
	if items.EnergyReserveCount(it) >= minHellRunTanks {
		return items.EnergyReserveCountOkList(it, l.settings.HellRunTable(run))
	}
	return smbool.False()
}

// CanSurviveHardRoom checks a hazard room against the configured tank table.
func (l *Logic) CanSurviveHardRoom(it items.Items, room settings.HardRoom) smbool.Bool {
	return items.EnergyReserveCountOkList(it, l.settings.HardRoomTable(room))
}

// CanFly is space jump, or infinite bomb jumps when the technique is known.
func (l *Logic) CanFly(it items.Items) smbool.Bool {
	return l.flyWith(it, knows.InfiniteBombJump)
}

// CanFlyDiagonally is space jump, or diagonal bomb jumps when known.
func (l *Logic) CanFlyDiagonally(it items.Items) smbool.Bool {
	return l.flyWith(it, knows.DiagonalBombJump)
}

func (l *Logic) flyWith(it items.Items, bombJump knows.ID) smbool.Bool {
	if have(it, items.SpaceJump).Satisfied {
		return smbool.True(smbool.Easy)
	}
	technique := l.know(bombJump)
	if have(it, items.Morph).Satisfied && have(it, items.Bomb).Satisfied && technique.Satisfied {
		return technique
	}
	return smbool.False()
}

func (l *Logic) CanUseBombs(it items.Items) smbool.Bool {
	return smbool.And(have(it, items.Morph), have(it, items.Bomb))
}

func (l *Logic) CanOpenRedDoors(it items.Items) smbool.Bool {
	return smbool.Or(have(it, items.Missile), have(it, items.Super))
}

func (l *Logic) CanOpenGreenDoors(it items.Items) smbool.Bool {
	return have(it, items.Super)
}

func (l *Logic) CanOpenYellowDoors(it items.Items) smbool.Bool {
	return smbool.And(have(it, items.Morph), have(it, items.PowerBomb))
}

func (l *Logic) CanUsePowerBombs(it items.Items) smbool.Bool {
	return l.CanOpenYellowDoors(it)
}

func (l *Logic) CanDestroyBombWalls(it items.Items) smbool.Bool {
	return smbool.Or(
		smbool.And(
			have(it, items.Morph),
			smbool.Or(have(it, items.Bomb), have(it, items.PowerBomb)),
		),
		have(it, items.ScrewAttack),
	)
}

func (l *Logic) CanPassBombPassages(it items.Items) smbool.Bool {
	return smbool.Or(l.CanUseBombs(it), l.CanUsePowerBombs(it))
}

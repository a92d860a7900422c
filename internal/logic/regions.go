package logic

import (
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/knows"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// CanEnterAndLeaveGauntlet: reach the entrance from the landing site, then
// break the bomb walls inside.
func (l *Logic) CanEnterAndLeaveGauntlet(it items.Items) smbool.Bool {
	return smbool.And(
		smbool.Or(
			l.CanFly(it),
			have(it, items.SpeedBooster),
			smbool.And(l.know(knows.HiJumpGauntletAccess), have(it, items.HiJump)),
		),
		smbool.Or(
			have(it, items.ScrewAttack),
			smbool.And(
				l.know(knows.GauntletWithPowerBombs),
				l.CanUsePowerBombs(it),
				items.CountOk(it, items.PowerBomb, 2, 0),
			),
			smbool.And(l.know(knows.GauntletWithBombs), l.CanUseBombs(it)),
			// short charge on the way in, power bombs on the way out
			smbool.And(
				have(it, items.SpeedBooster),
				l.CanUsePowerBombs(it),
				items.EnergyReserveCountOk(it, 2, 0),
				smbool.And(l.know(knows.SimpleShortCharge), l.know(knows.GauntletEntrySpark)),
			),
		),
	)
}

// CanAccessRedBrinstar: either through the bomb walls of Parlor and the
// green door of Big Pink, or through the yellow door of the Keyhunter room.
func (l *Logic) CanAccessRedBrinstar(it items.Items) smbool.Bool {
	return smbool.And(
		have(it, items.Super),
		smbool.Or(
			smbool.And(l.CanDestroyBombWalls(it), have(it, items.Morph)),
			l.CanUsePowerBombs(it),
		),
	)
}

// CanAccessKraid: climb to the Warehouse Entrance platform, then break
// the bomb block of the Warehouse Zeela room.
func (l *Logic) CanAccessKraid(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanAccessRedBrinstar(it),
		smbool.Or(
			have(it, items.HiJump),
			l.CanFly(it),
			l.know(knows.EarlyKraid),
		),
		l.CanPassBombPassages(it),
	)
}

// CanAccessWs: through the Moat to the Wrecked Ship.
func (l *Logic) CanAccessWs(it items.Items) smbool.Bool {
	return smbool.And(
		have(it, items.Super),
		l.CanUsePowerBombs(it),
		smbool.Or(
			smbool.Or(
				have(it, items.Grapple),
				have(it, items.SpaceJump),
				l.know(knows.ContinuousWallJump),
			),
			smbool.Or(
				smbool.And(l.know(knows.DiagonalBombJump), l.CanUseBombs(it)),
				smbool.And(l.know(knows.SimpleShortCharge), have(it, items.SpeedBooster)),
				smbool.And(l.know(knows.GravityJump), have(it, items.Gravity)),
				smbool.And(l.know(knows.MockballWs), have(it, items.Morph), have(it, items.SpringBall)),
			),
		),
	)
}

// CanAccessHeatedNorfair: Bubble Mountain and everything hell-run from it.
func (l *Logic) CanAccessHeatedNorfair(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanAccessRedBrinstar(it),
		l.CanHellRun(it, settings.HellRunMainUpperNorfair),
	)
}

// CanAccessCrocomire: hell run from Bubble Mountain past the green gate,
// or the speedway from Red Tower.
func (l *Logic) CanAccessCrocomire(it items.Items) smbool.Bool {
	return smbool.Or(
		smbool.And(
			l.CanAccessHeatedNorfair(it),
			smbool.Or(l.know(knows.GreenGateGlitch), have(it, items.Wave)),
		),
		smbool.And(
			l.CanAccessRedBrinstar(it),
			l.CanUsePowerBombs(it),
			have(it, items.SpeedBooster),
			items.EnergyReserveCountOk(it, 2, 0),
		),
	)
}

// CanAccessLowerNorfair always requires Varia, then the Lava Dive room.
func (l *Logic) CanAccessLowerNorfair(it items.Items) smbool.Bool {
	return smbool.And(
		l.HeatProof(it),
		l.CanAccessRedBrinstar(it),
		l.CanUsePowerBombs(it),
		smbool.Or(
			smbool.And(have(it, items.Gravity), have(it, items.SpaceJump)),
			smbool.And(l.know(knows.GravityJump), have(it, items.Gravity)),
			smbool.And(l.know(knows.LavaDive), have(it, items.HiJump), items.EnergyReserveCountOk(it, 3, 0)),
		),
	)
}

func (l *Logic) CanPassWorstRoom(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanAccessLowerNorfair(it),
		smbool.Or(
			l.CanFly(it),
			smbool.And(l.know(knows.WorstRoomIceCharge), have(it, items.Ice), have(it, items.Charge)),
			smbool.And(l.know(knows.WorstRoomHiJump), have(it, items.HiJump)),
		),
	)
}

// CanAccessOuterMaridia: Glass Tunnel, then up Main Street either with
// Gravity or by freezing the crabs.
func (l *Logic) CanAccessOuterMaridia(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanAccessRedBrinstar(it),
		l.CanUsePowerBombs(it),
		smbool.Or(
			smbool.And(
				have(it, items.Gravity),
				// past Mt. Everest
				smbool.Or(
					have(it, items.Grapple),
					have(it, items.SpeedBooster),
					l.CanFly(it),
					l.know(knows.GravityJump),
				),
			),
			smbool.Or(
				smbool.And(
					have(it, items.HiJump),
					have(it, items.Ice),
					smbool.Or(
						l.know(knows.SuitlessOuterMaridiaNoGuns),
						smbool.And(
							l.know(knows.SuitlessOuterMaridia),
							have(it, items.SpringBall),
							l.know(knows.SpringBallJump),
						),
					),
				),
				smbool.And(
					l.know(knows.SuitlessOuterMaridia),
					have(it, items.HiJump),
					have(it, items.Ice),
					smbool.Or(have(it, items.Wave), have(it, items.Spazer), have(it, items.Plasma)),
				),
			),
		),
	)
}

func (l *Logic) CanAccessInnerMaridia(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanAccessRedBrinstar(it),
		l.CanUsePowerBombs(it),
		have(it, items.Gravity),
	)
}

// CanDoSuitlessMaridia: grapple up to the upper right door of Mt. Everest.
func (l *Logic) CanDoSuitlessMaridia(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanAccessOuterMaridia(it),
		have(it, items.Grapple),
	)
}

func (l *Logic) CanDefeatBotwoon(it items.Items) smbool.Bool {
	return smbool.And(
		smbool.Or(l.CanAccessInnerMaridia(it), l.CanDoSuitlessMaridia(it)),
		smbool.Or(
			smbool.And(have(it, items.SpeedBooster), have(it, items.Gravity)),
			smbool.And(l.know(knows.MochtroidClip), have(it, items.Ice)),
		),
	)
}

// CanDefeatDraygon reaches Draygon; the fight itself always needs Gravity.
func (l *Logic) CanDefeatDraygon(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanDefeatBotwoon(it),
		have(it, items.Gravity),
	)
}

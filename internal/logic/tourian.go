package logic

import (
	"github.com/lawnchairsociety/smlogic/internal/combat"
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/knows"
	"github.com/lawnchairsociety/smlogic/internal/objectives"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// CanPassMetroids needs Ice, or enough power bombs to not leave Tourian
// for a refill.
func (l *Logic) CanPassMetroids(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanOpenRedDoors(it),
		smbool.Or(
			have(it, items.Ice),
			smbool.Of(items.HaveCount(it, items.PowerBomb, 3), 0),
		),
	)
}

// CanPassZebetites needs a skip, or the ammunition to break every zebetite
// without refilling. Charged shots do not hurt them.
func (l *Logic) CanPassZebetites(it items.Items) smbool.Bool {
	zebs := l.fight(it, ZebetiteEnergy*zebetitesPerEntry, combat.Options{})
	return smbool.Or(
		smbool.And(have(it, items.Ice), l.know(knows.IceZebSkip)),
		smbool.And(have(it, items.SpeedBooster), l.know(knows.SpeedZebSkip)),
		smbool.Of(zebs.AmmoMargin >= 1, 0),
	)
}

func (l *Logic) EnoughStuffTourian(it items.Items) smbool.Bool {
	return smbool.And(
		l.CanPassMetroids(it),
		l.CanPassZebetites(it),
		l.EnoughStuffsMotherbrain(it),
	)
}

// CanEndGame is the end condition of a seed: every active objective is
// cleared and Tourian can be finished. Nil goals mean the vanilla
// objectives.
func (l *Logic) CanEndGame(it items.Items, deaths objectives.DeathReader, goals *objectives.Objectives) smbool.Bool {
	if goals == nil {
		goals = objectives.Vanilla()
	}
	return smbool.And(
		goals.CanClearGoals(deaths),
		l.EnoughStuffTourian(it),
	)
}

package combat

import (
	"math"
	"testing"

	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBeamDamage(t *testing.T) {
	tests := []struct {
		name     string
		beams    []items.Item
		expected float64
	}{
		{"ice wave plasma", []items.Item{items.Ice, items.Wave, items.Plasma}, 300},
		{"full kit", []items.Item{items.Ice, items.Wave, items.Spazer, items.Plasma}, 300},
		{"wave plasma", []items.Item{items.Wave, items.Plasma}, 250},
		{"ice plasma", []items.Item{items.Ice, items.Plasma}, 200},
		{"plasma only", []items.Item{items.Plasma}, 150},
		{"ice wave spazer", []items.Item{items.Ice, items.Wave, items.Spazer}, 100},
		{"wave spazer", []items.Item{items.Wave, items.Spazer}, 70},
		{"ice spazer", []items.Item{items.Ice, items.Spazer}, 60},
		{"ice wave", []items.Item{items.Ice, items.Wave}, 60},
		{"wave", []items.Item{items.Wave}, 50},
		{"spazer", []items.Item{items.Spazer}, 40},
		{"ice", []items.Item{items.Ice}, 30},
		{"no beams", nil, 0},
		{"charge alone", []items.Item{items.Charge}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BeamDamage(items.New(tt.beams...)); got != tt.expected {
				t.Errorf("BeamDamage(%v) = %v, want %v", tt.beams, got, tt.expected)
			}
		})
	}
}

func TestCanInflictEnoughDamagesNothing(t *testing.T) {
	result := CanInflictEnoughDamages(items.Items{}, settings.DefaultRates(), 1000, Options{})
	if result != (FightResult{}) {
		t.Errorf("empty loadout = %+v, want zero result", result)
	}
	if result.Feasible() {
		t.Error("empty loadout should not be feasible")
	}
}

func TestCanInflictEnoughDamagesExactAmmo(t *testing.T) {
	rates := settings.DefaultRates()
	it := items.Items{items.Missile: 2}

	result := CanInflictEnoughDamages(it, rates, 1000, Options{})
	if !approx(result.AmmoMargin, 1.0) {
		t.Errorf("AmmoMargin = %v, want 1.0", result.AmmoMargin)
	}
	if want := 10 / rates.MissilesPerSecond; !approx(result.Seconds, want) {
		t.Errorf("Seconds = %v, want %v", result.Seconds, want)
	}
}

func TestCanInflictEnoughDamagesNotEnoughAmmo(t *testing.T) {
	it := items.Items{items.Missile: 1}
	result := CanInflictEnoughDamages(it, settings.DefaultRates(), 1000, Options{})
	if result.Feasible() {
		t.Errorf("500 damage against 1000 energy without drops = %+v, want infeasible", result)
	}
}

func TestCanInflictEnoughDamagesDrops(t *testing.T) {
	rates := settings.DefaultRates()
	it := items.Items{items.Missile: 1}

	result := CanInflictEnoughDamages(it, rates, 1000, Options{GivesDrops: true})
	if !approx(result.AmmoMargin, 0.5) {
		t.Errorf("AmmoMargin = %v, want 0.5", result.AmmoMargin)
	}
	want := 5/rates.MissilesPerSecond + 500*rates.MissileDropsPerMinute*100/60
	if !approx(result.Seconds, want) {
		t.Errorf("Seconds = %v, want %v", result.Seconds, want)
	}
}

func TestCanInflictEnoughDamagesCharge(t *testing.T) {
	rates := settings.DefaultRates()
	it := items.New(items.Charge, items.Plasma)

	result := CanInflictEnoughDamages(it, rates, 900, Options{Charge: true})
	if !approx(result.AmmoMargin, 2) {
		t.Errorf("AmmoMargin = %v, want 2", result.AmmoMargin)
	}
	// two charged plasma shots of 450 damage
	if want := 2 / rates.ChargedShotsPerSecond; !approx(result.Seconds, want) {
		t.Errorf("Seconds = %v, want %v", result.Seconds, want)
	}

	noCharge := CanInflictEnoughDamages(it, rates, 900, Options{Charge: false})
	if noCharge.Feasible() {
		t.Errorf("charge disabled = %+v, want infeasible", noCharge)
	}
}

func TestCanInflictEnoughDamagesUsesFastestSourceFirst(t *testing.T) {
	rates := settings.DefaultRates()
	it := items.Items{items.Missile: 10, items.Super: 10}

	// supers deal more damage per second, so 4 supers kill 1200 energy
	result := CanInflictEnoughDamages(it, rates, 1200, Options{})
	if want := 4 / rates.SupersPerSecond; !approx(result.Seconds, want) {
		t.Errorf("Seconds = %v, want %v", result.Seconds, want)
	}

	double := CanInflictEnoughDamages(it, rates, 1200, Options{DoubleSuper: true})
	if want := 2 / rates.SupersPerSecond; !approx(double.Seconds, want) {
		t.Errorf("double super Seconds = %v, want %v", double.Seconds, want)
	}
	if double.AmmoMargin <= result.AmmoMargin {
		t.Errorf("double super margin %v should exceed %v", double.AmmoMargin, result.AmmoMargin)
	}
}

func TestCanInflictEnoughDamagesPowerBombs(t *testing.T) {
	it := items.Items{items.PowerBomb: 2}
	rates := settings.DefaultRates()

	without := CanInflictEnoughDamages(it, rates, 2000, Options{})
	if without.Feasible() {
		t.Errorf("power bombs not allowed = %+v, want infeasible", without)
	}

	with := CanInflictEnoughDamages(it, rates, 2000, Options{Power: true})
	if !approx(with.AmmoMargin, 1) {
		t.Errorf("AmmoMargin = %v, want 1", with.AmmoMargin)
	}
}

func TestBaseDifficulty(t *testing.T) {
	table := settings.DifficultyTable{Energy: map[float64]float64{0.5: 10, 1: 5, 2: 1}}

	tests := []struct {
		energy   float64
		expected float64
	}{
		{0, 10},
		{0.5, 10},
		{0.75, 7.5},
		{1, 5},
		{1.5, 3},
		{2, 1},
		{6, 1},
	}

	for _, tt := range tests {
		if got := BaseDifficulty(table, tt.energy); !approx(got, tt.expected) {
			t.Errorf("BaseDifficulty(%v) = %v, want %v", tt.energy, got, tt.expected)
		}
	}

	if got := BaseDifficulty(settings.DifficultyTable{}, 3); got != smbool.Medium {
		t.Errorf("BaseDifficulty(empty) = %v, want %v", got, smbool.Medium)
	}
}

func TestEffectiveEnergy(t *testing.T) {
	tests := []struct {
		name     string
		it       items.Items
		expected float64
	}{
		{"no suit", items.Items{items.ETank: 4}, 2},
		{"varia", items.Items{items.ETank: 4, items.Varia: 1}, 4},
		{"both suits", items.Items{items.ETank: 2, items.Reserve: 2, items.Varia: 1, items.Gravity: 1}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveEnergy(tt.it); got != tt.expected {
				t.Errorf("EffectiveEnergy = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestComputeBossDifficultyMonotonicInSeconds(t *testing.T) {
	rates := settings.DefaultRates()
	table := settings.Defaults().BossTable(settings.Ridley)
	it := items.Items{items.ETank: 6, items.Varia: 1}

	previous := -1.0
	for secs := 0.0; secs <= 600; secs += 15 {
		d := ComputeBossDifficulty(it, rates, 3, secs, table)
		if d < previous {
			t.Fatalf("difficulty decreased at %vs: %v < %v", secs, d, previous)
		}
		previous = d
	}
}

func TestComputeBossDifficultyDefaultRate(t *testing.T) {
	rates := settings.DefaultRates()
	table := settings.DifficultyTable{Energy: map[float64]float64{0: smbool.Hard}}

	got := ComputeBossDifficulty(items.Items{}, rates, 10, 240, table)
	want := smbool.Hard * (240 / ReferenceDuration) / ReferenceDuration
	if !approx(got, want) {
		t.Errorf("ComputeBossDifficulty = %v, want %v", got, want)
	}
}

func TestComputeBossDifficultyAmmoPenalty(t *testing.T) {
	rates := settings.DefaultRates()
	one := 1.0
	table := settings.DifficultyTable{Rate: &one, Energy: map[float64]float64{0: smbool.Medium}}

	base := ComputeBossDifficulty(items.Items{}, rates, 10, ReferenceDuration, table)
	if !approx(base, smbool.Medium) {
		t.Fatalf("large margin difficulty = %v, want %v", base, smbool.Medium)
	}

	low := ComputeBossDifficulty(items.Items{}, rates, 0.5, ReferenceDuration, table)
	if want := smbool.Medium * 2; !approx(low, want) {
		t.Errorf("low margin difficulty = %v, want %v", low, want)
	}
}

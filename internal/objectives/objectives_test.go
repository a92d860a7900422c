package objectives

import (
	"sync"
	"testing"

	"github.com/lawnchairsociety/smlogic/internal/settings"
)

func TestBossState(t *testing.T) {
	s := NewBossState()
	if s.Dead(settings.Kraid) {
		t.Error("Kraid should start alive")
	}

	s.Kill(settings.Kraid)
	s.Kill(settings.Ridley)
	if !s.Dead(settings.Kraid) {
		t.Error("Kraid should be dead")
	}

	killed := s.Killed()
	if len(killed) != 2 || killed[0] != settings.Kraid || killed[1] != settings.Ridley {
		t.Errorf("Killed() = %v, want [Kraid Ridley]", killed)
	}

	s.Revive(settings.Kraid)
	if s.Dead(settings.Kraid) {
		t.Error("Kraid should be alive after Revive")
	}

	s.Reset()
	if len(s.Killed()) != 0 {
		t.Errorf("Killed() after Reset = %v, want empty", s.Killed())
	}
}

func TestBossStateConcurrentReads(t *testing.T) {
	s := NewBossState()
	s.Kill(settings.Phantoon)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !s.Dead(settings.Phantoon) {
				t.Error("Phantoon should be dead")
			}
		}()
	}
	wg.Wait()
}

func TestAreaBossDead(t *testing.T) {
	s := NewBossState()
	s.Kill(settings.Ridley)

	tests := []struct {
		area Area
		want bool
	}{
		{Brinstar, false},
		{Norfair, true},
		{LowerNorfair, true},
		{WreckedShip, false},
		{Maridia, false},
		{Crateria, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.area), func(t *testing.T) {
			if got := AreaBossDead(s, tt.area); got != tt.want {
				t.Errorf("AreaBossDead(%s) = %v, want %v", tt.area, got, tt.want)
			}
		})
	}
}

func TestAllBossesDead(t *testing.T) {
	s := NewBossState()
	for i, b := range G4 {
		if AllBossesDead(s) {
			t.Fatalf("AllBossesDead() true with only %d bosses dead", i)
		}
		s.Kill(b)
	}
	if !AllBossesDead(s) {
		t.Error("AllBossesDead() = false with G4 dead")
	}
}

func TestVanillaGoals(t *testing.T) {
	o := Vanilla()
	s := NewBossState()

	want := []string{"kill kraid", "kill phantoon", "kill draygon", "kill ridley"}
	got := o.Goals()
	if len(got) != len(want) {
		t.Fatalf("Goals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Goals()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	for _, b := range G4 {
		if o.CanClearGoals(s).Satisfied {
			t.Fatalf("goals cleared before %s died", b)
		}
		s.Kill(b)
	}
	if r := o.CanClearGoals(s); !r.Satisfied || r.Weight != 0 {
		t.Errorf("CanClearGoals() = %+v, want (true, 0)", r)
	}
}

func TestAddGoal(t *testing.T) {
	o := New()
	if err := o.AddGoal("kill G4"); err != nil {
		t.Fatalf("AddGoal(kill G4) error = %v", err)
	}
	if err := o.AddGoal("kill kraid"); err == nil {
		t.Error("AddGoal(kill kraid) should conflict with kill G4")
	}
	if err := o.AddGoal("kill G4"); err == nil {
		t.Error("AddGoal should reject a duplicate goal")
	}
	if err := o.AddGoal("kill mother brain"); err == nil {
		t.Error("AddGoal should reject an unknown goal")
	}
}

func TestEmptyObjectivesAreCleared(t *testing.T) {
	if !New().CanClearGoals(NewBossState()).Satisfied {
		t.Error("no goals should be trivially cleared")
	}
}

// deathsOnly hides the event side of a BossState.
type deathsOnly struct{ s *BossState }

func (d deathsOnly) Dead(boss settings.Boss) bool { return d.s.Dead(boss) }

func TestMiniBossGoals(t *testing.T) {
	tests := []struct {
		goal string
		boss settings.Boss
	}{
		{"kill spore spawn", SporeSpawn},
		{"kill botwoon", Botwoon},
		{"kill crocomire", Crocomire},
		{"kill bomb torizo", BombTorizo},
		{"kill golden torizo", GoldenTorizo},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			o := New()
			if err := o.AddGoal(tt.goal); err != nil {
				t.Fatalf("AddGoal(%s) error = %v", tt.goal, err)
			}
			s := NewBossState()
			if o.CanClearGoals(s).Satisfied {
				t.Fatal("goal cleared with the mini-boss alive")
			}
			s.Kill(tt.boss)
			if !o.CanClearGoals(s).Satisfied {
				t.Errorf("goal not cleared after %s died", tt.boss)
			}
			if err := o.AddGoal("kill mini bosses"); err == nil {
				t.Error("kill mini bosses should conflict with a single mini-boss goal")
			}
		})
	}
}

func TestKillMiniBosses(t *testing.T) {
	o := New()
	if err := o.AddGoal("kill mini bosses"); err != nil {
		t.Fatalf("AddGoal error = %v", err)
	}
	if err := o.AddGoal("kill botwoon"); err == nil {
		t.Error("kill botwoon should conflict with kill mini bosses")
	}

	s := NewBossState()
	for _, b := range MiniBosses {
		if o.CanClearGoals(s).Satisfied {
			t.Fatalf("goals cleared before %s died", b)
		}
		s.Kill(b)
	}
	if !o.CanClearGoals(s).Satisfied {
		t.Error("goals not cleared with every mini-boss dead")
	}
	if AllBossesDead(s) {
		t.Error("mini-boss deaths should not count toward G4")
	}
}

func TestEventGoals(t *testing.T) {
	tests := []struct {
		goal  string
		event Event
	}{
		{"shaktool cleared path", ShaktoolPath},
		{"finish scavenger hunt", ScavengerHunt},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			o := New()
			if err := o.AddGoal(tt.goal); err != nil {
				t.Fatalf("AddGoal(%s) error = %v", tt.goal, err)
			}
			s := NewBossState()
			if o.CanClearGoals(s).Satisfied {
				t.Fatal("goal cleared before the event")
			}
			s.Reach(tt.event)
			if !o.CanClearGoals(s).Satisfied {
				t.Error("goal not cleared after the event")
			}
			if o.CanClearGoals(deathsOnly{s}).Satisfied {
				t.Error("a reader without events should never clear the goal")
			}
			s.Forget(tt.event)
			if o.CanClearGoals(s).Satisfied {
				t.Error("goal still cleared after Forget")
			}
		})
	}
}

func TestResetForgetsEvents(t *testing.T) {
	s := NewBossState()
	s.Kill(Crocomire)
	s.Reach(ShaktoolPath)
	s.Reset()
	if s.Dead(Crocomire) || s.Reached(ShaktoolPath) {
		t.Error("Reset should revive bosses and forget events")
	}
}

func TestSetScavengerHunt(t *testing.T) {
	tests := []struct {
		name          string
		triggerEscape bool
		want          []string
	}{
		{"hunt after the bosses", false, []string{"kill kraid", "kill phantoon", "kill draygon", "kill ridley", "finish scavenger hunt"}},
		{"hunt triggers the escape", true, []string{"finish scavenger hunt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			if err := o.SetScavengerHunt(tt.triggerEscape); err != nil {
				t.Fatalf("SetScavengerHunt() error = %v", err)
			}
			got := o.Goals()
			if len(got) != len(tt.want) {
				t.Fatalf("Goals() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Goals()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}

	o := New()
	o.SetScavengerHunt(true)
	if err := o.SetScavengerHunt(true); err == nil {
		t.Error("a second scavenger hunt should be rejected")
	}
}

func TestGoalNames(t *testing.T) {
	names := GoalNames()
	if len(names) != 13 {
		t.Fatalf("GoalNames() = %v, want 13 goals", names)
	}
	o := New()
	for i, name := range names {
		if i > 0 && names[i-1] >= name {
			t.Errorf("GoalNames() not sorted at %s", name)
		}
		if err := New().AddGoal(name); err != nil {
			t.Errorf("AddGoal(%s) error = %v", name, err)
		}
	}
	if len(o.Goals()) != 0 {
		t.Error("New() should start empty")
	}
}

package smbool

import "testing"

func TestAnd(t *testing.T) {
	tests := []struct {
		name     string
		ops      []Bool
		extra    Difficulty
		expected Bool
	}{
		{"single satisfied", []Bool{True(Hard)}, 0, True(Hard)},
		{"sum of two", []Bool{True(Easy), True(Medium)}, 0, True(Easy + Medium)},
		{"sum of four", []Bool{True(Easy), True(Easy), True(Hard), True(Medium)}, 0, True(17)},
		{"extra difficulty", []Bool{True(Easy), True(Easy)}, Hard, True(12)},
		{"one unsatisfied", []Bool{True(Mania), False()}, 0, False()},
		{"unsatisfied drops extra", []Bool{False(), True(Easy)}, Hard, False()},
		{"unsatisfied with stray weight", []Bool{{Satisfied: false, Weight: Hard}, True(Easy)}, 0, False()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AndDiff(tt.extra, tt.ops...); got != tt.expected {
				t.Errorf("AndDiff(%v, %v) = %v, want %v", tt.extra, tt.ops, got, tt.expected)
			}
		})
	}
}

func TestAndIsOrderIndependent(t *testing.T) {
	a, b, c := True(Easy), True(Harder), True(Medium)

	first := And(And(a, b), c)
	second := And(a, And(b, c))
	third := And(c, b, a)

	if first != second || second != third {
		t.Errorf("And grouping changed result: %v, %v, %v", first, second, third)
	}
}

func TestOr(t *testing.T) {
	tests := []struct {
		name     string
		ops      []Bool
		extra    Difficulty
		expected Bool
	}{
		{"single satisfied", []Bool{True(Harder)}, 0, True(Harder)},
		{"single unsatisfied", []Bool{False()}, 0, False()},
		{"cheapest alternative", []Bool{True(Hard), True(Easy), True(Mania)}, 0, True(Easy)},
		{"ignores unsatisfied", []Bool{False(), True(Hardcore)}, 0, True(Hardcore)},
		{"zero weight wins", []Bool{True(0), True(Easy)}, 0, True(0)},
		{"extra difficulty", []Bool{True(Medium), False()}, Easy, True(6)},
		{"none satisfied", []Bool{False(), False(), False()}, Hard, False()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrDiff(tt.extra, tt.ops...); got != tt.expected {
				t.Errorf("OrDiff(%v, %v) = %v, want %v", tt.extra, tt.ops, got, tt.expected)
			}
		})
	}
}

func TestOrIsOrderIndependent(t *testing.T) {
	a, b, c := True(Hard), False(), True(Medium)

	if Or(Or(a, b), c) != Or(c, Or(b, a)) {
		t.Errorf("Or grouping changed result")
	}
}

func TestOf(t *testing.T) {
	if got := Of(false, Mania); got != False() {
		t.Errorf("Of(false, Mania) = %v, want %v", got, False())
	}
	if got := Of(true, Hard); got != True(Hard) {
		t.Errorf("Of(true, Hard) = %v, want %v", got, True(Hard))
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
		hasError bool
	}{
		{"easy", Easy, false},
		{"Medium", Medium, false},
		{" HARD ", Hard, false},
		{"harder", Harder, false},
		{"hardcore", Hardcore, false},
		{"mania", Mania, false},
		{"god", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("ParseDifficulty(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelsAreAscending(t *testing.T) {
	levels := Levels()
	if len(levels) != 6 {
		t.Fatalf("Levels() returned %d levels, want 6", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("Levels()[%d] = %v is not above %v", i, levels[i], levels[i-1])
		}
	}
	if LevelName(Harder) != "harder" {
		t.Errorf("LevelName(Harder) = %q, want %q", LevelName(Harder), "harder")
	}
	if IsLevel(7) {
		t.Error("IsLevel(7) = true, want false")
	}
}

package preset

import "testing"

// defaultScore is the score of every enabled built-in technique.
const defaultScore = 73

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want int
	}{
		{"empty preset", "", defaultScore},
		{"extra technique", "knows:\n  ShortCharge:\n    enabled: true\n    difficulty: hard\n", defaultScore + 4},
		{"disabled technique", "knows:\n  EarlyKraid:\n    enabled: false\n", defaultScore - 6},
		{"harder technique", "knows:\n  EarlyKraid:\n    enabled: true\n    difficulty: mania\n", defaultScore - 5},
		{"explicit default boss", "settings:\n  bosses:\n    Kraid: Default\n", defaultScore + 2},
		{"boss label", "settings:\n  bosses:\n    Ridley: Piece of cake\n", defaultScore + 4},
		{"hell runs", "settings:\n  hell_runs:\n    Ice: Bring the heat\n    MainUpperNorfair: No thanks\n", defaultScore + 6},
		{"lower norfair", "settings:\n  hell_runs:\n    LowerNorfair: I run RBO\n", defaultScore + 12},
		{"hard rooms", "settings:\n  hard_rooms:\n    X-Ray: D-Boost master\n    Gauntlet: I don't like acid\n", defaultScore + 5},
		{"regular", regularYAML, defaultScore + 4 - 6 + 3 + 2 + 12 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(mustYAML(t, tt.yaml)); got != tt.want {
				t.Errorf("ComputeScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeScoreDefault(t *testing.T) {
	if got := ComputeScore(Default()); got != defaultScore {
		t.Errorf("ComputeScore(Default()) = %d, want %d", got, defaultScore)
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	cfg := mustYAML(t, regularYAML)
	first := ComputeScore(cfg)
	for i := 0; i < 20; i++ {
		if got := ComputeScore(cfg); got != first {
			t.Fatalf("ComputeScore() = %d on run %d, want %d", got, i, first)
		}
	}
}

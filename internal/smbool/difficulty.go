package smbool

import (
	"fmt"
	"strings"
)

// Difficulty is the weight carried by a satisfied Bool. Technique
// difficulties are drawn from the named levels below; boss fight
// difficulties are computed and can fall anywhere on the scale.
type Difficulty = float64

// Named difficulty levels, in ascending order.
const (
	Easy     Difficulty = 1
	Medium   Difficulty = 5
	Hard     Difficulty = 10
	Harder   Difficulty = 25
	Hardcore Difficulty = 50
	Mania    Difficulty = 100
)

var levelNames = []struct {
	name  string
	value Difficulty
}{
	{"easy", Easy},
	{"medium", Medium},
	{"hard", Hard},
	{"harder", Harder},
	{"hardcore", Hardcore},
	{"mania", Mania},
}

// Levels returns the six named difficulty levels, easiest first.
func Levels() []Difficulty {
	levels := make([]Difficulty, len(levelNames))
	for i, l := range levelNames {
		levels[i] = l.value
	}
	return levels
}

// ParseDifficulty parses a difficulty label such as "hard", case-insensitive.
func ParseDifficulty(s string) (Difficulty, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, l := range levelNames {
		if l.name == normalized {
			return l.value, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty: %s", s)
}

// IsLevel reports whether d is exactly one of the named levels.
func IsLevel(d Difficulty) bool {
	for _, l := range levelNames {
		if l.value == d {
			return true
		}
	}
	return false
}

// LevelName returns the label of a named level, or the number formatted
// for computed difficulties.
func LevelName(d Difficulty) string {
	for _, l := range levelNames {
		if l.value == d {
			return l.name
		}
	}
	return fmt.Sprintf("%.2f", d)
}

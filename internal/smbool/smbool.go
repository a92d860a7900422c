// Package smbool implements the weighted boolean used by every logic
// predicate: a satisfiability flag plus the difficulty of satisfying it.
package smbool

import "math"

// Bool is a satisfiability result carrying a difficulty weight.
// An unsatisfied Bool always has a zero weight.
type Bool struct {
	Satisfied bool
	Weight    Difficulty
}

// True returns a satisfied Bool with the given weight.
func True(weight Difficulty) Bool {
	return Bool{Satisfied: true, Weight: weight}
}

// False returns the canonical unsatisfied Bool.
func False() Bool {
	return Bool{}
}

// Of builds a Bool from a plain condition, dropping the weight when the
// condition does not hold.
func Of(ok bool, weight Difficulty) Bool {
	if !ok {
		return False()
	}
	return True(weight)
}

// Bool returns the satisfiability flag alone.
func (b Bool) Bool() bool {
	return b.Satisfied
}

// And is satisfied when every operand is; its weight is the sum of the
// operand weights.
func And(ops ...Bool) Bool {
	return AndDiff(0, ops...)
}

// AndDiff is And with an extra difficulty added to a satisfied result.
func AndDiff(extra Difficulty, ops ...Bool) Bool {
	var sum Difficulty
	for _, op := range ops {
		if !op.Satisfied {
			return False()
		}
		sum += op.Weight
	}
	return True(sum + extra)
}

// Or is satisfied when any operand is; its weight is the lowest weight
// among the satisfied operands.
func Or(ops ...Bool) Bool {
	return OrDiff(0, ops...)
}

// OrDiff is Or with an extra difficulty added to a satisfied result.
func OrDiff(extra Difficulty, ops ...Bool) Bool {
	best := math.Inf(1)
	found := false
	for _, op := range ops {
		if op.Satisfied && op.Weight < best {
			best = op.Weight
			found = true
		}
	}
	if !found {
		return False()
	}
	return True(best + extra)
}

// Package closeness evaluates retuning-distance policies between
// tunings. See doc.go for the full contract.
package closeness

import (
	"sort"

	"github.com/katalvlaran/gigset/tuning"
)

// Policy is a closeness key: the thresholds under which two tunings
// count as reachable by a quick on-stage retune.
type Policy struct {
	// MaxChangedStrings caps how many strings may differ at all.
	MaxChangedStrings int

	// MaxPitchChange caps the per-string movement in semitones.
	MaxPitchChange int

	// MaxTotalDifference caps the summed movement across all strings.
	MaxTotalDifference int
}

// OptimalShift returns the global transposition of from that minimizes
// the sum of absolute per-string differences against to: the integer
// median of the element-wise differences (the L1-minimizing shift).
func OptimalShift(from, to tuning.Tuning) int {
	diffs := make([]int, tuning.StringCount)
	for i := 0; i < tuning.StringCount; i++ {
		diffs[i] = to[i] - from[i]
	}
	sort.Ints(diffs)

	// Even element count: average the middle pair, truncating toward zero.
	mid := tuning.StringCount / 2

	return (diffs[mid-1] + diffs[mid]) / 2
}

// Evaluate reports whether from and to are close under p when from is
// optimally shifted, and returns that shift.
func Evaluate(from, to tuning.Tuning, p Policy) (bool, int) {
	shift := OptimalShift(from, to)

	changed, total := 0, 0
	for i := 0; i < tuning.StringCount; i++ {
		d := to[i] - (from[i] + shift)
		if d < 0 {
			d = -d
		}
		if d > 0 {
			changed++
		}
		if d > p.MaxPitchChange {
			return false, shift
		}
		total += d
	}

	return changed <= p.MaxChangedStrings && total <= p.MaxTotalDifference, shift
}

// Vector returns the per-string semitone changes from the shifted
// source to the destination: the delta a graph edge stores for the
// from → to direction.
func Vector(from, to tuning.Tuning, shift int) tuning.Delta {
	var d tuning.Delta
	for i := 0; i < tuning.StringCount; i++ {
		d[i] = to[i] - (from[i] + shift)
	}

	return d
}

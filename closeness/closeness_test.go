// Package closeness_test validates the median-shift optimizer and
// policy evaluation against hand-checked tuning pairs.
package closeness_test

import (
	"testing"

	"github.com/katalvlaran/gigset/closeness"
	"github.com/katalvlaran/gigset/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relaxed is the default analysis policy: at most two strings,
// two semitones each, four semitones total.
var relaxed = closeness.Policy{MaxChangedStrings: 2, MaxPitchChange: 2, MaxTotalDifference: 4}

func normalize(t *testing.T, label string) tuning.Tuning {
	t.Helper()
	tn, err := tuning.Normalize(label)
	require.NoError(t, err)

	return tn
}

func TestOptimalShift_Identity(t *testing.T) {
	std := normalize(t, "E A D G B E")
	assert.Zero(t, closeness.OptimalShift(std, std))
}

func TestOptimalShift_PureTransposition(t *testing.T) {
	// Eb standard is standard down one semitone on every string: the
	// optimal shift absorbs the whole difference.
	std := normalize(t, "E A D G B E")
	flat := normalize(t, "Eb Ab Db Gb Bb Eb")

	shift := closeness.OptimalShift(std, flat)
	assert.Equal(t, -1, shift)
	assert.Equal(t, tuning.Delta{}, closeness.Vector(std, flat, shift),
		"after the shift no string needs to move")
}

func TestOptimalShift_SingleOutlier(t *testing.T) {
	// Drop D moves only string 6; the median keeps the shift at zero so
	// the outlier stays isolated instead of dragging all six strings.
	std := normalize(t, "E A D G B E")
	dropd := normalize(t, "D A D G B E")

	shift := closeness.OptimalShift(std, dropd)
	assert.Zero(t, shift)
	assert.Equal(t, tuning.Delta{-2, 0, 0, 0, 0, 0}, closeness.Vector(std, dropd, shift))
}

func TestEvaluate_ClosePairs(t *testing.T) {
	std := normalize(t, "E A D G B E")

	for _, tc := range []struct {
		label string
		shift int
	}{
		{"D A D G B E", 0},       // drop D: one string, two semitones
		{"Eb Ab Db Gb Bb Eb", -1}, // pure transposition: zero strings changed
	} {
		other := normalize(t, tc.label)
		close, shift := closeness.Evaluate(std, other, relaxed)
		assert.True(t, close, "%q should be close to standard", tc.label)
		assert.Equal(t, tc.shift, shift, "shift for %q", tc.label)
	}
}

func TestEvaluate_TooManyStrings(t *testing.T) {
	// Standard → DADGAD: three strings drop two semitones, so the median
	// lands between the two groups (shift -1) and every string ends up
	// one semitone off. Far beyond a two-string key.
	std := normalize(t, "E A D G B E")
	dadgad := normalize(t, "D A D G A D")

	close, shift := closeness.Evaluate(std, dadgad, relaxed)
	assert.False(t, close)
	assert.Equal(t, -1, shift)

	wider := closeness.Policy{MaxChangedStrings: 6, MaxPitchChange: 1, MaxTotalDifference: 6}
	close, _ = closeness.Evaluate(std, dadgad, wider)
	assert.True(t, close, "a six-string one-semitone key admits the shifted pair")
}

func TestEvaluate_PerStringCap(t *testing.T) {
	// Drop D moves string 6 by two semitones; a 1-semitone cap forbids it.
	std := normalize(t, "E A D G B E")
	dropd := normalize(t, "D A D G B E")

	tight := closeness.Policy{MaxChangedStrings: 6, MaxPitchChange: 1, MaxTotalDifference: 12}
	close, _ := closeness.Evaluate(std, dropd, tight)
	assert.False(t, close)
}

func TestVector_AntisymmetricAcrossDirections(t *testing.T) {
	// The stored vector of A→B equals the negation of B→A when the
	// optimal shifts mirror each other.
	std := normalize(t, "E A D G B E")
	dropd := normalize(t, "D A D G B E")

	fwdShift := closeness.OptimalShift(std, dropd)
	revShift := closeness.OptimalShift(dropd, std)
	assert.Equal(t, -fwdShift, revShift)
	assert.Equal(t,
		closeness.Vector(std, dropd, fwdShift).Neg(),
		closeness.Vector(dropd, std, revShift))
}

// Package tuning defines the value types shared across the gigset engine.
package tuning

import (
	"errors"
	"strings"

	"github.com/katalvlaran/gigset/pitch"
)

// StringCount is the number of strings on the instrument. Every vector
// in the engine is exactly this long, index 0 = string 6 (lowest pitch)
// through index 5 = string 1 (highest pitch).
const StringCount = 6

// Sentinel errors for tuning parsing and bounds editing.
var (
	// ErrLabelLength indicates a tuning label with a token count other than 6.
	ErrLabelLength = errors.New("tuning: label must contain exactly 6 notes")

	// ErrStringIndex indicates a string index outside 0..5.
	ErrStringIndex = errors.New("tuning: string index out of range")
)

// Tuning is an absolute tuning: one integer pitch per string on the
// MIDI semitone scale. The zero value is meaningful only as a placeholder.
type Tuning [StringCount]int

// Delta is a per-string semitone change applied when retuning from one
// tuning to an adjacent one. Traversing an edge against its stored
// direction uses the element-wise negation.
type Delta [StringCount]int

// Add returns the tuning shifted string-by-string by d.
func (t Tuning) Add(d Delta) Tuning {
	var out Tuning
	for i := 0; i < StringCount; i++ {
		out[i] = t[i] + d[i]
	}

	return out
}

// Transpose returns the tuning with every string shifted by n semitones.
func (t Tuning) Transpose(n int) Tuning {
	var out Tuning
	for i := 0; i < StringCount; i++ {
		out[i] = t[i] + n
	}

	return out
}

// String renders the tuning as space-separated pitch classes in sharp
// spelling, lowest string first — the same shape labels are parsed from.
func (t Tuning) String() string {
	names := make([]string, StringCount)
	for i, p := range t {
		names[i] = pitch.ClassName(p)
	}

	return strings.Join(names, " ")
}

// Neg returns the element-wise negation of d (the reverse traversal).
func (d Delta) Neg() Delta {
	var out Delta
	for i := 0; i < StringCount; i++ {
		out[i] = -d[i]
	}

	return out
}

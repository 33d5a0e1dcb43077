package tuning

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gigset/pitch"
)

// Normalize resolves a relative tuning label into its canonical
// absolute realization.
//
// The label is split on whitespace and must yield exactly StringCount
// note-name tokens (octave digits, if present, are ignored — the
// register is resolved here, not taken from the label). Walking from
// string 6 to string 1, each string is assigned the smallest
// non-negative pitch of its class that strictly exceeds the previous
// string's pitch. The result is therefore strictly increasing, which
// encodes the instrument's natural register ordering even when raw
// pitch classes repeat or wrap.
//
// The absolute offset of the result is arbitrary; only its pairwise
// intervals matter until the solver picks a global transposition.
//
// Errors:
//
//   - ErrLabelLength    if the label has a token count other than 6.
//   - pitch.ErrBadNote  if any token is malformed (wrapped, naming the
//     token). Nothing is silently defaulted or skipped.
//
// Complexity: O(6).
func Normalize(label string) (Tuning, error) {
	tokens := strings.Fields(label)
	if len(tokens) != StringCount {
		return Tuning{}, fmt.Errorf("%w: got %d in %q", ErrLabelLength, len(tokens), label)
	}

	var out Tuning
	prev := math.MinInt
	for i, token := range tokens {
		class, err := pitch.Class(token)
		if err != nil {
			return Tuning{}, fmt.Errorf("string %d: %w", StringCount-i, err)
		}

		// Smallest k*12+class strictly above prev, with k ≥ 0.
		v := class
		if v <= prev {
			v += ((prev-v)/pitch.ClassesPerOctave + 1) * pitch.ClassesPerOctave
		}
		out[i] = v
		prev = v
	}

	return out, nil
}

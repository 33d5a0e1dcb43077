package tuning

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gigset/pitch"
)

// Interval is one closed pitch window [Min, Max] for a single string.
type Interval struct {
	Min int
	Max int
}

// Bounds is the per-string constraint set: six independent closed pitch
// intervals, index 0 = string 6 through index 5 = string 1.
//
// Bounds is a value type used as an immutable snapshot: every edit
// returns a new Bounds and the old snapshot stays valid, so feasibility
// computations are pure functions of (path, bounds) with no cache to
// invalidate.
type Bounds [StringCount]Interval

// StandardBounds is the default constraint set: every string may be
// slackened up to four semitones below standard tuning (E2 A2 D3 G3 B3
// E4) but never tightened above it — the window reachable without
// breaking strings or over-slackening.
func StandardBounds() Bounds {
	standard := [StringCount]int{40, 45, 50, 55, 59, 64} // E2 A2 D3 G3 B3 E4

	var b Bounds
	for i, p := range standard {
		b[i] = Interval{Min: p - 4, Max: p}
	}

	return b
}

// WithMin returns a copy of b with string i's lower bound set to the
// parsed pitch of note (octave digits default to pitch.DefaultOctave).
// On a malformed note or bad index the error is returned and the
// receiver's value is unchanged — callers keep their prior snapshot.
func (b Bounds) WithMin(i int, note string) (Bounds, error) {
	p, err := parseBoundPitch(i, note)
	if err != nil {
		return b, err
	}
	b[i].Min = p

	return b, nil
}

// WithMax returns a copy of b with string i's upper bound set to the
// parsed pitch of note. Same error contract as WithMin.
func (b Bounds) WithMax(i int, note string) (Bounds, error) {
	p, err := parseBoundPitch(i, note)
	if err != nil {
		return b, err
	}
	b[i].Max = p

	return b, nil
}

// Contains reports whether every string of t lies inside its interval.
func (b Bounds) Contains(t Tuning) bool {
	for i := 0; i < StringCount; i++ {
		if t[i] < b[i].Min || t[i] > b[i].Max {
			return false
		}
	}

	return true
}

// String renders the bounds as "E2..E3" style windows, lowest string first.
func (b Bounds) String() string {
	parts := make([]string, StringCount)
	for i, iv := range b {
		parts[i] = pitch.MIDIToNote(iv.Min) + ".." + pitch.MIDIToNote(iv.Max)
	}

	return strings.Join(parts, " ")
}

// parseBoundPitch validates the string index and parses the note name
// into an absolute MIDI pitch.
func parseBoundPitch(i int, note string) (int, error) {
	if i < 0 || i >= StringCount {
		return 0, fmt.Errorf("%w: %d", ErrStringIndex, i)
	}

	return pitch.NoteToMIDI(note)
}

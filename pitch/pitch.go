// Package pitch converts note names to semitone pitch values and back.
//
// See doc.go for the full contract.
package pitch

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadNote is returned when a token does not match the note-name
// grammar [A-Ga-g][#b]?(-?[0-9]+)?.
var ErrBadNote = errors.New("pitch: malformed note name")

// ClassesPerOctave is the number of semitone classes in one octave.
const ClassesPerOctave = 12

// DefaultOctave is assumed when a token carries no octave digits.
// Octave 4 is the scientific-pitch-notation middle register (A4 = 440 Hz).
const DefaultOctave = 4

// classByLetter maps the natural note letters to their semitone class.
// Accidentals shift the value by ±1.
var classByLetter = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// sharpNames is the canonical (sharp) spelling per semitone class,
// used for all rendering.
var sharpNames = [ClassesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Note is a parsed note name: a semitone class in [0,11] plus a register.
//
// Octave follows scientific pitch notation (C4 = middle C = MIDI 60).
// HasOctave records whether the source token spelled the register out;
// when false, Octave holds DefaultOctave.
type Note struct {
	Class     int
	Octave    int
	HasOctave bool
}

// Parse converts a single note-name token into a Note.
//
// Grammar: one letter A–G (either case), an optional '#' or 'b'
// accidental, and optional octave digits (a leading '-' is accepted so
// the lowest MIDI octave, C-1..B-1, stays representable).
//
// Enharmonic edge classes keep their register: "Cb4" is one semitone
// below "C4" (class 11, octave 3) and "B#3" is "C4" (class 0, octave 4).
//
// Returns ErrBadNote (wrapped with the offending token) on any
// grammar violation; a malformed token never yields a default pitch.
func Parse(token string) (Note, error) {
	if token == "" {
		return Note{}, fmt.Errorf("%w: empty token", ErrBadNote)
	}

	letter := token[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	class, ok := classByLetter[letter]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrBadNote, token)
	}

	rest := token[1:]
	if rest != "" {
		switch rest[0] {
		case '#':
			class++
			rest = rest[1:]
		case 'b':
			class--
			rest = rest[1:]
		}
	}

	n := Note{Class: class, Octave: DefaultOctave}
	if rest != "" {
		oct, err := strconv.Atoi(rest)
		if err != nil {
			return Note{}, fmt.Errorf("%w: %q", ErrBadNote, token)
		}
		n.Octave = oct
		n.HasOctave = true
	}

	// Fold Cb / B# into the neighboring octave so the register stays
	// enharmonically correct.
	switch {
	case n.Class < 0:
		n.Class += ClassesPerOctave
		n.Octave--
	case n.Class >= ClassesPerOctave:
		n.Class -= ClassesPerOctave
		n.Octave++
	}

	return n, nil
}

// Class parses token and returns only its semitone class in [0,11],
// ignoring any octave digits. This is the lookup the tuning normalizer
// uses, where the register is resolved separately.
func Class(token string) (int, error) {
	n, err := Parse(token)
	if err != nil {
		return 0, err
	}

	return n.Class, nil
}

// MIDI returns the MIDI pitch number of the note: (octave+1)*12 + class.
func (n Note) MIDI() int {
	return (n.Octave+1)*ClassesPerOctave + n.Class
}

// String renders the note in canonical sharp spelling with its octave,
// e.g. "C#4".
func (n Note) String() string {
	return sharpNames[n.Class] + strconv.Itoa(n.Octave)
}

// FromMIDI converts a MIDI pitch number into its canonical Note.
// Works for any integer pitch, including the C-1..B-1 octave.
func FromMIDI(p int) Note {
	class := ((p % ClassesPerOctave) + ClassesPerOctave) % ClassesPerOctave

	return Note{
		Class:     class,
		Octave:    (p-class)/ClassesPerOctave - 1,
		HasOctave: true,
	}
}

// NoteToMIDI parses token and returns its MIDI pitch number.
// Tokens without octave digits land in DefaultOctave.
func NoteToMIDI(token string) (int, error) {
	n, err := Parse(token)
	if err != nil {
		return 0, err
	}

	return n.MIDI(), nil
}

// MIDIToNote renders a MIDI pitch number in canonical sharp spelling,
// e.g. MIDIToNote(69) == "A4".
func MIDIToNote(p int) string {
	return FromMIDI(p).String()
}

// ClassName renders a semitone class (any integer; normalized mod 12)
// in canonical sharp spelling without a register, e.g. ClassName(1) == "C#".
func ClassName(class int) string {
	return sharpNames[((class%ClassesPerOctave)+ClassesPerOctave)%ClassesPerOctave]
}

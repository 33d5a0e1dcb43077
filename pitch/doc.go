// Package pitch provides the note-name ↔ semitone pitch bijection used
// throughout gigset.
//
// What
//
//   - Parse note-name tokens of the grammar [A-Ga-g][#b]?(-?[0-9]+)?
//     into a Note (pitch class 0–11 plus optional octave).
//   - Convert between Notes and MIDI pitch numbers (C-1 = 0, A4 = 69).
//   - Render any MIDI pitch back to its canonical sharp spelling ("C#4").
//
// Why
//
//   - Tuning labels ("E A D G B E"), per-string bound edits ("Eb2") and
//     catalog rows all arrive as note names; every other package works
//     on plain integer semitones.
//
// Determinism
//
//	Rendering always uses sharp spelling, so NoteToMIDI(MIDIToNote(p)) == p
//	for every MIDI pitch p. Flat and enharmonic inputs (Cb, B#) parse to
//	the register-correct pitch: "Cb4" is one semitone below "C4".
//
// Errors
//
//   - ErrBadNote  if a token does not match the note-name grammar.
//     Parsing never silently defaults: a malformed token is always
//     reported together with its text.
//
// Complexity
//
//   - All operations are O(len(token)) with no allocations beyond the
//     returned values.
package pitch

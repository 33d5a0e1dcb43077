// Package tuning provides the tuning normalizer and the value types the
// rest of gigset computes with: absolute tunings, per-string retune
// deltas, and per-string pitch bounds.
//
// What
//
//   - Normalize("E A D G B E") resolves a 6-token relative tuning label
//     into its canonical absolute realization: walking strings 6→1, each
//     string takes the smallest pitch of its class that exceeds the
//     previous string, so the output is strictly increasing.
//   - Tuning and Delta are fixed-size 6-vectors (index 0 = string 6, the
//     lowest; index 5 = string 1, the highest) with element-wise Add/Neg.
//   - Bounds is an immutable snapshot of six closed pitch intervals.
//     WithMin/WithMax parse a note name and return a NEW snapshot; a
//     malformed note returns the error and leaves the receiver's value
//     untouched, so callers keep a valid configuration on rejection.
//
// Why
//
//   - The normalizer output is the fixed reference vector the solver
//     transposes: its absolute offset is meaningless on its own, only
//     the pairwise intervals matter until a global transposition is
//     chosen.
//   - Immutable Bounds snapshots make every solver call a pure function
//     of its inputs; there is no shared mutable constraint state to
//     invalidate.
//
// Determinism
//
//	Normalize is a pure function of its label; the "lowest strictly
//	increasing realization" rule leaves no octave ambiguity.
//
// Errors
//
//   - ErrLabelLength  if a label does not contain exactly 6 notes.
//   - pitch.ErrBadNote (propagated) if any token is malformed; the
//     error names the offending token, and nothing is defaulted.
//   - ErrStringIndex  if a bounds edit addresses a string outside 0..5.
//
// Complexity
//
//   - Normalize: O(6) token parses plus O(1) arithmetic per string.
//   - All Tuning/Delta/Bounds operations: O(6).
package tuning

// Package session owns the interactive gigset-building state: the path
// under construction and the current bounds snapshot, mutated only
// through explicit commands.
//
// What
//
//   - Append(id) accepts a node iff solver.CanExtend does; an accepted
//     append moves the session from Empty to Building. Nodes already on
//     the path are rejected (the interaction rule forbids revisits).
//   - UndoLast() removes only the most recently appended node — strict
//     LIFO discipline, no arbitrary removal; emptying the path returns
//     the session to Empty. Reset() clears everything at once.
//   - SetMin/SetMax edit one string's bound from a note name; a
//     malformed note returns the parse error and the previous bounds
//     remain in force, so a failed edit is visible to the caller but
//     harmless to the session.
//   - Addable / AddableSet expose the per-node "may this be appended
//     now" signal the UI uses for highlighting; Pitches returns the
//     simulated absolute tunings of the current path.
//
// Why
//
//   - The engine is driven by discrete external events (clicks, bound
//     edits). Modeling them as command methods returning results keeps
//     the engine callable from any interface layer — test harness, CLI,
//     web UI — without a rendering framework in sight.
//
// Concurrency
//
//	A Session has a single logical owner applying one event at a time;
//	it performs no internal locking. Every query recomputes from the
//	current path and bounds — there are no caches to invalidate.
//
// Errors
//
//   - ErrNotAddable     - Append rejected by the admission gate.
//   - ErrDuplicateNode  - Append of a node already on the path.
//   - ErrNothingToUndo  - UndoLast on an empty path.
//
// Complexity
//
//   - Every command and query is O(len(path) × 6) or better.
package session

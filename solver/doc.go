// Package solver implements the path feasibility engine: given a path
// through the tuning graph and per-string pitch bounds, it decides
// whether one global transposition lets a single guitar realize every
// tuning along the path, and computes the resulting absolute pitches.
//
// What
//
//   - InitialTransposition picks the canonical global shift for a
//     normalized tuning: intersect the six per-string windows
//     [Min_i−t_i, Max_i−t_i] and take the intersection's upper end —
//     the MAXIMUM feasible transposition, a deterministic tie-break.
//   - Simulate walks a path, fixing the first tuning's absolute pitches
//     from the initial transposition and adding each edge's per-string
//     delta vector step by step.
//   - IsFeasible checks a whole simulated sequence at once: one shift
//     must keep EVERY string of EVERY tuning inside its window, so the
//     windows are intersected globally across strings AND tunings.
//   - CanExtend is the single admission-control gate: an empty path
//     accepts any start; a non-adjacent candidate is rejected without
//     simulating; otherwise the extended path is simulated and checked.
//
// Why
//
//   - The guitar is physically retuned string by string, but the
//     decision is global: the first tuning's absolute placement fixes
//     every later tuning via the deltas, so feasibility of the whole
//     sequence reduces to one window intersection.
//
// Failure is data
//
//	Every Solver failure is recoverable. Simulate returns sentinel
//	errors distinguishing "no tuning data", "no edge", and "constraints
//	unsatisfiable"; CanExtend converts all of them to false. The engine
//	is polled for every candidate node on every redraw and must never
//	take down the interaction loop.
//
// Determinism
//
//	All operations are pure functions of (source, path, bounds); equal
//	inputs give equal outputs, including the chosen transposition.
//
// Errors
//
//   - ErrEmptyPath       - Simulate requires a non-empty path.
//   - ErrMissingTuning   - a node lacks a relative tuning label.
//   - ErrMissingEdge     - consecutive nodes are not connected.
//   - ErrUnsatisfiable   - the window intersection is empty. This is a
//     normal, expected outcome: it is the mechanism by which admission
//     control rejects a node.
//   - Parse errors from pitch/tuning propagate when a label is malformed.
//
// Complexity
//
//   - Every operation is O(len(path) × 6); nothing blocks or suspends.
package solver

// Package tuninggraph provides the in-memory graph of tunings the
// solver and session operate on: labeled tuning nodes joined by
// undirected "closeness" edges, each carrying a per-string semitone
// delta vector.
//
// What
//
//   - AddTuning / AddEdge build the graph; each unordered pair of
//     tunings carries at most one edge, whose Delta is recorded in the
//     stored direction.
//   - EdgeDelta(from, to) always answers in the REQUESTED traversal
//     direction: when the stored direction is the reverse, the vector
//     is negated on the way out. Storage direction is invisible to
//     callers — the antisymmetry EdgeDelta(A,B) == −EdgeDelta(B,A)
//     holds whenever the edge exists.
//   - AdjacentIDs / TuningIDs return sorted slices for reproducible
//     iteration; TuningLabel exposes the relative tuning label used by
//     the normalizer.
//
// Why
//
//   - The feasibility solver needs exactly three read-only queries
//     (label, adjacency, directed delta); this package is the canonical
//     provider, with the closeness analysis in catalog.BuildGraph as
//     its usual producer.
//
// Concurrency
//
//	All methods are safe for concurrent use via an internal RWMutex;
//	reads take the read lock, mutations the write lock.
//
// Errors
//
//   - ErrEmptyTuningID   - a tuning ID is the empty string.
//   - ErrTuningNotFound  - an edge references a missing tuning.
//   - ErrSelfEdge        - an edge joins a tuning to itself.
//   - ErrDuplicateEdge   - the unordered pair already has an edge.
//
// Lookups (TuningLabel, EdgeDelta) deliberately return (value, ok)
// instead of errors: for the solver, an absent label or edge is an
// expected outcome, not an exceptional one.
//
// Complexity (V = tunings, E = edges)
//
//   - Mutations and lookups: O(1) average.
//   - AdjacentIDs: O(d log d) for degree d; TuningIDs: O(V log V).
package tuninggraph

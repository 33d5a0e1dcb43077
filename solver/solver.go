// Package solver decides path feasibility over the tuning graph.
// See doc.go for the full contract.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gigset/tuning"
)

// Sentinel errors for solver outcomes. All of them are recoverable;
// CanExtend converts every failure into a plain false.
var (
	// ErrEmptyPath indicates Simulate was called with no nodes.
	ErrEmptyPath = errors.New("solver: path is empty")

	// ErrMissingTuning indicates a node without a relative tuning label.
	ErrMissingTuning = errors.New("solver: tuning data missing")

	// ErrMissingEdge indicates consecutive path nodes with no
	// resolvable edge delta between them.
	ErrMissingEdge = errors.New("solver: edge data missing")

	// ErrUnsatisfiable indicates an empty window intersection: no global
	// transposition places every string inside its bound. A normal
	// outcome, not an exceptional one.
	ErrUnsatisfiable = errors.New("solver: constraints unsatisfiable")
)

// Source is the read-only graph access the solver needs. It is the
// consumer-side contract of the external graph collaborator;
// tuninggraph.Graph is the canonical implementation.
//
// EdgeDelta must answer in the requested traversal direction (negating
// a reverse-stored vector); storage direction never leaks through.
type Source interface {
	// TuningLabel returns the relative tuning label of a node.
	TuningLabel(id string) (string, bool)

	// EdgeDelta returns the per-string semitone delta for traversing
	// from → to, or ok == false when the nodes are not connected.
	EdgeDelta(from, to string) (tuning.Delta, bool)

	// AdjacentIDs returns the IDs adjacent to a node.
	AdjacentIDs(id string) []string
}

// InitialTransposition returns the canonical global transposition that
// places the normalized tuning rel inside bounds b.
//
// For each string i the admissible shifts form the closed window
// [b_i.Min − rel_i, b_i.Max − rel_i]; the intersection over all six
// strings is [lower, upper]. An empty intersection (lower > upper)
// means no transposition fits and ErrUnsatisfiable is returned.
// Otherwise the result is upper — always the maximum integer shift, a
// deterministic policy that keeps displayed pitches reproducible.
//
// Complexity: O(6).
func InitialTransposition(rel tuning.Tuning, b tuning.Bounds) (int, error) {
	lower, upper := math.MinInt, math.MaxInt
	for i := 0; i < tuning.StringCount; i++ {
		if lo := b[i].Min - rel[i]; lo > lower {
			lower = lo
		}
		if hi := b[i].Max - rel[i]; hi < upper {
			upper = hi
		}
	}
	if lower > upper {
		return 0, fmt.Errorf("%w: empty transposition window [%d,%d]", ErrUnsatisfiable, lower, upper)
	}

	return upper, nil
}

// Simulate computes the absolute tuning of every node along path.
//
// The first node's label is normalized and transposed by
// InitialTransposition; each subsequent node adds the edge delta
// resolved via src.EdgeDelta in traversal direction. The returned
// sequence is what IsFeasible validates as a whole.
//
// Errors:
//
//   - ErrEmptyPath       - path has no nodes.
//   - ErrMissingTuning   - the first node has no label.
//   - ErrMissingEdge     - some consecutive pair has no edge delta.
//   - ErrUnsatisfiable   - no transposition fits the first tuning.
//   - Parse errors       - the first node's label is malformed
//     (propagated from tuning.Normalize, naming the token).
//
// Complexity: O(len(path) × 6).
func Simulate(src Source, path []string, b tuning.Bounds) ([]tuning.Tuning, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	label, ok := src.TuningLabel(path[0])
	if !ok {
		return nil, fmt.Errorf("%w: node %q", ErrMissingTuning, path[0])
	}
	rel, err := tuning.Normalize(label)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", path[0], err)
	}
	shift, err := InitialTransposition(rel, b)
	if err != nil {
		return nil, err
	}

	out := make([]tuning.Tuning, 0, len(path))
	cur := rel.Transpose(shift)
	out = append(out, cur)

	for i := 1; i < len(path); i++ {
		d, ok := src.EdgeDelta(path[i-1], path[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q → %q", ErrMissingEdge, path[i-1], path[i])
		}
		cur = cur.Add(d)
		out = append(out, cur)
	}

	return out, nil
}

// IsFeasible reports whether ONE global transposition keeps every
// string of every tuning in seq inside its bound simultaneously.
//
// The per-(string, tuning) windows [Min_i − p, Max_i − p] are
// intersected globally; feasibility is a non-empty intersection. The
// input is the whole simulated sequence, not a single tuning: the
// sequence's absolute values were fixed by one initial choice, and the
// question is whether that joint placement can be shifted into bounds.
//
// An empty sequence is infeasible by definition.
//
// Complexity: O(len(seq) × 6).
func IsFeasible(seq []tuning.Tuning, b tuning.Bounds) bool {
	if len(seq) == 0 {
		return false
	}

	lower, upper := math.MinInt, math.MaxInt
	for _, t := range seq {
		for i := 0; i < tuning.StringCount; i++ {
			if lo := b[i].Min - t[i]; lo > lower {
				lower = lo
			}
			if hi := b[i].Max - t[i]; hi < upper {
				upper = hi
			}
		}
	}

	return lower <= upper
}

// CanExtend is the admission-control gate for appending candidate to
// path: it answers both "which nodes should light up as addable" and
// "should this click be accepted".
//
// Rules, in order:
//
//  1. An empty path accepts any candidate unconditionally.
//  2. A candidate not adjacent to the path's last node is rejected
//     without simulating.
//  3. Otherwise the extended path is simulated and checked as a whole;
//     any simulation failure rejects.
//
// Complexity: O(deg(last) + len(path) × 6).
func CanExtend(src Source, path []string, candidate string, b tuning.Bounds) bool {
	if len(path) == 0 {
		return true
	}

	last := path[len(path)-1]
	adjacent := false
	for _, id := range src.AdjacentIDs(last) {
		if id == candidate {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return false
	}

	extended := make([]string, 0, len(path)+1)
	extended = append(extended, path...)
	extended = append(extended, candidate)

	seq, err := Simulate(src, extended, b)
	if err != nil {
		return false
	}

	return IsFeasible(seq, b)
}

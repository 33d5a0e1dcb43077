// Package tuninggraph implements the labeled tuning graph with
// direction-resolving delta lookup. See doc.go for the full contract.
package tuninggraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/gigset/tuning"
)

// Sentinel errors for graph mutation.
var (
	// ErrEmptyTuningID indicates that the provided tuning ID is empty.
	ErrEmptyTuningID = errors.New("tuninggraph: tuning ID is empty")

	// ErrTuningNotFound indicates an edge endpoint that does not exist.
	ErrTuningNotFound = errors.New("tuninggraph: tuning not found")

	// ErrSelfEdge indicates an edge from a tuning to itself.
	ErrSelfEdge = errors.New("tuninggraph: self-edge not allowed")

	// ErrDuplicateEdge indicates the unordered pair already has an edge.
	ErrDuplicateEdge = errors.New("tuninggraph: edge already exists")
)

// Graph is the in-memory tuning graph.
//
// labels maps tuning ID → relative tuning label.
// deltas holds each edge's vector once, keyed by its STORED direction;
// adjacency mirrors both directions for neighbor queries.
type Graph struct {
	mu sync.RWMutex

	labels    map[string]string
	deltas    map[string]map[string]tuning.Delta
	adjacency map[string]map[string]struct{}
}

// New creates an empty tuning graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		labels:    make(map[string]string),
		deltas:    make(map[string]map[string]tuning.Delta),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// AddTuning registers a tuning node under id with its relative label.
// Re-adding an existing id updates the label in place.
//
// Errors: ErrEmptyTuningID.
func (g *Graph) AddTuning(id, label string) error {
	if id == "" {
		return ErrEmptyTuningID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.labels[id] = label
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]struct{})
	}

	return nil
}

// AddEdge joins from and to with an undirected edge whose delta vector
// is stored in the from→to direction. Both endpoints must already
// exist, self-edges are rejected, and each unordered pair carries at
// most one edge regardless of direction.
//
// Errors: ErrEmptyTuningID, ErrTuningNotFound, ErrSelfEdge,
// ErrDuplicateEdge.
func (g *Graph) AddEdge(from, to string, d tuning.Delta) error {
	if from == "" || to == "" {
		return ErrEmptyTuningID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfEdge, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range []string{from, to} {
		if _, ok := g.labels[id]; !ok {
			return fmt.Errorf("%w: %q", ErrTuningNotFound, id)
		}
	}
	if g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %q-%q", ErrDuplicateEdge, from, to)
	}

	if g.deltas[from] == nil {
		g.deltas[from] = make(map[string]tuning.Delta)
	}
	g.deltas[from][to] = d
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}

	return nil
}

// TuningLabel returns the relative tuning label of id, with ok == false
// when the tuning is unknown. An absent label is data for the solver,
// not an error.
func (g *Graph) TuningLabel(id string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	label, ok := g.labels[id]

	return label, ok
}

// EdgeDelta returns the per-string delta for traversing from → to.
// The stored direction is hidden: when the edge was stored as to → from
// the vector is negated on the way out, so
// EdgeDelta(A, B) == EdgeDelta(B, A).Neg() whenever the edge exists.
// ok == false when the pair is not connected.
func (g *Graph) EdgeDelta(from, to string) (tuning.Delta, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if d, ok := g.deltas[from][to]; ok {
		return d, true
	}
	if d, ok := g.deltas[to][from]; ok {
		return d.Neg(), true
	}

	return tuning.Delta{}, false
}

// HasTuning reports whether id is a node of the graph.
func (g *Graph) HasTuning(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.labels[id]

	return ok
}

// AdjacentIDs returns the IDs adjacent to id, sorted lexicographically
// for reproducible iteration. Unknown id yields an empty slice.
func (g *Graph) AdjacentIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out
}

// TuningIDs returns all node IDs, sorted lexicographically.
func (g *Graph) TuningIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.labels))
	for id := range g.labels {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the number of (undirected) edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, m := range g.deltas {
		n += len(m)
	}

	return n
}

// hasEdgeLocked reports pair connectivity; caller holds a lock.
func (g *Graph) hasEdgeLocked(a, b string) bool {
	if _, ok := g.deltas[a][b]; ok {
		return true
	}
	_, ok := g.deltas[b][a]

	return ok
}

// Package session implements the gigset builder commands.
// See doc.go for the full contract.
package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gigset/solver"
	"github.com/katalvlaran/gigset/tuning"
)

// Sentinel errors for session commands.
var (
	// ErrNotAddable indicates Append of a node the admission gate rejects.
	ErrNotAddable = errors.New("session: node not addable")

	// ErrDuplicateNode indicates Append of a node already on the path.
	ErrDuplicateNode = errors.New("session: node already on path")

	// ErrNothingToUndo indicates UndoLast on an empty path.
	ErrNothingToUndo = errors.New("session: path is empty")
)

// Session is the single-owner interactive gigset builder.
type Session struct {
	src    solver.Source
	bounds tuning.Bounds
	path   []string
}

// New creates an empty session over the given graph source and bounds
// snapshot.
func New(src solver.Source, b tuning.Bounds) *Session {
	return &Session{src: src, bounds: b}
}

// Append accepts id onto the path iff the admission gate allows it.
// Nodes already on the path are rejected before the gate runs.
//
// Errors: ErrDuplicateNode, ErrNotAddable.
func (s *Session) Append(id string) error {
	for _, on := range s.path {
		if on == id {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
	}
	if !solver.CanExtend(s.src, s.path, id, s.bounds) {
		return fmt.Errorf("%w: %q", ErrNotAddable, id)
	}
	s.path = append(s.path, id)

	return nil
}

// UndoLast removes and returns the most recently appended node.
// Only the last element may ever be removed (LIFO discipline).
//
// Errors: ErrNothingToUndo.
func (s *Session) UndoLast() (string, error) {
	if len(s.path) == 0 {
		return "", ErrNothingToUndo
	}
	last := s.path[len(s.path)-1]
	s.path = s.path[:len(s.path)-1]

	return last, nil
}

// Reset clears the path; the bounds snapshot is kept.
func (s *Session) Reset() {
	s.path = s.path[:0]
}

// Path returns a copy of the current path.
func (s *Session) Path() []string {
	out := make([]string, len(s.path))
	copy(out, s.path)

	return out
}

// Len returns the number of nodes on the path.
func (s *Session) Len() int {
	return len(s.path)
}

// Bounds returns the current bounds snapshot.
func (s *Session) Bounds() tuning.Bounds {
	return s.bounds
}

// SetMin updates string i's lower bound from a note name. On parse
// failure the error is returned and the prior bounds stay in force.
func (s *Session) SetMin(i int, note string) error {
	b, err := s.bounds.WithMin(i, note)
	if err != nil {
		return err
	}
	s.bounds = b

	return nil
}

// SetMax updates string i's upper bound from a note name. Same
// contract as SetMin.
func (s *Session) SetMax(i int, note string) error {
	b, err := s.bounds.WithMax(i, note)
	if err != nil {
		return err
	}
	s.bounds = b

	return nil
}

// Addable reports whether id could be appended right now — the signal
// the UI uses to highlight candidate nodes. It never mutates the path.
func (s *Session) Addable(id string) bool {
	for _, on := range s.path {
		if on == id {
			return false
		}
	}

	return solver.CanExtend(s.src, s.path, id, s.bounds)
}

// AddableSet evaluates Addable for every candidate id, in one pass.
// The caller supplies the candidate universe (typically all node IDs).
func (s *Session) AddableSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = s.Addable(id)
	}

	return out
}

// Pitches returns the simulated absolute tunings of the current path.
// Errors propagate from solver.Simulate (ErrEmptyPath on an empty
// session).
func (s *Session) Pitches() ([]tuning.Tuning, error) {
	return solver.Simulate(s.src, s.path, s.bounds)
}

// Package solver_test validates the feasibility engine against the
// tuning graph: transposition choice, path simulation, global window
// intersection, and the admission-control gate.
package solver_test

import (
	"testing"

	"github.com/katalvlaran/gigset/pitch"
	"github.com/katalvlaran/gigset/solver"
	"github.com/katalvlaran/gigset/tuning"
	"github.com/katalvlaran/gigset/tuninggraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// standard is the absolute standard tuning under StandardBounds.
var standard = tuning.Tuning{40, 45, 50, 55, 59, 64}

// buildGraph returns a small catalog-shaped graph:
//
//	std ── dropd ── dadgad        std ── openg
//
// plus "island" (no edges) and "broken" (unparsable label).
func buildGraph(t *testing.T) *tuninggraph.Graph {
	t.Helper()
	g := tuninggraph.New()
	for id, label := range map[string]string{
		"std":    "E A D G B E",
		"dropd":  "D A D G B E",
		"dadgad": "D A D G A D",
		"openg":  "D G D G B D",
		"island": "C G C F A D",
		"broken": "E A D G B X",
	} {
		require.NoError(t, g.AddTuning(id, label))
	}
	require.NoError(t, g.AddEdge("std", "dropd", tuning.Delta{-2, 0, 0, 0, 0, 0}))
	require.NoError(t, g.AddEdge("dropd", "dadgad", tuning.Delta{0, 0, 0, 0, -2, -2}))
	require.NoError(t, g.AddEdge("std", "openg", tuning.Delta{-2, -2, 0, 0, 0, -2}))

	return g
}

// ------------------------------------------------------------------------
// 1. InitialTransposition: window intersection and deterministic policy.
// ------------------------------------------------------------------------

func TestInitialTransposition_StandardWindow(t *testing.T) {
	rel, err := tuning.Normalize("E A D G B E")
	require.NoError(t, err)

	shift, err := solver.InitialTransposition(rel, tuning.StandardBounds())
	require.NoError(t, err)
	assert.Equal(t, 36, shift, "maximum shift placing [4..28] into the standard window")
	assert.Equal(t, standard, rel.Transpose(shift))
}

func TestInitialTransposition_Deterministic(t *testing.T) {
	rel, err := tuning.Normalize("D A D G A D")
	require.NoError(t, err)
	b := tuning.StandardBounds()

	first, err := solver.InitialTransposition(rel, b)
	require.NoError(t, err)
	second, err := solver.InitialTransposition(rel, b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInitialTransposition_Unsatisfiable(t *testing.T) {
	rel, err := tuning.Normalize("E A D G B E")
	require.NoError(t, err)

	// String 1's window demands a shift ≥ 42 while string 6 caps it at 36.
	b := tuning.StandardBounds()
	b[5] = tuning.Interval{Min: 70, Max: 71}

	_, err = solver.InitialTransposition(rel, b)
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
}

// ------------------------------------------------------------------------
// 2. Simulate: absolute pitch sequences and failure kinds.
// ------------------------------------------------------------------------

func TestSimulate_EmptyPath(t *testing.T) {
	_, err := solver.Simulate(buildGraph(t), nil, tuning.StandardBounds())
	assert.ErrorIs(t, err, solver.ErrEmptyPath)
}

func TestSimulate_SingleNode(t *testing.T) {
	seq, err := solver.Simulate(buildGraph(t), []string{"std"}, tuning.StandardBounds())
	require.NoError(t, err)
	assert.Equal(t, []tuning.Tuning{standard}, seq)
}

func TestSimulate_TwoSteps(t *testing.T) {
	seq, err := solver.Simulate(buildGraph(t), []string{"std", "dropd", "dadgad"}, tuning.StandardBounds())
	require.NoError(t, err)
	assert.Equal(t, []tuning.Tuning{
		standard,
		{38, 45, 50, 55, 59, 64},
		{38, 45, 50, 55, 57, 62},
	}, seq)
}

func TestSimulate_ReverseTraversalFlipsDelta(t *testing.T) {
	// dropd → std traverses the stored edge backwards.
	seq, err := solver.Simulate(buildGraph(t), []string{"dropd", "std"}, tuning.StandardBounds())
	require.NoError(t, err)
	assert.Equal(t, tuning.Delta{2, 0, 0, 0, 0, 0}, tuning.Delta{
		seq[1][0] - seq[0][0], seq[1][1] - seq[0][1], seq[1][2] - seq[0][2],
		seq[1][3] - seq[0][3], seq[1][4] - seq[0][4], seq[1][5] - seq[0][5],
	})
}

func TestSimulate_FailureKinds(t *testing.T) {
	g := buildGraph(t)
	b := tuning.StandardBounds()

	_, err := solver.Simulate(g, []string{"ghost"}, b)
	assert.ErrorIs(t, err, solver.ErrMissingTuning, "unknown first node")

	_, err = solver.Simulate(g, []string{"broken"}, b)
	assert.ErrorIs(t, err, pitch.ErrBadNote, "unparsable label propagates the parse error")

	_, err = solver.Simulate(g, []string{"std", "island"}, b)
	assert.ErrorIs(t, err, solver.ErrMissingEdge, "unconnected consecutive pair")
}

// ------------------------------------------------------------------------
// 3. IsFeasible: global intersection across strings AND tunings.
// ------------------------------------------------------------------------

func TestIsFeasible_EmptySequence(t *testing.T) {
	assert.False(t, solver.IsFeasible(nil, tuning.StandardBounds()))
}

func TestIsFeasible_SingleStandard(t *testing.T) {
	assert.True(t, solver.IsFeasible([]tuning.Tuning{standard}, tuning.StandardBounds()))
}

func TestIsFeasible_PrefixMonotonicity(t *testing.T) {
	seq, err := solver.Simulate(buildGraph(t), []string{"std", "dropd", "dadgad"}, tuning.StandardBounds())
	require.NoError(t, err)
	require.True(t, solver.IsFeasible(seq, tuning.StandardBounds()))

	// A feasible sequence stays feasible when any suffix is removed.
	for n := len(seq) - 1; n >= 1; n-- {
		assert.True(t, solver.IsFeasible(seq[:n], tuning.StandardBounds()), "prefix of length %d", n)
	}
}

func TestIsFeasible_ConflictingSteps(t *testing.T) {
	// One edge raising string 6 by 5 semitones: the first tuning needs a
	// shift in [-4,0], the second in [-9,-5] — no single shift serves both.
	g := tuninggraph.New()
	require.NoError(t, g.AddTuning("std", "E A D G B E"))
	require.NoError(t, g.AddTuning("high6", "A A D G B E"))
	require.NoError(t, g.AddEdge("std", "high6", tuning.Delta{5, 0, 0, 0, 0, 0}))

	seq, err := solver.Simulate(g, []string{"std", "high6"}, tuning.StandardBounds())
	require.NoError(t, err)
	assert.False(t, solver.IsFeasible(seq, tuning.StandardBounds()))
}

// ------------------------------------------------------------------------
// 4. CanExtend: the admission-control gate.
// ------------------------------------------------------------------------

func TestCanExtend_EmptyPathUniversal(t *testing.T) {
	g := buildGraph(t)
	b := tuning.StandardBounds()

	for _, candidate := range []string{"std", "island", "broken", "ghost"} {
		assert.True(t, solver.CanExtend(g, nil, candidate, b), "empty path accepts %q", candidate)
	}
}

func TestCanExtend_NonAdjacentSkipsSimulation(t *testing.T) {
	spy := &spySource{Source: buildGraph(t)}
	assert.False(t, solver.CanExtend(spy, []string{"std"}, "dadgad", tuning.StandardBounds()))
	assert.Zero(t, spy.deltaCalls, "rejection must happen before any simulation")
	assert.Zero(t, spy.labelCalls)
}

func TestCanExtend_AcceptsFeasibleNeighbor(t *testing.T) {
	g := buildGraph(t)
	b := tuning.StandardBounds()

	assert.True(t, solver.CanExtend(g, []string{"std"}, "dropd", b))
	assert.True(t, solver.CanExtend(g, []string{"std", "dropd"}, "dadgad", b))
}

func TestCanExtend_RejectsInfeasibleNeighbor(t *testing.T) {
	// Tighten string 1 so open G's double drop is out of reach.
	b := tuning.StandardBounds()
	b[5] = tuning.Interval{Min: 64, Max: 64}

	g := buildGraph(t)
	assert.True(t, solver.CanExtend(g, []string{"std"}, "dropd", b), "dropd leaves string 1 alone")
	assert.False(t, solver.CanExtend(g, []string{"std"}, "openg", b), "openg drops string 1 below 64")
}

// spySource counts lookups to prove CanExtend short-circuits.
type spySource struct {
	solver.Source
	labelCalls int
	deltaCalls int
}

func (s *spySource) TuningLabel(id string) (string, bool) {
	s.labelCalls++
	return s.Source.TuningLabel(id)
}

func (s *spySource) EdgeDelta(from, to string) (tuning.Delta, bool) {
	s.deltaCalls++
	return s.Source.EdgeDelta(from, to)
}

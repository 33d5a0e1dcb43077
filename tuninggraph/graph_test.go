// Package tuninggraph_test validates graph mutation rules, the
// direction-resolving delta lookup, and deterministic ordering.
package tuninggraph_test

import (
	"testing"

	"github.com/katalvlaran/gigset/tuning"
	"github.com/katalvlaran/gigset/tuninggraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dropD is the delta from standard tuning to drop-D: string 6 down two.
var dropD = tuning.Delta{-2, 0, 0, 0, 0, 0}

func newPair(t *testing.T) *tuninggraph.Graph {
	t.Helper()
	g := tuninggraph.New()
	require.NoError(t, g.AddTuning("std", "E A D G B E"))
	require.NoError(t, g.AddTuning("dropd", "D A D G B E"))
	require.NoError(t, g.AddEdge("std", "dropd", dropD))

	return g
}

// ------------------------------------------------------------------------
// 1. Mutation validation.
// ------------------------------------------------------------------------

func TestAddTuning_EmptyID(t *testing.T) {
	g := tuninggraph.New()
	assert.ErrorIs(t, g.AddTuning("", "E A D G B E"), tuninggraph.ErrEmptyTuningID)
}

func TestAddEdge_Validation(t *testing.T) {
	g := tuninggraph.New()
	require.NoError(t, g.AddTuning("std", "E A D G B E"))

	assert.ErrorIs(t, g.AddEdge("", "std", dropD), tuninggraph.ErrEmptyTuningID)
	assert.ErrorIs(t, g.AddEdge("std", "std", dropD), tuninggraph.ErrSelfEdge)
	assert.ErrorIs(t, g.AddEdge("std", "ghost", dropD), tuninggraph.ErrTuningNotFound)
}

func TestAddEdge_DuplicatePairEitherDirection(t *testing.T) {
	g := newPair(t)
	assert.ErrorIs(t, g.AddEdge("std", "dropd", dropD), tuninggraph.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge("dropd", "std", dropD.Neg()), tuninggraph.ErrDuplicateEdge)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddTuning_UpdatesLabel(t *testing.T) {
	g := tuninggraph.New()
	require.NoError(t, g.AddTuning("std", "E A D G B E"))
	require.NoError(t, g.AddTuning("std", "Eb Ab Db Gb Bb Eb"))

	label, ok := g.TuningLabel("std")
	require.True(t, ok)
	assert.Equal(t, "Eb Ab Db Gb Bb Eb", label)
}

// ------------------------------------------------------------------------
// 2. Delta lookup: traversal direction, not storage direction.
// ------------------------------------------------------------------------

func TestEdgeDelta_Antisymmetry(t *testing.T) {
	g := newPair(t)

	fwd, ok := g.EdgeDelta("std", "dropd")
	require.True(t, ok)
	assert.Equal(t, dropD, fwd)

	rev, ok := g.EdgeDelta("dropd", "std")
	require.True(t, ok)
	assert.Equal(t, dropD.Neg(), rev, "reverse traversal negates the stored vector")
}

func TestEdgeDelta_Absent(t *testing.T) {
	g := newPair(t)
	require.NoError(t, g.AddTuning("dadgad", "D A D G A D"))

	_, ok := g.EdgeDelta("std", "dadgad")
	assert.False(t, ok, "unconnected pair has no delta")
	_, ok = g.EdgeDelta("std", "ghost")
	assert.False(t, ok, "unknown tuning has no delta")
}

// ------------------------------------------------------------------------
// 3. Deterministic enumeration.
// ------------------------------------------------------------------------

func TestAdjacentIDs_Sorted(t *testing.T) {
	g := newPair(t)
	require.NoError(t, g.AddTuning("dadgad", "D A D G A D"))
	require.NoError(t, g.AddTuning("openg", "D G D G B D"))
	require.NoError(t, g.AddEdge("std", "openg", tuning.Delta{-2, -2, 0, 0, 0, -2}))
	require.NoError(t, g.AddEdge("dadgad", "std", tuning.Delta{2, 0, 0, 0, 2, 2}))

	assert.Equal(t, []string{"dadgad", "dropd", "openg"}, g.AdjacentIDs("std"))
	assert.Equal(t, []string{"dadgad", "dropd", "openg", "std"}, g.TuningIDs())
	assert.Empty(t, g.AdjacentIDs("ghost"))
}

func TestHasTuning(t *testing.T) {
	g := newPair(t)
	assert.True(t, g.HasTuning("std"))
	assert.False(t, g.HasTuning("ghost"))
}

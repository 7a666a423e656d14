package search

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lifepath/grid"
)

func shape(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	return g
}

// TestLayers_AddIsFirstWins checks both layer kinds keep the first arrival.
func TestLayers_AddIsFirstWins(t *testing.T) {
	for _, s := range []Strategy{Heuristic, Robust} {
		t.Run(s.String(), func(t *testing.T) {
			l := layerFactory(s)(shape(t))
			p := grid.Position{Row: 1, Col: 1}
			assert.True(t, l.add(p, grid.Down))
			assert.False(t, l.add(p, grid.Left))
			assert.True(t, l.has(p))
			assert.False(t, l.has(grid.Position{}))
			assert.Equal(t, 1, l.size())
			assert.Equal(t, []grid.Position{p}, slices.Collect(l.positions()))
		})
	}
}

// TestParentLayer_InsertionOrder keeps positions in the order they were added.
func TestParentLayer_InsertionOrder(t *testing.T) {
	l := newParentLayer(shape(t))
	in := []grid.Position{{Row: 2, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	for _, p := range in {
		l.add(p, grid.Up)
	}
	assert.Equal(t, in, slices.Collect(l.positions()))
}

// TestBitLayer_RowMajorAndArrival iterates row-major and re-derives the
// arriving movement from the previous layer.
func TestBitLayer_RowMajorAndArrival(t *testing.T) {
	prev := newBitLayer(shape(t))
	prev.add(grid.Position{Row: 1, Col: 0}, grid.Up)
	prev.add(grid.Position{Row: 0, Col: 1}, grid.Up)

	cur := newBitLayer(shape(t))
	cur.add(grid.Position{Row: 1, Col: 1}, grid.Up)
	cur.add(grid.Position{Row: 0, Col: 0}, grid.Up)
	assert.Equal(t,
		[]grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		slices.Collect(cur.positions()))

	// (1,1) is reachable from (0,1) by Down and from (1,0) by Right; Down is
	// probed first.
	m, ok := cur.arrival(grid.Position{Row: 1, Col: 1}, prev)
	require.True(t, ok)
	assert.Equal(t, grid.Down, m)

	_, ok = cur.arrival(grid.Position{Row: 2, Col: 2}, prev)
	assert.False(t, ok)
}

// TestAssemble_Idempotent rebuilds the same path twice from one history.
func TestAssemble_Idempotent(t *testing.T) {
	src := grid.Position{}
	h := []layer{newParentLayer(nil), newParentLayer(nil), newParentLayer(nil)}
	h[0].add(src, grid.Up)
	h[1].add(grid.Position{Row: 0, Col: 1}, grid.Right)
	h[2].add(grid.Position{Row: 1, Col: 1}, grid.Down)

	first, err := assemble(h, src, 2, grid.Position{Row: 1, Col: 1})
	require.NoError(t, err)
	second, err := assemble(h, src, 2, grid.Position{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, "R D", first.String())
	assert.Equal(t, first, second)

	empty, err := assemble(h, src, 0, src)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestAssemble_Inconsistent reports the lattice cell where the walk broke.
func TestAssemble_Inconsistent(t *testing.T) {
	src := grid.Position{}
	h := []layer{newParentLayer(nil), newParentLayer(nil)}
	h[0].add(src, grid.Up)
	// Claims to arrive at (1,1) moving Down, but (0,1) was never reached.
	h[1].add(grid.Position{Row: 1, Col: 1}, grid.Down)

	_, err := assemble(h, src, 1, grid.Position{Row: 1, Col: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReconstruction))

	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Generation)
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, ce.Position)
	assert.True(t, ce.HasMovement)
	assert.Equal(t, grid.Down, ce.Movement)
	assert.Contains(t, ce.Error(), "predecessor not reached")

	_, err = assemble(h, src, 1, grid.Position{Row: 2, Col: 2})
	assert.ErrorIs(t, err, ErrReconstruction)
	_, err = assemble(h, src, 5, src)
	assert.ErrorIs(t, err, ErrReconstruction)
}

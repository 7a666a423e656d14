package grid_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lifepath/grid"
)

// mustRows builds a grid from 0/1 ints.
func mustRows(t *testing.T, rows [][]int) *grid.Grid {
	t.Helper()
	bools := make([][]bool, len(rows))
	for i, row := range rows {
		bools[i] = make([]bool, len(row))
		for j, v := range row {
			bools[i][j] = v == 1
		}
	}
	g, err := grid.FromRows(bools)
	require.NoError(t, err)
	return g
}

// TestFromRows_Errors verifies that empty, ragged and oversized inputs are rejected.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, grid.ErrNonRectangular},
		{"TooWide", [][]bool{make([]bool, grid.MaxDimension+1)}, grid.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
	_, err := grid.New(0, 3)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestGet_Bounds checks in-range reads and absent results outside the grid.
//
//	0 1 0 1 0
//	1 0 1 0 1
func TestGet_Bounds(t *testing.T) {
	g := mustRows(t, [][]int{{0, 1, 0, 1, 0}, {1, 0, 1, 0, 1}})
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 5, g.Width())

	alive, ok := g.Get(1, 2)
	assert.True(t, ok)
	assert.True(t, alive)

	for _, rc := range [][2]int{{2, 3}, {-1, 3}, {1, 5}, {1, -1}} {
		_, ok := g.Get(rc[0], rc[1])
		assert.False(t, ok, "Get(%d,%d) should be out of bounds", rc[0], rc[1])
	}
	_, ok = g.At(grid.Position{Row: -1, Col: 0})
	assert.False(t, ok)
}

// TestSet_OutOfBoundsPanics documents that Set requires in-range input.
func TestSet_OutOfBoundsPanics(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.Set(1, 1, true)
	alive, _ := g.Get(1, 1)
	assert.True(t, alive)
	assert.Panics(t, func() { g.Set(2, 0, true) })
}

// TestCells_RowMajor verifies the iteration order and that it restarts.
func TestCells_RowMajor(t *testing.T) {
	g := mustRows(t, [][]int{{1, 0, 0}, {0, 0, 1}})
	want := []grid.Cell{
		{Row: 0, Col: 0, Alive: true},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 1, Col: 0},
		{Row: 1, Col: 1},
		{Row: 1, Col: 2, Alive: true},
	}
	assert.Equal(t, want, slices.Collect(g.Cells()))
	assert.Equal(t, want, slices.Collect(g.Cells()), "second pass must yield the same cells")

	var first []grid.Cell
	for c := range g.Cells() {
		first = append(first, c)
		break
	}
	assert.Len(t, first, 1)
}

// TestCountLiveNeighbors covers interior, edge and corner cells.
//
//	1 1 1
//	1 0 1
//	1 1 1
func TestCountLiveNeighbors(t *testing.T) {
	g := mustRows(t, [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}})
	assert.Equal(t, 8, g.CountLiveNeighbors(1, 1))
	assert.Equal(t, 2, g.CountLiveNeighbors(0, 0), "corner sees 3 cells, one of them dead")
	assert.Equal(t, 4, g.CountLiveNeighbors(0, 1), "edge sees 5 cells, one of them dead")

	empty, err := grid.New(3, 3)
	require.NoError(t, err)
	for c := range empty.Cells() {
		assert.Zero(t, empty.CountLiveNeighbors(c.Row, c.Col))
	}
}

// TestCountLiveNeighbors_SelfExcluded ensures the center cell never counts itself.
func TestCountLiveNeighbors_SelfExcluded(t *testing.T) {
	g := mustRows(t, [][]int{{1}})
	assert.Zero(t, g.CountLiveNeighbors(0, 0))
}

// TestOverwrite covers an in-bounds copy and a rejected window.
func TestOverwrite(t *testing.T) {
	dst, err := grid.New(3, 4)
	require.NoError(t, err)
	src := mustRows(t, [][]int{{1, 1}, {0, 1}})

	require.NoError(t, dst.Overwrite(src, 1, 2))
	assert.Equal(t, "0 0 0 0\n0 0 1 1\n0 0 0 1", dst.String())
	assert.Equal(t, 3, dst.LiveCount())

	assert.ErrorIs(t, dst.Overwrite(src, 2, 2), grid.ErrWindowOutOfBounds)
	assert.ErrorIs(t, dst.Overwrite(src, 0, -1), grid.ErrWindowOutOfBounds)
}

// TestCloneAndEqual ensures clones are deep.
func TestCloneAndEqual(t *testing.T) {
	g := mustRows(t, [][]int{{1, 0}, {0, 1}})
	c := g.Clone()
	require.True(t, g.Equal(c))
	c.Set(0, 1, true)
	assert.False(t, g.Equal(c))
	alive, _ := g.Get(0, 1)
	assert.False(t, alive, "mutating the clone must not touch the original")

	other, err := grid.New(2, 3)
	require.NoError(t, err)
	assert.False(t, g.Equal(other))
}

// TestWindow_Contains checks the half-open bounds of a window.
func TestWindow_Contains(t *testing.T) {
	w := grid.Window{Row: 1, Col: 2, Height: 2, Width: 3}
	assert.True(t, w.Contains(grid.Position{Row: 1, Col: 2}))
	assert.True(t, w.Contains(grid.Position{Row: 2, Col: 4}))
	assert.False(t, w.Contains(grid.Position{Row: 3, Col: 2}))
	assert.False(t, w.Contains(grid.Position{Row: 1, Col: 5}))
	assert.False(t, w.Contains(grid.Position{Row: 0, Col: 2}))
}

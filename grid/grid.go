package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a dense, rectangular field of boolean cells stored in row-major
// order. true marks an alive (obstructing) cell, false a dead (passable) one.
// Invariant: len(cells) == height*width.
type Grid struct {
	height, width int
	cells         []bool
}

// Cell is a single grid cell with its coordinates.
type Cell struct {
	Row, Col int
	Alive    bool
}

// New returns an all-dead grid of the given shape.
// Returns ErrEmptyGrid for a zero or negative dimension and ErrTooLarge when a
// dimension exceeds MaxDimension.
func New(height, width int) (*Grid, error) {
	if err := checkShape(height, width); err != nil {
		return nil, err
	}
	return &Grid{height: height, width: width, cells: make([]bool, height*width)}, nil
}

// FromRows builds a Grid from nested rows, deep-copying the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrTooLarge for malformed input.
// Complexity: O(H×W).
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	if err := checkShape(h, w); err != nil {
		return nil, err
	}
	cells := make([]bool, 0, h*w)
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid{height: h, width: w, cells: cells}, nil
}

func checkShape(height, width int) error {
	if height <= 0 || width <= 0 {
		return ErrEmptyGrid
	}
	if height > MaxDimension || width > MaxDimension {
		return fmt.Errorf("%w: %d×%d", ErrTooLarge, height, width)
	}
	return nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the cell at (row, col). ok is false outside the grid; Get never
// panics.
func (g *Grid) Get(row, col int) (alive, ok bool) {
	if !g.InBounds(row, col) {
		return false, false
	}
	return g.cells[row*g.width+col], true
}

// At is Get addressed by Position.
func (g *Grid) At(p Position) (alive, ok bool) {
	return g.Get(p.Row, p.Col)
}

// Set assigns the cell at (row, col). It panics when (row, col) is outside the
// grid, like an out-of-range slice index.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: Set(%d, %d) outside %d×%d grid", row, col, g.height, g.width))
	}
	g.cells[row*g.width+col] = alive
}

// CountLiveNeighbors returns how many of the 8 Moore neighbors of (row, col)
// are alive. Neighbors outside the grid count as dead; the grid never wraps.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.height {
			continue
		}
		base := r * g.width
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= g.width {
				continue
			}
			if g.cells[base+c] {
				n++
			}
		}
	}
	return n
}

// Cells yields every cell in row-major order. The sequence is finite and may
// be ranged over any number of times.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for idx, alive := range g.cells {
			if !yield(Cell{Row: idx / g.width, Col: idx % g.width, Alive: alive}) {
				return
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Overwrite copies src into g with src's top-left cell at (row, col).
// Returns ErrWindowOutOfBounds if src does not fit.
// Complexity: O(src.H × src.W).
func (g *Grid) Overwrite(src *Grid, row, col int) error {
	if row < 0 || col < 0 || row+src.height > g.height || col+src.width > g.width {
		return fmt.Errorf("%w: %d×%d at (%d,%d) in %d×%d grid",
			ErrWindowOutOfBounds, src.height, src.width, row, col, g.height, g.width)
	}
	for i := 0; i < src.height; i++ {
		copy(g.cells[(row+i)*g.width+col:(row+i)*g.width+col+src.width], src.cells[i*src.width:(i+1)*src.width])
	}
	return nil
}

// LiveCount returns the number of alive cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// String renders the grid as rows of space-separated 0/1 tokens.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) * 2)
	for c := range g.Cells() {
		if c.Col != 0 {
			b.WriteByte(' ')
		} else if c.Row != 0 {
			b.WriteByte('\n')
		}
		if c.Alive {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTooLarge indicates a dimension above MaxDimension.
	ErrTooLarge = errors.New("grid: dimension exceeds MaxDimension")
	// ErrUnknownMovement indicates a movement letter outside U, D, L, R.
	ErrUnknownMovement = errors.New("grid: unknown movement")
	// ErrWindowOutOfBounds indicates a window that does not fit inside the grid.
	ErrWindowOutOfBounds = errors.New("grid: window out of bounds")
	// ErrBadCell indicates a token other than 0 or 1 in a plain grid.
	ErrBadCell = errors.New("grid: cell must be 0 or 1")
)

// MaxDimension bounds Height and Width so that row/column arithmetic near the
// borders (including one step outside) never overflows a signed 16-bit value.
const MaxDimension = math.MaxInt16 - 1

// Position is a cell coordinate. Row grows downwards, Col grows to the right.
// Coordinates are signed: stepping off the top or left border is legal and
// produces a position that lookups report as out of bounds.
type Position struct {
	Row, Col int
}

// Movement is a single orthogonal step of the agent.
type Movement uint8

const (
	// Up decrements the row.
	Up Movement = iota
	// Down increments the row.
	Down
	// Left decrements the column.
	Left
	// Right increments the column.
	Right
)

// Movements lists every movement in the fixed exploration order used by the
// search controllers. The order decides ties between equal-length paths.
var Movements = [4]Movement{Up, Down, Left, Right}

// Window is a rectangular region of a grid, anchored at its top-left cell.
type Window struct {
	Row, Col      int
	Height, Width int
}

// Contains reports whether p lies inside the window.
func (w Window) Contains(p Position) bool {
	return p.Row >= w.Row && p.Row < w.Row+w.Height &&
		p.Col >= w.Col && p.Col < w.Col+w.Width
}

package grid

import (
	"fmt"
	"strconv"
)

// deltas maps a Movement to its unit (row, col) increment.
var deltas = [4][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// letters maps a Movement to its printable form.
var letters = [4]byte{Up: 'U', Down: 'D', Left: 'L', Right: 'R'}

// Delta returns the unit row and column increment of m.
func (m Movement) Delta() (dRow, dCol int) {
	d := deltas[m&3]
	return d[0], d[1]
}

// Inverse returns the movement that undoes m.
func (m Movement) Inverse() Movement {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Letter returns the single-character form of m (U, D, L or R).
func (m Movement) Letter() byte {
	return letters[m&3]
}

// String implements fmt.Stringer.
func (m Movement) String() string {
	if m > Right {
		return "Movement(" + strconv.Itoa(int(m)) + ")"
	}
	return string(m.Letter())
}

// MovementFromLetter parses U, D, L or R.
// Returns ErrUnknownMovement for anything else.
func MovementFromLetter(c byte) (Movement, error) {
	switch c {
	case 'U':
		return Up, nil
	case 'D':
		return Down, nil
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMovement, c)
}

// Next returns the position reached from p after m.
func (p Position) Next(m Movement) Position {
	dr, dc := m.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Previous returns the position from which m lands on p.
func (p Position) Previous(m Movement) Position {
	dr, dc := m.Delta()
	return Position{Row: p.Row - dr, Col: p.Col - dc}
}

// Manhattan returns the L1 distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Less orders positions by row, then column.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

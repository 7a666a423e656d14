// Package grid provides the two-dimensional building blocks of an automaton
// maze: positions, orthogonal movements, a dense boolean Grid and a compact
// BitGrid used as a per-generation reached set.
//
// What:
//
//   - Position is a signed (row, column) pair; moving off the grid yields a
//     position that every lookup reports as absent instead of panicking.
//   - Movement is one of Up, Down, Left, Right, printed as U, D, L, R.
//   - Grid stores cells in row-major order (true = alive/obstructing,
//     false = dead/passable) and counts live Moore neighbors without wrapping.
//   - Parse reads the 0/1 rows that Grid.String writes.
//   - BitGrid mirrors a Grid's shape but stores set membership only, one bit
//     per cell.
//
// Why:
//
//   - A search over an evolving automaton allocates one reached set per
//     generation; a bit per cell keeps that history small.
//   - Bounds-checked access lets callers probe neighbors of border cells
//     without special cases.
//
// Complexity:
//
//   - Get, Set, Contains, Insert: O(1).
//   - CountLiveNeighbors: O(1) (at most 8 probes).
//   - Cells, BitGrid.All: O(H×W) per full iteration.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrTooLarge: a dimension exceeds MaxDimension.
//   - ErrUnknownMovement: a movement letter outside U, D, L, R.
//   - ErrWindowOutOfBounds: an overwrite window does not fit the grid.
//   - ErrBadCell: Parse met a token other than 0 or 1.
package grid

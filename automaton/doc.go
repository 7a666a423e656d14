// Package automaton holds the two-dimensional cellular automaton an agent
// has to cross, its transition rule and its text format.
//
// What:
//
//   - Automaton wraps a grid.Grid with a fixed source and destination and an
//     optional "immutable endpoints" rule that keeps both cells dead.
//   - NextGeneration derives the following generation as a brand new value:
//     an alive cell survives with 4 or 5 live neighbors, a dead cell is born
//     with 2, 3 or 4. Every cell is evaluated against the old grid.
//   - Parse reads rows of space-separated tokens (0 dead, 1 alive, 3 source,
//     4 destination, x indeterminate inside an allowed window).
//   - String writes the same format back.
//
// Generations are snapshots: nothing in this package mutates an Automaton
// after construction, so any number of goroutines may read or advance the
// same value.
//
// Complexity:
//
//   - NextGeneration: O(H×W) time, O(H×W) memory for the new grid.
//   - Parse, String:  O(H×W).
//
// Errors:
//
//   - *ParseError wraps ErrBadToken, ErrIndeterminateOutsideWindow,
//     ErrMissingSource, ErrMissingDestination, ErrDuplicateSource,
//     ErrDuplicateDestination and the grid shape errors, with row/column
//     context.
//   - ErrEndpointOutOfBounds: New got a source or destination off the grid.
//   - ErrEndpointAlive: New or WithFill left a mutable endpoint alive.
package automaton

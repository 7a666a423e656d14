package automaton

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lifepath/grid"
)

// Automaton is one generation of the maze. It is immutable once built:
// NextGeneration and WithFill return new values.
type Automaton struct {
	grid               *grid.Grid
	source             grid.Position
	destination        grid.Position
	immutableEndpoints bool
	generation         int
}

// New builds a generation-0 automaton over a private copy of g.
// Returns ErrEndpointOutOfBounds if src or dst lies outside g, and
// ErrEndpointAlive if either is alive while endpoints are mutable.
func New(g *grid.Grid, src, dst grid.Position, opts ...Option) (*Automaton, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, p := range []grid.Position{src, dst} {
		if !g.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrEndpointOutOfBounds, p, g.Height(), g.Width())
		}
	}
	a := &Automaton{
		grid:               g.Clone(),
		source:             src,
		destination:        dst,
		immutableEndpoints: o.ImmutableEndpoints,
	}
	if err := a.settleEndpoints(); err != nil {
		return nil, err
	}
	return a, nil
}

// Grid returns the cells of this generation. Callers must not modify it.
func (a *Automaton) Grid() *grid.Grid { return a.grid }

// Source returns the agent's start cell.
func (a *Automaton) Source() grid.Position { return a.source }

// Destination returns the agent's target cell.
func (a *Automaton) Destination() grid.Position { return a.destination }

// ImmutableEndpoints reports whether source and destination are kept dead.
func (a *Automaton) ImmutableEndpoints() bool { return a.immutableEndpoints }

// Generation returns how many transitions separate a from its origin.
func (a *Automaton) Generation() int { return a.generation }

// Height returns the number of rows.
func (a *Automaton) Height() int { return a.grid.Height() }

// Width returns the number of columns.
func (a *Automaton) Width() int { return a.grid.Width() }

// Alive reports the state of p; ok is false outside the grid.
func (a *Automaton) Alive(p grid.Position) (alive, ok bool) {
	return a.grid.At(p)
}

// Passable reports whether the agent may stand on p in this generation:
// p is inside the grid and dead.
func (a *Automaton) Passable(p grid.Position) bool {
	alive, ok := a.grid.At(p)
	return ok && !alive
}

// NextGeneration returns the following generation. Each cell with n live
// Moore neighbors in the current grid becomes:
//
//	alive → alive iff n ∈ {4, 5}
//	dead  → alive iff n ∈ {2, 3, 4}
//
// With immutable endpoints, source and destination are then forced dead.
// The receiver is left untouched.
// Complexity: O(H×W).
func (a *Automaton) NextGeneration() *Automaton {
	cur := a.grid
	next, _ := grid.New(cur.Height(), cur.Width())
	for c := range cur.Cells() {
		n := cur.CountLiveNeighbors(c.Row, c.Col)
		if c.Alive {
			next.Set(c.Row, c.Col, n == 4 || n == 5)
		} else {
			next.Set(c.Row, c.Col, n >= 2 && n <= 4)
		}
	}
	b := &Automaton{
		grid:               next,
		source:             a.source,
		destination:        a.destination,
		immutableEndpoints: a.immutableEndpoints,
		generation:         a.generation + 1,
	}
	if b.immutableEndpoints {
		b.clearEndpoints()
	}
	return b
}

// Advance returns the automaton n generations after a.
func (a *Automaton) Advance(n int) *Automaton {
	cur := a
	for i := 0; i < n; i++ {
		cur = cur.NextGeneration()
	}
	return cur
}

// WithFill returns a copy of a whose cells under fill, anchored at
// (row, col), are replaced by fill. The generation counter is kept.
// Returns grid.ErrWindowOutOfBounds if fill does not fit, and
// ErrEndpointAlive if fill brings a mutable endpoint to life.
func (a *Automaton) WithFill(fill *grid.Grid, row, col int) (*Automaton, error) {
	g := a.grid.Clone()
	if err := g.Overwrite(fill, row, col); err != nil {
		return nil, err
	}
	b := &Automaton{
		grid:               g,
		source:             a.source,
		destination:        a.destination,
		immutableEndpoints: a.immutableEndpoints,
		generation:         a.generation,
	}
	if err := b.settleEndpoints(); err != nil {
		return nil, err
	}
	return b, nil
}

// settleEndpoints clears immutable endpoints, or rejects alive mutable ones.
// Only called on values not yet shared.
func (a *Automaton) settleEndpoints() error {
	if a.immutableEndpoints {
		a.clearEndpoints()
		return nil
	}
	for _, p := range []grid.Position{a.source, a.destination} {
		if alive, _ := a.grid.At(p); alive {
			return fmt.Errorf("%w: %v", ErrEndpointAlive, p)
		}
	}
	return nil
}

// clearEndpoints is only called on values not yet shared.
func (a *Automaton) clearEndpoints() {
	a.grid.Set(a.source.Row, a.source.Col, false)
	a.grid.Set(a.destination.Row, a.destination.Col, false)
}

// String renders a in the input text format. Dead endpoints are written as
// 3 and 4, so a parsed automaton formats back to its input (x cells become 0).
func (a *Automaton) String() string {
	var b strings.Builder
	b.Grow(a.grid.Height() * a.grid.Width() * 2)
	for c := range a.grid.Cells() {
		if c.Col != 0 {
			b.WriteByte(' ')
		} else if c.Row != 0 {
			b.WriteByte('\n')
		}
		p := grid.Position{Row: c.Row, Col: c.Col}
		switch {
		case c.Alive:
			b.WriteString(TokenAlive)
		case p == a.source:
			b.WriteString(TokenSource)
		case p == a.destination:
			b.WriteString(TokenDestination)
		default:
			b.WriteString(TokenDead)
		}
	}
	return b.String()
}

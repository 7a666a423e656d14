package search

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lifepath/grid"
)

// layer is the reached set of one generation. Layers are append-only while
// their generation is being expanded and never change afterwards.
type layer interface {
	// add records p as reached via the movement m; first arrival wins.
	// Reports whether p was new.
	add(p grid.Position, m grid.Movement) bool
	// has reports whether p is reached in this generation.
	has(p grid.Position) bool
	// positions yields reached positions in expansion order.
	positions() iter.Seq[grid.Position]
	// size returns the number of reached positions.
	size() int
	// arrival returns the movement that brought the agent to p, given the
	// layer of the previous generation.
	arrival(p grid.Position, prev layer) (grid.Movement, bool)
}

// newLayerFunc allocates an empty layer shaped like the automaton grid.
type newLayerFunc func(shape *grid.Grid) layer

func layerFactory(s Strategy) newLayerFunc {
	if s == Robust {
		return newBitLayer
	}
	return newParentLayer
}

// parentLayer maps every reached position to the movement that first
// reached it, remembering insertion order for deterministic expansion.
type parentLayer struct {
	via   map[grid.Position]grid.Movement
	order []grid.Position
}

func newParentLayer(*grid.Grid) layer {
	return &parentLayer{via: make(map[grid.Position]grid.Movement)}
}

func (l *parentLayer) add(p grid.Position, m grid.Movement) bool {
	if _, seen := l.via[p]; seen {
		return false
	}
	l.via[p] = m
	l.order = append(l.order, p)
	return true
}

func (l *parentLayer) has(p grid.Position) bool {
	_, ok := l.via[p]
	return ok
}

func (l *parentLayer) positions() iter.Seq[grid.Position] {
	return slices.Values(l.order)
}

func (l *parentLayer) size() int { return len(l.order) }

func (l *parentLayer) arrival(p grid.Position, _ layer) (grid.Movement, bool) {
	m, ok := l.via[p]
	return m, ok
}

// bitLayer stores membership only. The arriving movement is re-derived by
// probing which neighbor was reached one generation earlier.
type bitLayer struct {
	bits *grid.BitGrid
	n    int
}

func newBitLayer(shape *grid.Grid) layer {
	return &bitLayer{bits: grid.BitGridLike(shape)}
}

func (l *bitLayer) add(p grid.Position, _ grid.Movement) bool {
	if l.bits.Contains(p) {
		return false
	}
	l.bits.Insert(p)
	l.n++
	return true
}

func (l *bitLayer) has(p grid.Position) bool { return l.bits.Contains(p) }

func (l *bitLayer) positions() iter.Seq[grid.Position] { return l.bits.All() }

func (l *bitLayer) size() int { return l.n }

func (l *bitLayer) arrival(p grid.Position, prev layer) (grid.Movement, bool) {
	if !l.bits.Contains(p) {
		return 0, false
	}
	for _, m := range grid.Movements {
		if prev.has(p.Previous(m)) {
			return m, true
		}
	}
	return 0, false
}

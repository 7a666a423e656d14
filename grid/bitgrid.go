package grid

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// BitGrid is a set of positions with the shape of a Grid, one bit per cell.
// Positions outside the shape are never members.
type BitGrid struct {
	height, width int
	bits          *bitset.BitSet
}

// NewBitGrid returns an empty BitGrid with the given shape.
// Returns ErrEmptyGrid or ErrTooLarge like New.
func NewBitGrid(height, width int) (*BitGrid, error) {
	if err := checkShape(height, width); err != nil {
		return nil, err
	}
	return &BitGrid{height: height, width: width, bits: bitset.New(uint(height * width))}, nil
}

// BitGridLike returns an empty BitGrid with the same shape as g.
func BitGridLike(g *Grid) *BitGrid {
	return &BitGrid{height: g.height, width: g.width, bits: bitset.New(uint(len(g.cells)))}
}

// SameShape returns an empty BitGrid with the same shape as b.
func (b *BitGrid) SameShape() *BitGrid {
	return &BitGrid{height: b.height, width: b.width, bits: bitset.New(b.bits.Len())}
}

// Height returns the number of rows.
func (b *BitGrid) Height() int { return b.height }

// Width returns the number of columns.
func (b *BitGrid) Width() int { return b.width }

func (b *BitGrid) offset(p Position) (uint, bool) {
	if p.Row < 0 || p.Row >= b.height || p.Col < 0 || p.Col >= b.width {
		return 0, false
	}
	return uint(p.Row*b.width + p.Col), true
}

// Insert adds p to the set. It panics when p lies outside the shape.
func (b *BitGrid) Insert(p Position) {
	off, ok := b.offset(p)
	if !ok {
		panic("grid: BitGrid.Insert at " + p.String() + " outside shape")
	}
	b.bits.Set(off)
}

// Contains reports whether p is a member; false outside the shape.
func (b *BitGrid) Contains(p Position) bool {
	off, ok := b.offset(p)
	return ok && b.bits.Test(off)
}

// IsEmpty reports whether the set has no members.
func (b *BitGrid) IsEmpty() bool {
	return b.bits.None()
}

// Len returns the number of members.
func (b *BitGrid) Len() int {
	return int(b.bits.Count())
}

// All yields every member in row-major order.
func (b *BitGrid) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
			if !yield(Position{Row: int(i) / b.width, Col: int(i) % b.width}) {
				return
			}
		}
	}
}

package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lifepath/grid"
)

// Path is a sequence of movements, oldest first.
type Path []grid.Movement

// String renders the path as space-separated U/D/L/R letters; the empty path
// renders as "".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(2*len(p) - 1)
	for i, m := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(m.Letter())
	}
	return b.String()
}

// End returns the position reached by following p from start, ignoring
// the automaton.
func (p Path) End(start grid.Position) grid.Position {
	for _, m := range p {
		start = start.Next(m)
	}
	return start
}

// ParsePath reads space-separated movement letters. Surrounding whitespace
// and repeated separators are ignored.
func ParsePath(s string) (Path, error) {
	fields := strings.Fields(s)
	path := make(Path, 0, len(fields))
	for i, f := range fields {
		if len(f) != 1 {
			return nil, fmt.Errorf("search: movement %d: %w: %q", i, grid.ErrUnknownMovement, f)
		}
		m, err := grid.MovementFromLetter(f[0])
		if err != nil {
			return nil, fmt.Errorf("search: movement %d: %w", i, err)
		}
		path = append(path, m)
	}
	return path, nil
}

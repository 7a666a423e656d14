package automaton

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/lifepath/grid"
)

// Parse reads an automaton in the text format: one row per line, cells as
// space-separated tokens. Exactly one source (3) and one destination (4) are
// required; both are dead cells. x marks an indeterminate cell, accepted only
// inside the window set by WithIndeterminateWindow and parsed as dead.
// Trailing blank lines are ignored; any other blank line is reported as
// grid.ErrEmptyGrid at its row.
// All failures are returned as *ParseError.
func Parse(r io.Reader, opts ...Option) (*Automaton, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*grid.MaxDimension+16)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Row: len(lines), Col: -1, Err: err}
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	var (
		src, dst       grid.Position
		haveSrc, haveD bool
	)
	rows := make([][]bool, 0, len(lines))
	for i, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			return nil, &ParseError{Row: i, Col: -1, Err: grid.ErrEmptyGrid}
		}
		if len(rows) > 0 && len(tokens) != len(rows[0]) {
			return nil, &ParseError{Row: i, Col: -1, Err: grid.ErrNonRectangular}
		}
		row := make([]bool, len(tokens))
		for j, tok := range tokens {
			pos := grid.Position{Row: i, Col: j}
			switch tok {
			case TokenDead:
			case TokenAlive:
				row[j] = true
			case TokenSource:
				if haveSrc {
					return nil, &ParseError{Row: i, Col: j, Token: tok, Err: ErrDuplicateSource}
				}
				src, haveSrc = pos, true
			case TokenDestination:
				if haveD {
					return nil, &ParseError{Row: i, Col: j, Token: tok, Err: ErrDuplicateDestination}
				}
				dst, haveD = pos, true
			case TokenIndeterminate:
				if o.Window == nil || !o.Window.Contains(pos) {
					return nil, &ParseError{Row: i, Col: j, Token: tok, Err: ErrIndeterminateOutsideWindow}
				}
			default:
				return nil, &ParseError{Row: i, Col: j, Token: tok, Err: ErrBadToken}
			}
		}
		rows = append(rows, row)
	}

	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, &ParseError{Row: -1, Col: -1, Err: err}
	}
	if !haveSrc {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrMissingSource}
	}
	if !haveD {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrMissingDestination}
	}
	return New(g, src, dst, opts...)
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*Automaton, error) {
	return Parse(strings.NewReader(s), opts...)
}

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a plain grid in the format produced by Grid.String: one row per
// line, cells 0 (dead) or 1 (alive) separated by whitespace. Trailing blank
// lines are ignored; other blank lines are ErrEmptyGrid.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]bool
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		row := make([]bool, len(fields))
		for j, f := range fields {
			switch f {
			case "0":
			case "1":
				row[j] = true
			default:
				return nil, fmt.Errorf("%w: row %d, col %d: %q", ErrBadCell, len(rows), j, f)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is blank", ErrEmptyGrid, i)
		}
	}
	return FromRows(rows)
}

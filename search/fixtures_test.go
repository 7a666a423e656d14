package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lifepath/automaton"
)

const (
	// scenario4x6 needs 14 moves; no route exists in fewer generations.
	scenario4x6 = `3 0 0 1 0 0
0 1 1 0 1 1
0 0 1 1 0 0
0 0 0 0 0 4`

	// scenarioRow is an obstacle-free corridor.
	scenarioRow = `3 0 4`

	// scenarioBlockedDestination: the destination is alive in every
	// generation from 1 on; the grid settles into a 2-cycle at generation 6.
	scenarioBlockedDestination = `3 1 0 0 1
1 1 0 1 1
0 1 1 4 1
1 1 0 0 0
0 1 0 0 1`

	// scenarioTrapped: every neighbor of the source is alive in generation 1.
	scenarioTrapped = `3 0 1 0
0 1 1 0
1 1 0 4`

	// scenarioLifeLost: the middle cell is alive in generation 1 and the
	// destination is dead again in generation 2.
	scenarioLifeLost = `3 0 4
0 1 1`
)

func mustParse(t testing.TB, s string, opts ...automaton.Option) *automaton.Automaton {
	t.Helper()
	a, err := automaton.ParseString(s, opts...)
	require.NoError(t, err)
	return a
}

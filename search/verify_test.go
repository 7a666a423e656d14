package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lifepath/grid"
	"github.com/katalvlaran/lifepath/search"
)

func mustPath(t *testing.T, s string) search.Path {
	t.Helper()
	p, err := search.ParsePath(s)
	require.NoError(t, err)
	return p
}

// TestVerify_GoldenPaths replays both known routes of the 4×6 scenario.
func TestVerify_GoldenPaths(t *testing.T) {
	a := mustParse(t, scenario4x6)
	for _, s := range []string{
		"D U D U D D R R R D R L R R",
		"D D D U D U R R R R D L R R",
	} {
		r, err := search.Verify(a, mustPath(t, s), 0)
		require.NoError(t, err, s)
		assert.Equal(t, 14, r.Ticks)
		assert.Zero(t, r.LivesLost)
	}
}

// TestVerify_LivesLost tolerates an alive cell in the middle of the route
// only within the budget.
func TestVerify_LivesLost(t *testing.T) {
	a := mustParse(t, scenarioLifeLost)
	path := mustPath(t, "R R")

	r, err := search.Verify(a, path, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.LivesLost)
	assert.Equal(t, a.Destination(), r.Final)

	_, err = search.Verify(a, path, 0)
	var ce *search.ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, search.ErrVerification)
	assert.Equal(t, 1, ce.Generation)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, ce.Position)
}

// TestVerify_AliveAtLastTick is never tolerated.
func TestVerify_AliveAtLastTick(t *testing.T) {
	a := mustParse(t, scenarioLifeLost)
	_, err := search.VerifyEndingAt(a, mustPath(t, "R"), grid.Position{Row: 0, Col: 1}, 10)
	require.ErrorIs(t, err, search.ErrVerification)
	assert.Contains(t, err.Error(), "alive at last tick")
}

// TestVerify_Failures covers the remaining rejection paths.
func TestVerify_Failures(t *testing.T) {
	a := mustParse(t, scenario4x6)
	cases := []struct {
		name, path, reason string
	}{
		{"LeavesGrid", "U", "left the grid"},
		{"EndsElsewhere", "D", "ends away from"},
		{"EmptyPathAwayFromDestination", "", "ends away from"},
		{"StepsOnLiveCell", "R D", "lost 1 lives"},
		{"LiveCellAtEnd", "R", "alive at last tick"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.Verify(a, mustPath(t, tc.path), 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, search.ErrVerification))
			assert.Contains(t, err.Error(), tc.reason)
		})
	}

	_, err := search.Verify(nil, nil, 0)
	assert.ErrorIs(t, err, search.ErrNilAutomaton)
	_, err = search.Verify(a, nil, -1)
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestParsePath accepts letters separated by any whitespace.
func TestParsePath(t *testing.T) {
	p, err := search.ParsePath("  D U\tL  R\n")
	require.NoError(t, err)
	assert.Equal(t, search.Path{grid.Down, grid.Up, grid.Left, grid.Right}, p)
	assert.Equal(t, "D U L R", p.String())
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, p.End(grid.Position{}))

	empty, err := search.ParsePath("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, bad := range []string{"X", "UD", "u"} {
		_, err := search.ParsePath(bad)
		assert.ErrorIs(t, err, grid.ErrUnknownMovement, bad)
	}
}

package search

import (
	"fmt"

	"github.com/katalvlaran/lifepath/automaton"
	"github.com/katalvlaran/lifepath/grid"
)

// Replay summarizes a verified path.
type Replay struct {
	// Ticks is the number of generations replayed (len of the path).
	Ticks int
	// LivesLost counts ticks on which the agent stood on an alive cell.
	LivesLost int
	// Final is the position after the last movement.
	Final grid.Position
}

// Verify replays path from a's source through freshly computed generations of
// a and checks that it ends at the destination. The agent may stand on an
// alive cell at most maxLivesLost times, and never at tick 0 or on the last
// tick. Any violation is returned as a *ConsistencyError wrapping
// ErrVerification.
func Verify(a *automaton.Automaton, path Path, maxLivesLost int) (*Replay, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	return VerifyEndingAt(a, path, a.Destination(), maxLivesLost)
}

// VerifyEndingAt is Verify with an explicit final position, for checking
// best-effort paths that stop short of the destination.
func VerifyEndingAt(a *automaton.Automaton, path Path, end grid.Position, maxLivesLost int) (*Replay, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	if maxLivesLost < 0 {
		return nil, fmt.Errorf("%w: maxLivesLost cannot be negative (%d)", ErrOptionViolation, maxLivesLost)
	}

	cur := a
	pos := a.Source()
	if !cur.Passable(pos) {
		return nil, &ConsistencyError{Generation: 0, Position: pos, Reason: "alive at first tick", Err: ErrVerification}
	}

	lives := 0
	for i, m := range path {
		cur = cur.NextGeneration()
		pos = pos.Next(m)
		tick := i + 1
		alive, ok := cur.Alive(pos)
		if !ok {
			return nil, &ConsistencyError{
				Generation: tick, Position: pos, Movement: m, HasMovement: true,
				Reason: "left the grid", Err: ErrVerification,
			}
		}
		if !alive {
			continue
		}
		lives++
		if tick == len(path) {
			return nil, &ConsistencyError{
				Generation: tick, Position: pos, Movement: m, HasMovement: true,
				Reason: "alive at last tick", Err: ErrVerification,
			}
		}
		if lives > maxLivesLost {
			return nil, &ConsistencyError{
				Generation: tick, Position: pos, Movement: m, HasMovement: true,
				Reason: fmt.Sprintf("lost %d lives, %d tolerated", lives, maxLivesLost), Err: ErrVerification,
			}
		}
	}
	if pos != end {
		return nil, &ConsistencyError{
			Generation: len(path), Position: pos,
			Reason: fmt.Sprintf("ends away from %v", end), Err: ErrVerification,
		}
	}
	return &Replay{Ticks: len(path), LivesLost: lives, Final: pos}, nil
}

package search

import (
	"math"

	"github.com/katalvlaran/lifepath/automaton"
	"github.com/katalvlaran/lifepath/grid"
)

// FindPath runs the Heuristic strategy with the given budgets.
func FindPath(a *automaton.Automaton, maxGenerations, maxPessimism int) (*Result, error) {
	return Search(a,
		WithStrategy(Heuristic),
		WithMaxGenerations(maxGenerations),
		WithMaxPessimism(maxPessimism),
	)
}

// FindPathRobust runs the Robust strategy with the given generation budget.
func FindPathRobust(a *automaton.Automaton, maxGenerations int) (*Result, error) {
	return Search(a,
		WithStrategy(Robust),
		WithMaxGenerations(maxGenerations),
	)
}

// Search looks for a route from a's source to its destination, starting in
// generation a.Generation() and applying any number of functional Options.
// Returns ErrNilAutomaton or ErrOptionViolation for invalid input, and a
// *ConsistencyError wrapping ErrReconstruction if the recorded history is
// inconsistent. Running out of budget is not an error; see Result.Found.
func Search(a *automaton.Automaton, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	c := newController(a, o)
	return c.run()
}

// best tracks the reached lattice cell closest to the destination.
type best struct {
	distance   int
	generation int
	position   grid.Position
}

// controller encapsulates mutable state of a single search.
type controller struct {
	opts     Options
	newLayer newLayerFunc
	src, dst grid.Position
	current  *automaton.Automaton
	history  []layer // history[g] is the reached set of generation g
	best     best
	visited  int
}

func newController(a *automaton.Automaton, o Options) *controller {
	return &controller{
		opts:     o,
		newLayer: layerFactory(o.Strategy),
		src:      a.Source(),
		dst:      a.Destination(),
		current:  a,
	}
}

// run seeds generation 0 with the source and expands one generation at a
// time until the destination is reached, the frontier empties or the budget
// runs out.
func (c *controller) run() (*Result, error) {
	if !c.current.Passable(c.src) {
		return &Result{
			Termination: Trapped,
			Strategy:    c.opts.Strategy,
			Closest:     c.src,
			Distance:    c.src.Manhattan(c.dst),
			Path:        Path{},
		}, nil
	}
	seed := c.newLayer(c.current.Grid())
	seed.add(c.src, grid.Up) // placeholder movement, never followed
	c.history = append(c.history, seed)
	c.visited = 1
	c.best = best{distance: c.src.Manhattan(c.dst), position: c.src}

	for gen := 0; ; gen++ {
		if c.history[gen].has(c.dst) {
			return c.finish(gen, c.dst, Reached)
		}
		if gen >= c.opts.MaxGenerations {
			return c.finish(c.best.generation, c.best.position, BudgetExhausted)
		}
		next := c.expand(gen)
		c.history = append(c.history, next)
		c.visited += next.size()
		c.opts.OnGeneration(GenerationStats{
			Generation:   gen + 1,
			Frontier:     next.size(),
			Visited:      c.visited,
			BestDistance: c.best.distance,
		})
		if next.size() == 0 {
			return c.finish(c.best.generation, c.best.position, Trapped)
		}
	}
}

// expand advances the automaton and derives the reached set of generation
// gen+1 from that of generation gen.
func (c *controller) expand(gen int) layer {
	c.current = c.current.NextGeneration()
	next := c.newLayer(c.current.Grid())

	limit := math.MaxInt
	if c.opts.Strategy == Heuristic && c.opts.MaxPessimism < math.MaxInt-c.best.distance {
		limit = c.best.distance + c.opts.MaxPessimism
	}

	for p := range c.history[gen].positions() {
		for _, m := range grid.Movements {
			q := p.Next(m)
			if !c.current.Passable(q) {
				continue
			}
			d := q.Manhattan(c.dst)
			if d > limit {
				continue
			}
			if next.add(q, m) && d < c.best.distance {
				c.best = best{distance: d, generation: gen + 1, position: q}
			}
		}
	}
	return next
}

func (c *controller) finish(gen int, end grid.Position, why Termination) (*Result, error) {
	path, err := assemble(c.history, c.src, gen, end)
	if err != nil {
		return nil, err
	}
	return &Result{
		Path:        path,
		Found:       why == Reached,
		Termination: why,
		Strategy:    c.opts.Strategy,
		Closest:     end,
		Distance:    end.Manhattan(c.dst),
		Generations: len(c.history) - 1,
		Visited:     c.visited,
	}, nil
}

// assemble walks history backwards from (gen, end) to (0, src) and returns
// the movements oldest first. It only reads history.
func assemble(history []layer, src grid.Position, gen int, end grid.Position) (Path, error) {
	if gen < 0 || gen >= len(history) || !history[gen].has(end) {
		return nil, &ConsistencyError{Generation: gen, Position: end, Reason: "end cell not reached", Err: ErrReconstruction}
	}
	path := make(Path, gen)
	pos := end
	for g := gen; g > 0; g-- {
		m, ok := history[g].arrival(pos, history[g-1])
		if !ok {
			return nil, &ConsistencyError{Generation: g, Position: pos, Reason: "no predecessor", Err: ErrReconstruction}
		}
		prev := pos.Previous(m)
		if !history[g-1].has(prev) {
			return nil, &ConsistencyError{
				Generation: g, Position: pos, Movement: m, HasMovement: true,
				Reason: "predecessor not reached", Err: ErrReconstruction,
			}
		}
		path[g-1] = m
		pos = prev
	}
	if pos != src {
		return nil, &ConsistencyError{Generation: 0, Position: pos, Reason: "walk does not end at source", Err: ErrReconstruction}
	}
	return path, nil
}

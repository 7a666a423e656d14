package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lifepath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilAutomaton is returned when a nil automaton is passed.
	ErrNilAutomaton = errors.New("search: automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrReconstruction marks a reached position with no consistent predecessor.
	ErrReconstruction = errors.New("search: path reconstruction failed")

	// ErrVerification marks a path that does not replay legally.
	ErrVerification = errors.New("search: path verification failed")
)

// Default budgets, matching the command-line defaults.
const (
	DefaultMaxGenerations = 50_000
	DefaultMaxPessimism   = 50
)

// Strategy selects the per-generation history representation.
type Strategy int

const (
	// Heuristic stores parent movements and prunes pessimistic candidates.
	Heuristic Strategy = iota
	// Robust stores membership bits only and never prunes.
	Robust
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Heuristic:
		return "heuristic"
	case Robust:
		return "robust"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "heuristic" or "robust" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "heuristic":
		return Heuristic, nil
	case "robust":
		return Robust, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
}

// Termination tells why a search stopped.
type Termination int

const (
	// Reached means the destination was reached.
	Reached Termination = iota
	// Trapped means a generation's reached set became empty.
	Trapped
	// BudgetExhausted means MaxGenerations were computed without success.
	BudgetExhausted
)

// String implements fmt.Stringer.
func (t Termination) String() string {
	switch t {
	case Reached:
		return "reached"
	case Trapped:
		return "trapped"
	case BudgetExhausted:
		return "budget exhausted"
	}
	return fmt.Sprintf("Termination(%d)", int(t))
}

// GenerationStats describes one computed generation; passed to OnGeneration.
type GenerationStats struct {
	// Generation is the index of the generation just computed (≥ 1).
	Generation int
	// Frontier is the number of positions reached in this generation.
	Frontier int
	// Visited is the number of positions reached over all generations so far.
	Visited int
	// BestDistance is the smallest distance to the destination seen so far.
	BestDistance int
}

// Option configures Search and SearchAll via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds search budgets and callbacks.
type Options struct {
	// Strategy selects Heuristic or Robust.
	Strategy Strategy

	// MaxGenerations caps the number of generations computed.
	// 0 only checks whether source equals destination.
	MaxGenerations int

	// MaxPessimism is the allowed excess of a candidate's distance over the
	// best distance seen so far. Ignored by Robust.
	MaxPessimism int

	// Workers bounds concurrent searches in SearchAll; 0 means GOMAXPROCS.
	Workers int

	// OnGeneration is called after each generation is computed. With
	// SearchAll it may be called from several goroutines at once.
	OnGeneration func(GenerationStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Heuristic strategy
//   - MaxGenerations = DefaultMaxGenerations
//   - MaxPessimism = DefaultMaxPessimism
//   - Workers = 0 (GOMAXPROCS)
//   - a no-op OnGeneration hook.
func DefaultOptions() Options {
	return Options{
		Strategy:       Heuristic,
		MaxGenerations: DefaultMaxGenerations,
		MaxPessimism:   DefaultMaxPessimism,
		OnGeneration:   func(GenerationStats) {},
	}
}

// WithStrategy selects the history representation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Heuristic && s != Robust {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithMaxGenerations caps the number of generations computed.
//
//	n ≥ 0: compute at most n generations
//	n < 0: invalid option → ErrOptionViolation
func WithMaxGenerations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxGenerations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxGenerations = n
	}
}

// WithMaxPessimism sets the pruning budget of the Heuristic strategy.
// Negative values are rejected with ErrOptionViolation; very large values
// disable pruning.
func WithMaxPessimism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPessimism cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPessimism = n
	}
}

// WithWorkers bounds the number of concurrent searches run by SearchAll.
// 0 means GOMAXPROCS; negative values are rejected.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnGeneration registers a callback run after every computed generation.
func WithOnGeneration(fn func(GenerationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Result is the outcome of a search.
type Result struct {
	// Path is the route found, or the best-effort route to Closest.
	Path Path
	// Found reports whether Path ends at the destination.
	Found bool
	// Termination tells why the search stopped.
	Termination Termination
	// Strategy is the strategy that produced this result.
	Strategy Strategy
	// Closest is the end of Path: the destination when Found, otherwise the
	// position closest to it seen during the search.
	Closest grid.Position
	// Distance is the Manhattan distance from Closest to the destination.
	Distance int
	// Generations is the number of generations computed.
	Generations int
	// Visited is the number of reached positions over all generations,
	// including the source.
	Visited int
}

// ConsistencyError reports an internal-consistency failure with the lattice
// cell where it was detected. It always wraps ErrReconstruction or
// ErrVerification and indicates a defect, not a recoverable condition.
type ConsistencyError struct {
	Generation  int
	Position    grid.Position
	Movement    grid.Movement
	HasMovement bool
	Reason      string
	Err         error
}

func (e *ConsistencyError) Error() string {
	if e.HasMovement {
		return fmt.Sprintf("%v: generation %d, position %v, movement %v: %s",
			e.Err, e.Generation, e.Position, e.Movement, e.Reason)
	}
	return fmt.Sprintf("%v: generation %d, position %v: %s", e.Err, e.Generation, e.Position, e.Reason)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }

package automaton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lifepath/grid"
)

// Sentinel errors for automaton construction and parsing.
var (
	// ErrEndpointOutOfBounds indicates a source or destination outside the grid.
	ErrEndpointOutOfBounds = errors.New("automaton: endpoint outside grid")
	// ErrEndpointAlive indicates an alive source or destination without
	// immutable endpoints.
	ErrEndpointAlive = errors.New("automaton: endpoint cell is alive")
	// ErrBadToken indicates a cell token other than 0, 1, 3, 4 or x.
	ErrBadToken = errors.New("automaton: unrecognized cell token")
	// ErrIndeterminateOutsideWindow indicates an x token outside the allowed window.
	ErrIndeterminateOutsideWindow = errors.New("automaton: indeterminate cell outside window")
	// ErrMissingSource indicates the input has no 3 token.
	ErrMissingSource = errors.New("automaton: missing source")
	// ErrMissingDestination indicates the input has no 4 token.
	ErrMissingDestination = errors.New("automaton: missing destination")
	// ErrDuplicateSource indicates more than one 3 token.
	ErrDuplicateSource = errors.New("automaton: more than one source")
	// ErrDuplicateDestination indicates more than one 4 token.
	ErrDuplicateDestination = errors.New("automaton: more than one destination")
)

// Cell tokens of the text format.
const (
	TokenDead          = "0"
	TokenAlive         = "1"
	TokenSource        = "3"
	TokenDestination   = "4"
	TokenIndeterminate = "x"
)

// ParseError reports malformed input with the offending location.
// Row and Col are zero-based; Col is -1 for errors that concern a whole row
// and both are -1 for errors about the input as a whole.
type ParseError struct {
	Row, Col int
	Token    string
	Err      error
}

func (e *ParseError) Error() string {
	switch {
	case e.Row < 0:
		return e.Err.Error()
	case e.Col < 0:
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	default:
		return fmt.Sprintf("row %d, column %d: %v (token %q)", e.Row, e.Col, e.Err, e.Token)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Option configures New and Parse.
type Option func(*Options)

// Options holds automaton construction settings.
type Options struct {
	// ImmutableEndpoints forces source and destination dead after every transition.
	ImmutableEndpoints bool
	// Window, if non-nil, is the only region where Parse accepts x tokens.
	Window *grid.Window
}

// DefaultOptions returns Options with mutable endpoints and no indeterminate window.
func DefaultOptions() Options {
	return Options{}
}

// WithImmutableEndpoints keeps source and destination dead in every generation.
func WithImmutableEndpoints() Option {
	return func(o *Options) { o.ImmutableEndpoints = true }
}

// WithIndeterminateWindow allows x tokens inside w when parsing.
func WithIndeterminateWindow(w grid.Window) Option {
	return func(o *Options) { o.Window = &w }
}

// Package pathfind defines the move variant, sentinel errors and functional
// options for the directional maze search.
//
// Options:
//
//	- WithLogger:  structured logger for search lifecycle events (Debug level).
//	- WithMaxCost: optional cap on explored cost; states beyond it are not expanded.
//	- WithRunID:   correlation id attached to every log line of one search.
//
// Errors (sentinel):
//
//	- ErrNilGrid      if the provided grid pointer is nil.
//	- ErrUnreachable  if no Sink state is reachable (MinCost only).
//	- ErrBadMaxCost   if MaxCost < 0 (raised via panic in WithMaxCost).
package pathfind

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed to Search.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrUnreachable indicates that no Sink cell is reachable from the Source
	// at any cost. It is a legitimate answer, not a failure of the engine.
	ErrUnreachable = errors.New("pathfind: sink is unreachable")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("pathfind: MaxCost must be non-negative")
)

// Edge costs of the two move classes.
const (
	AdvanceCost int64 = 1
	RotateCost  int64 = 1000
)

// Unreached is the cost reported for states the search never finalized.
const Unreached int64 = math.MaxInt64

// MoveKind tags the two move cases. The set is closed.
type MoveKind uint8

const (
	// Advance moves one cell along the current heading.
	Advance MoveKind = iota
	// Rotate turns 90° in place.
	Rotate
)

func (k MoveKind) String() string {
	if k == Advance {
		return "Advance"
	}

	return "Rotate"
}

// Move is one edge of the state graph. Turn is meaningful only for Rotate.
type Move struct {
	Kind MoveKind
	Turn maze.Rotation
}

// AdvanceMove returns the Advance move.
func AdvanceMove() Move { return Move{Kind: Advance} }

// RotateMove returns a Rotate move turning in direction r.
func RotateMove(r maze.Rotation) Move { return Move{Kind: Rotate, Turn: r} }

// Cost returns the fixed cost of m.
func (m Move) Cost() int64 {
	if m.Kind == Advance {
		return AdvanceCost
	}

	return RotateCost
}

// Apply returns the state reached by taking m from s. It does not check walls.
func (m Move) Apply(s maze.State) maze.State {
	if m.Kind == Advance {
		return maze.State{Cell: s.Cell.Step(s.Heading), Heading: s.Heading}
	}

	return maze.State{Cell: s.Cell, Heading: s.Heading.Rotate(m.Turn)}
}

func (m Move) String() string {
	if m.Kind == Advance {
		return "Advance"
	}

	return "Rotate(" + m.Turn.String() + ")"
}

// Score returns the sum of move costs.
func Score(moves []Move) int64 {
	var total int64
	for _, m := range moves {
		total += m.Cost()
	}

	return total
}

// Options configures a search.
//
// Logger  - destination for Debug-level lifecycle events. Defaults to the package logger.
// MaxCost - states whose cost would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// RunID   - optional correlation id added to log fields.
type Options struct {
	Logger  logrus.FieldLogger
	MaxCost int64
	RunID   string
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithLogger routes search events to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCost caps the explored cost. Sinks beyond the cap count as unreachable.
// Panics with ErrBadMaxCost on a negative value.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithRunID tags log lines with id.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// DefaultOptions returns the package logger and no cost cap.
func DefaultOptions() Options {
	return Options{
		Logger:  log,
		MaxCost: math.MaxInt64,
	}
}

// log is the package default; its level is logrus.InfoLevel, so search
// events stay silent unless the caller raises it or passes WithLogger.
var log = logrus.New()

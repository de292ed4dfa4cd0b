package pathfind

import (
	"slices"

	"github.com/gammazero/deque"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/mazepath/maze"
)

// Stats reports how much work one search did.
type Stats struct {
	Finalized    int // states popped at their best cost
	Pushed       int // frontier insertions
	PeakFrontier int // largest frontier size observed
}

// Result is the outcome of one Search. It is read-only and safe to share.
type Result struct {
	// Reachable is false when no Sink state was reached.
	Reachable bool
	// MinCost is the minimum score over all routes to any Sink, or Unreached.
	MinCost int64
	// Stats describes the forward pass.
	Stats Stats

	grid  *maze.Grid
	best  []int64
	preds []predSet
	ends  []maze.State // Sink states tied at MinCost, row-major then heading order
	tiles map[maze.Cell]struct{}
}

// result finds the optimal Sink states and walks the predecessor graph back
// from all of them, marking visited states so cycles cannot trap the walk.
func (r *runner) result() *Result {
	res := &Result{
		MinCost: Unreached,
		Stats:   r.stats,
		grid:    r.g,
		best:    r.best,
		preds:   r.preds,
		tiles:   make(map[maze.Cell]struct{}),
	}

	for _, sink := range r.g.Sinks() {
		for _, h := range maze.Headings {
			s := maze.State{Cell: sink, Heading: h}
			c := r.best[r.id(s)]
			switch {
			case c < res.MinCost:
				res.MinCost = c
				res.ends = append(res.ends[:0], s)
			case c == res.MinCost && c != Unreached:
				res.ends = append(res.ends, s)
			}
		}
	}
	if len(res.ends) == 0 {
		return res
	}
	res.Reachable = true

	seen := make([]bool, len(r.best))
	var queue deque.Deque[maze.State]
	for _, s := range res.ends {
		seen[r.id(s)] = true
		queue.PushBack(s)
	}
	var buf []maze.State
	for queue.Len() > 0 {
		s := queue.PopFront()
		res.tiles[s.Cell] = struct{}{}
		buf = predecessors(buf[:0], s, r.preds[r.id(s)])
		for _, p := range buf {
			pid := r.id(p)
			if seen[pid] {
				continue
			}
			seen[pid] = true
			queue.PushBack(p)
		}
	}

	return res
}

// TileCount returns the number of distinct cells on any optimal route.
func (res *Result) TileCount() int { return len(res.tiles) }

// HasTile reports whether c lies on at least one optimal route.
func (res *Result) HasTile(c maze.Cell) bool {
	_, ok := res.tiles[c]

	return ok
}

// Tiles returns the optimal-route cells sorted in row-major order.
func (res *Result) Tiles() []maze.Cell {
	out := maps.Keys(res.tiles)
	slices.SortFunc(out, func(a, b maze.Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}

		return a.Col - b.Col
	})

	return out
}

// Ends returns the Sink states reached at MinCost.
func (res *Result) Ends() []maze.State {
	return slices.Clone(res.ends)
}

// CostAt returns the minimum cost at which state s is reachable from the
// source state, and false if s was never reached (or lies outside the grid).
func (res *Result) CostAt(s maze.State) (int64, bool) {
	if !res.grid.InBounds(s.Cell) || !s.Heading.Valid() {
		return Unreached, false
	}
	c := res.best[stateID(res.grid, s)]

	return c, c != Unreached
}

// Path returns one optimal route as a move sequence from the source state.
// The choice among tied routes is deterministic: the first end state in Ends,
// and at each step back the predecessor reached by Advance before one reached
// by a clockwise turn before one reached by a counter-clockwise turn.
// Path returns nil when the Sink is unreachable.
func (res *Result) Path() []Move {
	if !res.Reachable {
		return nil
	}
	var moves []Move
	start := res.grid.SourceState()
	cur := res.ends[0]
	for cur != start {
		set := res.preds[stateID(res.grid, cur)]
		switch {
		case set&viaAdvance != 0:
			moves = append(moves, AdvanceMove())
			cur = maze.State{Cell: cur.Cell.Step(cur.Heading.Reverse()), Heading: cur.Heading}
		case set&viaClockwise != 0:
			moves = append(moves, RotateMove(maze.Clockwise))
			cur = maze.State{Cell: cur.Cell, Heading: cur.Heading.CounterClockwise()}
		case set&viaCounterClockwise != 0:
			moves = append(moves, RotateMove(maze.CounterClockwise))
			cur = maze.State{Cell: cur.Cell, Heading: cur.Heading.Clockwise()}
		default:
			// Only the source state has no predecessor; reaching here means
			// the tables are inconsistent.
			panic("pathfind: broken predecessor chain at " + cur.String())
		}
	}
	slices.Reverse(moves)

	return moves
}

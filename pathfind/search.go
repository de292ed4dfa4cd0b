// Package pathfind implements the directional maze search: Dijkstra's
// algorithm over (cell, heading) states with predecessor-set accumulation,
// followed by a backward walk that collects every cell on any optimal route.
//
// Complexity:
//
//   - Time:  O(E log V), V = cells×4 headings, E ≤ 3V.
//   - Each state has at most three outgoing edges: one Advance, two Rotate.
//   - Each strict improvement pushes one frontier entry; stale entries are skipped on pop.
//   - Space: O(V)
//   - Dense best-cost and predecessor tables indexed by state id, owned by one call.
//
// Notes on implementation choices:
//
//   - A popped entry is stale only when the recorded cost is strictly less than its own.
//   - An edge reaching a state at exactly its recorded cost adds a predecessor
//     instead of being dropped; ties are accumulated, never broken.
//   - Predecessors are stored as a bit set over the three possible incoming edges,
//     so the same predecessor can never be recorded twice.
package pathfind

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/maze"
)

// Search runs the forward pass and the optimal-tile reconstruction on g.
//
// The returned Result is never nil on success. An unreachable Sink is not an
// error: Result.Reachable is false, MinCost is Unreached and the tile set is empty.
//
// Preconditions and validation:
//  1. g must be non-nil (ErrNilGrid).
//
// Options customization:
//
//   - WithLogger(l): send Debug events to l.
//   - WithMaxCost(x): states costing more than x are not explored (x ≥ 0).
//   - WithRunID(id): add run_id to every log line.
func Search(g *maze.Grid, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	logger := cfg.Logger.WithFields(logrus.Fields{
		"rows":   g.Rows(),
		"cols":   g.Cols(),
		"source": g.Source().String(),
		"sinks":  len(g.Sinks()),
	})
	if cfg.RunID != "" {
		logger = logger.WithField("run_id", cfg.RunID)
	}
	logger.Debug("search started")

	r := newRunner(g, cfg)
	r.init()
	r.process()
	res := r.result()

	logger.WithFields(logrus.Fields{
		"reachable":     res.Reachable,
		"min_cost":      res.MinCost,
		"tiles":         res.TileCount(),
		"finalized":     res.Stats.Finalized,
		"pushed":        res.Stats.Pushed,
		"peak_frontier": res.Stats.PeakFrontier,
	}).Debug("search finished")

	return res, nil
}

// MinCost returns the minimum score from the source state to any Sink, or
// ErrUnreachable when no Sink can be reached.
func MinCost(g *maze.Grid, opts ...Option) (int64, error) {
	res, err := Search(g, opts...)
	if err != nil {
		return 0, err
	}
	if !res.Reachable {
		return Unreached, ErrUnreachable
	}

	return res.MinCost, nil
}

// OptimalTileCount returns the number of distinct cells lying on at least one
// minimum-cost route. It is 0 when no Sink is reachable.
func OptimalTileCount(g *maze.Grid, opts ...Option) (int, error) {
	res, err := Search(g, opts...)
	if err != nil {
		return 0, err
	}

	return res.TileCount(), nil
}

// predSet records which of the three possible incoming edges of a state
// reach it at its best cost.
type predSet uint8

const (
	// viaAdvance: predecessor is the cell behind, same heading.
	viaAdvance predSet = 1 << iota
	// viaClockwise: predecessor is the same cell, turned clockwise to get here.
	viaClockwise
	// viaCounterClockwise: predecessor is the same cell, turned counter-clockwise.
	viaCounterClockwise
)

// viaRotation maps a rotation to the predSet bit it records on the target state.
func viaRotation(rot maze.Rotation) predSet {
	if rot == maze.Clockwise {
		return viaClockwise
	}

	return viaCounterClockwise
}

// runner holds the mutable state for a single search. Nothing in it outlives
// the call except what result() hands to the Result.
type runner struct {
	g     *maze.Grid
	opts  Options
	best  []int64   // state id → best known cost; Unreached if never reached
	preds []predSet // state id → incoming edges achieving best
	pq    frontier
	stats Stats
}

func newRunner(g *maze.Grid, opts Options) *runner {
	n := g.Size() * maze.NumHeadings
	r := &runner{
		g:     g,
		opts:  opts,
		best:  make([]int64, n),
		preds: make([]predSet, n),
		pq:    make(frontier, 0, g.Size()),
	}
	for i := range r.best {
		r.best[i] = Unreached
	}

	return r
}

// stateID maps an in-bounds state to its dense index: cellIndex*4 + heading.
func stateID(g *maze.Grid, s maze.State) int {
	return g.Index(s.Cell)*maze.NumHeadings + int(s.Heading)
}

func (r *runner) id(s maze.State) int { return stateID(r.g, s) }

// state is the inverse of id.
func (r *runner) state(id int) maze.State {
	return maze.State{
		Cell:    r.g.Coordinate(id / maze.NumHeadings),
		Heading: maze.Heading(id % maze.NumHeadings),
	}
}

// init seeds the frontier with the source state at cost 0.
func (r *runner) init() {
	start := r.id(r.g.SourceState())
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops states in cost order until the frontier is exhausted.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)

		// Stale only if something strictly cheaper was recorded since the push.
		if r.best[item.id] < item.cost {
			continue
		}
		r.stats.Finalized++
		r.relax(item.id, item.cost)
	}
}

// relax offers the three outgoing edges of the state with the given id.
func (r *runner) relax(id int, cost int64) {
	s := r.state(id)

	if next, ok := r.g.Neighbor(s.Cell, s.Heading); ok {
		r.offer(r.id(maze.State{Cell: next, Heading: s.Heading}), cost+AdvanceCost, viaAdvance)
	}
	for _, rot := range maze.Rotations {
		r.offer(r.id(maze.State{Cell: s.Cell, Heading: s.Heading.Rotate(rot)}), cost+RotateCost, viaRotation(rot))
	}
}

// offer records an edge reaching state `to` at `cost`.
//   - strictly cheaper: replace the predecessor set and push;
//   - exactly equal: add the edge to the predecessor set, no push;
//   - dearer or beyond MaxCost: ignore.
func (r *runner) offer(to int, cost int64, edge predSet) {
	if cost > r.opts.MaxCost {
		return
	}
	switch b := r.best[to]; {
	case cost < b:
		r.best[to] = cost
		r.preds[to] = edge
		r.push(to, cost)
	case cost == b:
		r.preds[to] |= edge
	}
}

func (r *runner) push(id int, cost int64) {
	heap.Push(&r.pq, frontierItem{id: id, cost: cost})
	r.stats.Pushed++
	if n := r.pq.Len(); n > r.stats.PeakFrontier {
		r.stats.PeakFrontier = n
	}
}

// predecessors appends to dst the states recorded as optimal predecessors of s.
func predecessors(dst []maze.State, s maze.State, set predSet) []maze.State {
	if set&viaAdvance != 0 {
		dst = append(dst, maze.State{Cell: s.Cell.Step(s.Heading.Reverse()), Heading: s.Heading})
	}
	if set&viaClockwise != 0 {
		dst = append(dst, maze.State{Cell: s.Cell, Heading: s.Heading.CounterClockwise()})
	}
	if set&viaCounterClockwise != 0 {
		dst = append(dst, maze.State{Cell: s.Cell, Heading: s.Heading.Clockwise()})
	}

	return dst
}

// frontierItem is a state id and the cost at which it was pushed.
type frontierItem struct {
	id   int
	cost int64
}

// frontier is a min-heap of frontierItem ordered by cost, then id so that the
// pop order is fully deterministic. Outdated entries stay in the heap and are
// skipped when popped ("lazy decrease-key").
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by cost ascending, ties by state id.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

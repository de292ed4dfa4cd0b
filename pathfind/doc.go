// Package pathfind computes, for a directional maze, both the minimum route
// cost from the source state to any Sink and the full set of cells lying on
// at least one minimum-cost route.
//
// Overview:
//
//   - The traveler's state is (cell, heading). Advancing one cell costs
//     AdvanceCost (1); turning 90° in place costs RotateCost (1000).
//   - Search runs Dijkstra's algorithm over the implicit state graph without
//     materializing it: only the frontier and a dense best-cost table exist.
//   - Ties are accumulated: every incoming edge that reaches a state at exactly
//     its best cost is kept as a predecessor. A backward walk from every Sink
//     state tied at the minimum then yields all optimal tiles in one pass.
//
// Why not enumerate paths:
//
//   - Expanding whole paths and comparing scores is exponential, and discarding
//     a later-found equal-cost predecessor silently loses optimal tiles.
//
// Performance and complexity:
//
//   - Time:  O(E log V) with V = cells×4 and E ≤ 3V.
//   - Space: O(V) for best costs and predecessor bit sets; the frontier holds at
//     most one live entry per state plus stale duplicates skipped on pop.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:     Search was given a nil grid.
//   - ErrUnreachable: returned by MinCost when no Sink can be reached. Search
//     itself reports this as Result.Reachable == false with an empty tile set.
//   - ErrBadMaxCost:  raised (via panic) by WithMaxCost for negative caps.
//
// API reference:
//
//	func Search(g *maze.Grid, opts ...Option) (*Result, error)
//	func MinCost(g *maze.Grid, opts ...Option) (int64, error)
//	func OptimalTileCount(g *maze.Grid, opts ...Option) (int, error)
//
// Thread safety:
//
//   - Every search owns its tables; concurrent searches over the same Grid are
//     safe because Grid is immutable. Result is read-only once returned.
package pathfind

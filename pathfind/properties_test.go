package pathfind_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

//----------------------------------------------------------------------------//
// Brute-force oracle
//----------------------------------------------------------------------------//

// oracle computes forward costs from the source state and backward costs to any
// Sink by plain fixed-point relaxation (Bellman-Ford style, no heap, no
// predecessor sets). A cell is an optimal tile when some heading h satisfies
// fwd(c,h) + bwd(c,h) == min.
type oracle struct {
	g        *maze.Grid
	fwd, bwd map[maze.State]int64
}

type edge struct {
	to   maze.State
	cost int64
}

func outEdges(g *maze.Grid, s maze.State) []edge {
	var out []edge
	if n, ok := g.Neighbor(s.Cell, s.Heading); ok {
		out = append(out, edge{maze.State{Cell: n, Heading: s.Heading}, pathfind.AdvanceCost})
	}
	out = append(out,
		edge{maze.State{Cell: s.Cell, Heading: s.Heading.Clockwise()}, pathfind.RotateCost},
		edge{maze.State{Cell: s.Cell, Heading: s.Heading.CounterClockwise()}, pathfind.RotateCost},
	)

	return out
}

func newOracle(g *maze.Grid) *oracle {
	var states []maze.State
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if !g.Classify(c).Passable() {
			continue
		}
		for _, h := range maze.Headings {
			states = append(states, maze.State{Cell: c, Heading: h})
		}
	}

	o := &oracle{g: g, fwd: map[maze.State]int64{}, bwd: map[maze.State]int64{}}
	o.fwd[g.SourceState()] = 0
	for _, s := range states {
		if g.IsSink(s.Cell) {
			o.bwd[s] = 0
		}
	}
	for changed := true; changed; {
		changed = false
		for _, s := range states {
			for _, e := range outEdges(g, s) {
				if c, ok := o.fwd[s]; ok {
					if old, seen := o.fwd[e.to]; !seen || c+e.cost < old {
						o.fwd[e.to] = c + e.cost
						changed = true
					}
				}
				if c, ok := o.bwd[e.to]; ok {
					if old, seen := o.bwd[s]; !seen || c+e.cost < old {
						o.bwd[s] = c + e.cost
						changed = true
					}
				}
			}
		}
	}

	return o
}

func (o *oracle) answer() (int64, []maze.Cell, bool) {
	best, found := int64(0), false
	for s, c := range o.fwd {
		if o.g.IsSink(s.Cell) && (!found || c < best) {
			best, found = c, true
		}
	}
	if !found {
		return pathfind.Unreached, nil, false
	}

	var tiles []maze.Cell
	for i := 0; i < o.g.Size(); i++ {
		c := o.g.Coordinate(i)
		for _, h := range maze.Headings {
			s := maze.State{Cell: c, Heading: h}
			f, okF := o.fwd[s]
			b, okB := o.bwd[s]
			if okF && okB && f+b == best {
				tiles = append(tiles, c)
				break
			}
		}
	}

	return best, tiles, true
}

// randomGrid builds a rows×cols grid with roughly wallPct% walls, one source
// and one or two sinks.
func randomGrid(r *rand.Rand, rows, cols, wallPct int) *maze.Grid {
	cells := make([][]byte, rows)
	for y := range cells {
		cells[y] = make([]byte, cols)
		for x := range cells[y] {
			cells[y][x] = '.'
			if r.Intn(100) < wallPct {
				cells[y][x] = '#'
			}
		}
	}
	pick := func() (int, int) {
		for {
			y, x := r.Intn(rows), r.Intn(cols)
			if cells[y][x] != 'S' && cells[y][x] != 'E' {
				return y, x
			}
		}
	}
	y, x := pick()
	cells[y][x] = 'S'
	for n := 1 + r.Intn(2); n > 0; n-- {
		y, x = pick()
		cells[y][x] = 'E'
	}
	lines := make([]string, rows)
	for y := range cells {
		lines[y] = string(cells[y])
	}

	return maze.MustParse(strings.Join(lines, "\n"))
}

// TestSearch_MatchesOracle cross-checks cost and tile set on random grids.
func TestSearch_MatchesOracle(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 150; i++ {
		g := randomGrid(r, 2+r.Intn(6), 2+r.Intn(7), r.Intn(40))

		wantCost, wantTiles, wantOK := newOracle(g).answer()
		res, err := pathfind.Search(g)
		require.NoError(t, err)

		require.Equal(t, wantOK, res.Reachable, "grid:\n%s", g)
		require.Equal(t, wantCost, res.MinCost, "grid:\n%s", g)
		if wantOK {
			require.Equal(t, wantTiles, res.Tiles(), "grid:\n%s", g)
		} else {
			require.Empty(t, res.Tiles())
		}
	}
}

//----------------------------------------------------------------------------//
// Invariants
//----------------------------------------------------------------------------//

func TestSearch_Deterministic(t *testing.T) {
	g := parse(t, referenceMazeLarge)

	a, err := pathfind.Search(g)
	require.NoError(t, err)
	b, err := pathfind.Search(g)
	require.NoError(t, err)

	assert.Equal(t, a.MinCost, b.MinCost)
	assert.Equal(t, a.Tiles(), b.Tiles())
	assert.Equal(t, a.Path(), b.Path())
	assert.Equal(t, a.Stats, b.Stats)
}

// TestSearch_MonotoneUnderWalls adds walls one at a time: the cost never
// decreases, and once unreachable the maze stays unreachable.
func TestSearch_MonotoneUnderWalls(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := parse(t, referenceMaze)
	open := g.OpenCells()
	r.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	prev, err := pathfind.Search(g)
	require.NoError(t, err)
	for _, c := range open {
		g = g.WithWalls(c)
		cur, err := pathfind.Search(g)
		require.NoError(t, err)
		if !prev.Reachable {
			require.False(t, cur.Reachable, "walls reopened a route after blocking %s", c)
			continue
		}
		if cur.Reachable {
			require.GreaterOrEqual(t, cur.MinCost, prev.MinCost, "cost dropped after blocking %s", c)
		}
		prev = cur
	}
}

func TestSearch_ManhattanLowerBound(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	grids := []*maze.Grid{parse(t, referenceMaze), parse(t, referenceMazeLarge), parse(t, diamondMaze)}
	for i := 0; i < 50; i++ {
		grids = append(grids, randomGrid(r, 3+r.Intn(6), 3+r.Intn(6), 25))
	}

	for _, g := range grids {
		res, err := pathfind.Search(g)
		require.NoError(t, err)
		if !res.Reachable {
			continue
		}
		nearest := -1
		for _, sink := range g.Sinks() {
			if d := g.Source().Manhattan(sink); nearest < 0 || d < nearest {
				nearest = d
			}
		}
		require.GreaterOrEqual(t, res.MinCost, int64(nearest), "grid:\n%s", g)
	}
}

// TestSearch_TileMembership checks every optimal tile is reached no later than
// the optimum, and that walling it off never lowers the optimum.
func TestSearch_TileMembership(t *testing.T) {
	g := parse(t, referenceMaze)
	res, err := pathfind.Search(g)
	require.NoError(t, err)

	for _, c := range res.Tiles() {
		reached := false
		for _, h := range maze.Headings {
			if cost, ok := res.CostAt(maze.State{Cell: c, Heading: h}); ok && cost <= res.MinCost {
				reached = true
			}
		}
		require.True(t, reached, "tile %s not reachable within the optimum", c)

		if g.Classify(c) != maze.Open {
			continue
		}
		blocked, err := pathfind.Search(g.WithWalls(c))
		require.NoError(t, err)
		if blocked.Reachable {
			require.GreaterOrEqual(t, blocked.MinCost, res.MinCost, "blocking %s lowered the cost", c)
		}
	}
}

// TestSearch_NonTileRemovalKeepsCost: walling a cell that is not on any
// optimal route leaves both answers untouched.
func TestSearch_NonTileRemovalKeepsCost(t *testing.T) {
	g := parse(t, referenceMaze)
	res, err := pathfind.Search(g)
	require.NoError(t, err)

	for _, c := range g.OpenCells() {
		if res.HasTile(c) {
			continue
		}
		blocked, err := pathfind.Search(g.WithWalls(c))
		require.NoError(t, err)
		require.Equal(t, res.MinCost, blocked.MinCost, "blocking %s", c)
		require.Equal(t, res.TileCount(), blocked.TileCount(), "blocking %s", c)
	}
}

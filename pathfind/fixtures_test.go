package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

// referenceMaze is the 15×15 published example: min cost 7036, 45 tiles.
const referenceMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

// referenceMazeLarge is the 17×17 published example: min cost 11048, 64 tiles.
const referenceMazeLarge = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

// diamondMaze has two disjoint routes of equal cost (3 turns, 6 steps).
const diamondMaze = `#######
#.....#
#S###E#
#.....#
#######`

// parse is a test helper around maze.ParseString.
func parse(t testing.TB, s string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseString(s)
	require.NoError(t, err)

	return g
}

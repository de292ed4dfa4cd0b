// Package mazepath finds the cheapest way through a directional maze and every
// cell that lies on some cheapest way.
//
// 🚀 What is mazepath?
//
//	A traveler starts on the Source cell facing East. Each step it may:
//		• Advance one cell in its heading (cost 1)
//		• Rotate 90° clockwise or counter-clockwise in place (cost 1000)
//	The goal is any Sink cell, in any heading.
//
// Two answers come out of one search:
//
//   - the minimum route cost, and
//   - the number of distinct cells on at least one minimum-cost route.
//
// Under the hood, everything is organized under two packages and one command:
//
//	maze/          Grid, Cell, Heading, Rotation, State, text parsing & rendering
//	pathfind/      Dijkstra over (cell, heading) with tie accumulation, Result views
//	cmd/mazepath/  CLI driver: .env / MAZEPATH_* / flags → search → stdout
//
// Quick ASCII example:
//
//	#######
//	#.....#      min cost:  3006 (three turns, six steps)
//	#S###E#      tiles:     12   (both corridors tie)
//	#.....#
//	#######
//
// Quick start:
//
//	g, err := maze.ParseString(input)
//	if err != nil { /* errors.Is(err, maze.ErrMalformedGrid) */ }
//	res, err := pathfind.Search(g)
//	fmt.Println(res.MinCost, res.TileCount())
package mazepath

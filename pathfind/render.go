package pathfind

import "github.com/katalvlaran/mazepath/maze"

// TileGlyph marks optimal-route cells in RenderTiles.
const TileGlyph = 'O'

// RenderTiles draws the grid with every optimal-route cell marked TileGlyph.
// Source and Sink keep their own glyphs.
func (res *Result) RenderTiles() string {
	overlay := make(map[maze.Cell]rune, len(res.tiles))
	for c := range res.tiles {
		if res.grid.Classify(c) == maze.Open {
			overlay[c] = TileGlyph
		}
	}

	return res.grid.Render(overlay)
}

// RenderPath draws the route returned by Path: each open cell the traveler
// stands on shows the heading it last faced there. Source and Sink keep their
// own glyphs. With no route it renders the bare grid.
func (res *Result) RenderPath() string {
	overlay := make(map[maze.Cell]rune)
	cur := res.grid.SourceState()
	for _, m := range res.Path() {
		cur = m.Apply(cur)
		if res.grid.Classify(cur.Cell) == maze.Open {
			overlay[cur.Cell] = cur.Heading.Arrow()
		}
	}

	return res.grid.Render(overlay)
}

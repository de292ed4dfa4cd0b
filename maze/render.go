package maze

import "strings"

// String renders g back to its character form, rows joined by '\n'
// without a trailing newline.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws g with overlay[c] replacing the glyph of cell c.
// Cells absent from overlay keep their Kind rune.
func (g *Grid) Render(overlay map[Cell]rune) string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if ch, ok := overlay[cell]; ok {
				b.WriteRune(ch)
				continue
			}
			b.WriteRune(g.kinds[g.Index(cell)].Rune())
		}
	}

	return b.String()
}

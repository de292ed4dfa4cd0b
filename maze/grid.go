// Package maze provides the immutable Grid the search engine walks over.
//
// Cells outside the rectangle are implicitly walls: Classify reports them as
// OutOfBounds and Neighbor never yields them.
package maze

import "fmt"

// Grid is a rectangular classification of cells. It is immutable once built;
// every method is safe for concurrent readers.
type Grid struct {
	rows, cols int
	kinds      []Kind // row-major, len == rows*cols
	source     Cell
	sinks      []Cell // row-major order
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of kinds.
// It deep-copies the input to ensure immutability.
//
// Returns an error wrapping ErrMalformedGrid and one of:
//   - ErrEmptyGrid if kinds has no rows or no columns,
//   - ErrNonRectangular if any row length differs,
//   - ErrUnknownCell if an entry is OutOfBounds or not a known Kind,
//   - ErrNoSource / ErrDuplicateSource unless exactly one Source exists,
//   - ErrNoSink if there is no Sink.
//
// Complexity: O(W×H) time and memory.
func NewGrid(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "")
	}
	h, w := len(kinds), len(kinds[0])
	for r, row := range kinds {
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has %d cells, want %d", r, len(row), w)
		}
	}

	g := &Grid{rows: h, cols: w, kinds: make([]Kind, 0, h*w)}
	sources := 0
	for r, row := range kinds {
		for c, k := range row {
			switch k {
			case Open, Wall:
			case Source:
				sources++
				if sources > 1 {
					return nil, malformed(ErrDuplicateSource, "second source at %s", Cell{r, c})
				}
				g.source = Cell{Row: r, Col: c}
			case Sink:
				g.sinks = append(g.sinks, Cell{Row: r, Col: c})
			default:
				return nil, malformed(ErrUnknownCell, "%s at %s", k, Cell{r, c})
			}
			g.kinds = append(g.kinds, k)
		}
	}
	if sources == 0 {
		return nil, malformed(ErrNoSource, "")
	}
	if len(g.sinks) == 0 {
		return nil, malformed(ErrNoSink, "")
	}

	return g, nil
}

// malformed joins ErrMalformedGrid with a specific cause and optional detail.
func malformed(cause error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrMalformedGrid, cause)
	}

	return fmt.Errorf("%w: %w: %s", ErrMalformedGrid, cause, fmt.Sprintf(format, args...))
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells, rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Classify returns the kind of c, or OutOfBounds outside the rectangle.
// Complexity: O(1).
func (g *Grid) Classify(c Cell) Kind {
	if !g.InBounds(c) {
		return OutOfBounds
	}

	return g.kinds[g.Index(c)]
}

// Source returns the single Source cell.
func (g *Grid) Source() Cell { return g.source }

// Sinks returns a copy of the Sink cells in row-major order.
func (g *Grid) Sinks() []Cell {
	out := make([]Cell, len(g.sinks))
	copy(out, g.sinks)

	return out
}

// IsSink reports whether c is a Sink cell.
func (g *Grid) IsSink(c Cell) bool { return g.Classify(c) == Sink }

// SourceState returns the Source cell facing InitialHeading.
func (g *Grid) SourceState() State {
	return State{Cell: g.source, Heading: InitialHeading}
}

// Neighbor returns the cell one step from c in heading h, and false when that
// cell is a Wall or lies outside the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(c Cell, h Heading) (Cell, bool) {
	n := c.Step(h)

	return n, g.Classify(n).Passable()
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// WithWalls returns a copy of g where every given Open cell becomes a Wall.
// Source, Sink, Wall and out-of-range cells are left unchanged, so the result
// is always a well-formed Grid.
func (g *Grid) WithWalls(cells ...Cell) *Grid {
	out := &Grid{
		rows:   g.rows,
		cols:   g.cols,
		kinds:  make([]Kind, len(g.kinds)),
		source: g.source,
		sinks:  g.Sinks(),
	}
	copy(out.kinds, g.kinds)
	for _, c := range cells {
		if g.Classify(c) == Open {
			out.kinds[g.Index(c)] = Wall
		}
	}

	return out
}

// OpenCells returns every Open cell in row-major order. Source and Sink are
// not included.
func (g *Grid) OpenCells() []Cell {
	var out []Cell
	for i, k := range g.kinds {
		if k == Open {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Package maze defines the lattice types shared by the grid and the search
// engine: cells, headings, rotations, cell kinds and search states.
package maze

import "fmt"

// Heading is one of the four cardinal directions.
type Heading uint8

const (
	// North points to decreasing Row.
	North Heading = iota
	// East points to increasing Col.
	East
	// South points to increasing Row.
	South
	// West points to decreasing Col.
	West
)

// NumHeadings is the size of the Heading domain.
const NumHeadings = 4

// InitialHeading is the heading the traveler faces on the Source cell.
const InitialHeading = East

// Headings lists every heading in declaration order.
var Headings = [NumHeadings]Heading{North, East, South, West}

var (
	clockwise        = [NumHeadings]Heading{North: East, East: South, South: West, West: North}
	counterClockwise = [NumHeadings]Heading{North: West, East: North, South: East, West: South}
	reverse          = [NumHeadings]Heading{North: South, East: West, South: North, West: East}
	// offsets holds {dRow, dCol} per heading.
	offsets     = [NumHeadings][2]int{North: {-1, 0}, East: {0, 1}, South: {1, 0}, West: {0, -1}}
	arrows      = [NumHeadings]rune{North: '^', East: '>', South: 'v', West: '<'}
	headingName = [NumHeadings]string{North: "North", East: "East", South: "South", West: "West"}
)

// Clockwise returns the heading after a 90° clockwise turn.
func (h Heading) Clockwise() Heading { return clockwise[h] }

// CounterClockwise returns the heading after a 90° counter-clockwise turn.
func (h Heading) CounterClockwise() Heading { return counterClockwise[h] }

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading { return reverse[h] }

// Rotate applies r to h.
func (h Heading) Rotate(r Rotation) Heading {
	if r == Clockwise {
		return clockwise[h]
	}

	return counterClockwise[h]
}

// Arrow returns the glyph used when drawing a route: ^ > v <.
func (h Heading) Arrow() rune { return arrows[h] }

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool { return h < NumHeadings }

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}

	return headingName[h]
}

// Rotation is a 90° turn in place.
type Rotation uint8

const (
	// Clockwise turns right.
	Clockwise Rotation = iota
	// CounterClockwise turns left.
	CounterClockwise
)

// Rotations lists both turn directions.
var Rotations = [2]Rotation{Clockwise, CounterClockwise}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	if r == Clockwise {
		return CounterClockwise
	}

	return Clockwise
}

func (r Rotation) String() string {
	if r == Clockwise {
		return "Clockwise"
	}

	return "CounterClockwise"
}

// Kind classifies a cell.
type Kind uint8

const (
	// Open is a walkable cell ('.').
	Open Kind = iota
	// Wall is a blocked cell ('#').
	Wall
	// Source is the single start cell ('S'). Walkable.
	Source
	// Sink is a goal cell ('E'). Walkable.
	Sink
	// OutOfBounds is returned for coordinates outside the rectangle.
	OutOfBounds
)

// Passable reports whether a traveler may stand on a cell of this kind.
func (k Kind) Passable() bool {
	return k == Open || k == Source || k == Sink
}

// Rune returns the input character for k, or '?' for OutOfBounds.
func (k Kind) Rune() rune {
	switch k {
	case Open:
		return '.'
	case Wall:
		return '#'
	case Source:
		return 'S'
	case Sink:
		return 'E'
	default:
		return '?'
	}
}

func (k Kind) String() string {
	switch k {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case Source:
		return "Source"
	case Sink:
		return "Sink"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KindOf maps an input character to its Kind.
func KindOf(ch rune) (Kind, bool) {
	switch ch {
	case '.':
		return Open, true
	case '#':
		return Wall, true
	case 'S':
		return Source, true
	case 'E':
		return Sink, true
	default:
		return OutOfBounds, false
	}
}

// Cell is a lattice coordinate. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// Step returns the adjacent cell in heading h. The result may be out of bounds.
func (c Cell) Step(h Heading) Cell {
	d := offsets[h]

	return Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
}

// Manhattan returns |ΔRow| + |ΔCol|.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// State is the unit of the search graph. Two visits to the same cell facing
// different headings are different states.
type State struct {
	Cell    Cell
	Heading Heading
}

func (s State) String() string {
	return fmt.Sprintf("%s%c", s.Cell, s.Heading.Arrow())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

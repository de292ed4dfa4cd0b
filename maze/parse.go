package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a maze in the character convention ('.' open, '#' wall,
// 'S' source, 'E' sink), one row per line. Carriage returns and trailing
// blank lines are ignored; a blank line between rows is a ragged row.
// Errors wrap ErrMalformedGrid (see NewGrid) or come from r itself.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Kind
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		row := make([]Kind, 0, len(text))
		for col, ch := range []rune(text) {
			k, ok := KindOf(ch)
			if !ok {
				return nil, malformed(ErrUnknownCell, "%q at line %d column %d", ch, line, col+1)
			}
			row = append(row, k)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading input: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return NewGrid(rows)
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString that panics on error. Intended for fixtures.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return g
}

package maze

import "errors"

var (
	// ErrMalformedGrid is the umbrella for every grid construction failure.
	ErrMalformedGrid = errors.New("maze: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoSource indicates no Source cell was found.
	ErrNoSource = errors.New("maze: grid has no source cell")
	// ErrDuplicateSource indicates more than one Source cell.
	ErrDuplicateSource = errors.New("maze: grid has more than one source cell")
	// ErrNoSink indicates no Sink cell was found.
	ErrNoSink = errors.New("maze: grid has no sink cell")
	// ErrUnknownCell indicates a character or Kind outside the cell convention.
	ErrUnknownCell = errors.New("maze: unknown cell")
)

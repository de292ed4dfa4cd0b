// Package maze models the directional maze: a rectangular grid of open and
// blocked cells with one Source and one or more Sinks, walked by a traveler
// that has both a position and a heading.
//
// What:
//
//   - Grid wraps a rectangular matrix of Kind values. It is immutable once built.
//   - Cell is a lattice coordinate (Row, Col); State pairs a Cell with a Heading.
//   - Heading rotation is a fixed lookup table, never computed arithmetically.
//   - Parse reads the character convention: '.' open, '#' wall, 'S' source, 'E' sink.
//
// Why:
//
//   - The search engine in package pathfind only needs O(1) classification and
//     neighbor lookups; keeping Grid passive makes it safe to share between searches.
//
// Complexity:
//
//   - NewGrid / Parse: O(W×H) time and memory.
//   - Classify, Neighbor, InBounds: O(1).
//   - WithWalls: O(W×H) (copy on write).
//
// Errors:
//
//   - ErrMalformedGrid wraps every construction failure, joined with one of
//     ErrEmptyGrid, ErrNonRectangular, ErrNoSource, ErrDuplicateSource,
//     ErrNoSink or ErrUnknownCell. Test with errors.Is.
package maze

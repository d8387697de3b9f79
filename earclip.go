// Ear clipping triangulation of simple polygons for Go.
//
// Given the vertices of a simple polygon in counterclockwise order, this
// package finds a set of diagonals that splits the polygon into triangles.
// Vertices are identified by their position in the input, and each diagonal is
// reported as a pair of those indices.
//
// The polygon is not validated. A clockwise or self-intersecting polygon may
// come back with a wrong answer, or fail with ErrInvariantViolated.
package earclip

import "github.com/osuushi/earclip/internal"

type Point = internal.Point
type Diagonal = internal.Diagonal
type Polygon = internal.Polygon
type Option = internal.Option

var (
	ErrInvalidInputSize  = internal.ErrInvalidInputSize
	ErrInvariantViolated = internal.ErrInvariantViolated
)

// Log clipping progress. Debug level logs each clipped ear, and trace level
// dumps the ring after each step.
var WithLogger = internal.WithLogger

// Triangulate a simple, counterclockwise polygon, returning the n-3 diagonals
// in the order they were found. A triangle has no diagonals.
//
// If no ear can be found partway through, the error wraps ErrInvariantViolated,
// and the diagonals found up to that point are returned along with it.
func Triangulate(points []Point, options ...Option) ([]Diagonal, error) {
	return internal.Triangulate(points, options...)
}

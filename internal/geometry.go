package internal

import "fmt"

// Geometric predicates used by the ear clipper. Everything here is pure and
// total.
//
// Coordinates are integers, so the doubled area of any triangle is an integer
// too. Orientation is still decided in floating point, and anything within 0.5
// of zero counts as collinear.

const orientationTolerance = 0.5

// Orientation of a point relative to a directed line.
type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

var orientationLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (o Orientation) String() string {
	if o > 1 || o < -1 {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLabels[int(o+1)]
}

// Twice the signed area of triangle abc, i.e. the cross product (b-a)x(c-a).
// Positive when a, b, c wind counterclockwise.
func SignedArea2(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Sign of SignedArea2, computed in floating point and snapped to Collinear
// within the tolerance.
func Orient(a, b, c Point) Orientation {
	area2 := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(c.X-a.X)*float64(b.Y-a.Y)
	switch {
	case area2 > orientationTolerance:
		return CounterClockwise
	case area2 < -orientationTolerance:
		return Clockwise
	}
	return Collinear
}

// Is c strictly left of the directed line a->b?
func IsLeft(a, b, c Point) bool {
	return Orient(a, b, c) > Collinear
}

// Is c left of or on the directed line a->b?
func IsLeftOrOn(a, b, c Point) bool {
	return Orient(a, b, c) >= Collinear
}

func IsCollinear(a, b, c Point) bool {
	return Orient(a, b, c) == Collinear
}

// Does c lie on the closed segment a-b? This catches the "touching" cases that
// a pure sign test misses, like a segment ending on another one:
/*
	    c
	   /
	a-----b
*/
// Betweenness is checked on x unless a-b is vertical, in which case y is used.
func IsBetween(a, b, c Point) bool {
	if !IsCollinear(a, b, c) {
		return false
	}

	if a.X != b.X {
		return (a.X <= c.X && c.X <= b.X) || (a.X >= c.X && c.X >= b.X)
	}
	return (a.Y <= c.Y && c.Y <= b.Y) || (a.Y >= c.Y && c.Y >= b.Y)
}

// Do the closed segments a-b and c-d intersect? Collinear overlap and an
// endpoint touching the other segment both count.
func SegmentsIntersect(a, b, c, d Point) bool {
	if IsCollinear(a, b, c) || IsCollinear(a, b, d) || IsCollinear(c, d, a) || IsCollinear(c, d, b) {
		return IsBetween(a, b, c) || IsBetween(a, b, d) || IsBetween(c, d, a) || IsBetween(c, d, b)
	}

	// Proper crossing: each segment separates the endpoints of the other
	return IsLeft(a, b, c) != IsLeft(a, b, d) && IsLeft(c, d, a) != IsLeft(c, d, b)
}

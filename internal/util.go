package internal

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Twice the signed area of the polygon, found by fanning triangles out from
// the first point. Positive for counterclockwise polygons.
//
// The triangulator never looks at this. It's here for fixtures and tests,
// which need to know the winding of a polygon before handing it over.
func (poly Polygon) Area2() int {
	sum := 0
	for i := 1; i+1 < len(poly.Points); i++ {
		sum += SignedArea2(poly.Points[0], poly.Points[i], poly.Points[i+1])
	}
	return sum
}

func (poly Polygon) IsCCW() bool {
	return poly.Area2() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.Area2() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Do the segments a-b and c-d share an endpoint index? Used when checking
// chords against edges, where touching at a shared vertex is never a crossing.
func sharesEndpoint(a, b, c, d int) bool {
	return a == c || a == d || b == c || b == d
}

package internal

// Does the segment a-b leave a into the interior of the polygon? This only
// looks at the cone formed by a's two neighbors, a0 and a1:
/*
	  a1
	 /
	a  interior is swept counterclockwise from a1 to a0
	 \
	  a0
*/
// For a convex vertex, b must be strictly inside the cone. For a reflex vertex
// the cone is more than a half plane, so it's easier to reject b when it falls
// in the complementary (convex) cone.
func (r *Ring) IsInterior(a, b int) bool {
	a0, a1 := r.Neighbors(a)
	pa, pb := r.Point(a), r.Point(b)
	pa0, pa1 := r.Point(a0), r.Point(a1)

	if IsLeftOrOn(pa, pa1, pa0) {
		return IsLeft(pa, pb, pa0) && IsLeft(pb, pa, pa1)
	}
	return !(IsLeftOrOn(pa, pb, pa1) && IsLeftOrOn(pb, pa, pa0))
}

// Is a-b a diagonal of the polygon as it currently stands? It has to point into
// the interior at both ends, and it can't cross any edge of the ring.
func (r *Ring) IsDiagonal(a, b int) bool {
	return r.IsInterior(a, b) && r.IsInterior(b, a) && !r.crossesAnyEdge(a, b)
}

// Check a-b against every edge (c, next(c)) of the ring. Edges incident to a or
// b are skipped, since sharing an endpoint is not a crossing.
func (r *Ring) crossesAnyEdge(a, b int) bool {
	pa, pb := r.Point(a), r.Point(b)
	for c := range r.Active(r.head) {
		c1 := r.Next(c)
		if sharesEndpoint(a, b, c, c1) {
			continue
		}
		if SegmentsIntersect(pa, pb, r.Point(c), r.Point(c1)) {
			return true
		}
	}
	return false
}

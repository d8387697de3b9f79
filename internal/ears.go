package internal

// A vertex is an ear when the chord joining its two neighbors is a diagonal.
// Clipping an ear leaves a simple polygon with one less vertex.
func (r *Ring) UpdateEar(v int) {
	prev, next := r.Neighbors(v)
	r.vertices[v].ear = r.IsDiagonal(prev, next)
}

// Classify every active vertex. This is quadratic, since each check scans all
// of the edges.
func (r *Ring) InitEars() {
	for v := range r.Active(r.head) {
		r.UpdateEar(v)
	}
}

// The first ear found walking forward from the head, or noVertex if there are
// none. When several vertices are ears, this order decides which one is
// clipped, and so which diagonals come out.
func (r *Ring) FindEar() int {
	for v := range r.Active(r.head) {
		if r.vertices[v].ear {
			return v
		}
	}
	return noVertex
}

package internal

import (
	"fmt"
	"iter"
	"strings"

	"github.com/logrusorgru/aurora"
)

// The ring is the polygon as it shrinks during ear clipping. Vertices live in a
// dense slice indexed by their input position, and the cyclic links are slice
// indices rather than pointers. Clipping a vertex only unlinks it and marks it
// removed; its slot stays put, so indices are stable for the whole run.

const noVertex = -1

type vertex struct {
	point   Point
	ear     bool
	removed bool
	// Links to the neighboring active vertices
	next, prev int
}

type Ring struct {
	vertices []vertex
	// Any active vertex. Traversals and ear searches start here.
	head int
	size int
}

func NewRing(points []Point) *Ring {
	r := &Ring{
		vertices: make([]vertex, 0, len(points)),
		head:     noVertex,
	}
	for _, p := range points {
		r.Add(p)
	}
	return r
}

// Insert a point just before the head, which is the end of the cycle. Returns
// the index of the new vertex.
func (r *Ring) Add(p Point) int {
	v := len(r.vertices)
	r.vertices = append(r.vertices, vertex{point: p})
	r.size++

	// First vertex links to itself until a second one arrives
	if r.head == noVertex {
		r.head = v
		r.vertices[v].next = v
		r.vertices[v].prev = v
		return v
	}

	/*
		last <-> head    becomes    last <-> v <-> head
	*/
	last := r.vertices[r.head].prev
	r.vertices[v].next = r.head
	r.vertices[v].prev = last
	r.vertices[r.head].prev = v
	r.vertices[last].next = v
	return v
}

// Number of active vertices
func (r *Ring) Len() int {
	return r.size
}

func (r *Ring) Head() int {
	return r.head
}

func (r *Ring) Point(v int) Point {
	return r.vertices[v].point
}

func (r *Ring) Next(v int) int {
	return r.vertices[v].next
}

func (r *Ring) Prev(v int) int {
	return r.vertices[v].prev
}

func (r *Ring) Neighbors(v int) (prev, next int) {
	return r.vertices[v].prev, r.vertices[v].next
}

func (r *Ring) IsEar(v int) bool {
	return r.vertices[v].ear
}

func (r *Ring) IsRemoved(v int) bool {
	return r.vertices[v].removed
}

// Unlink v and connect its neighbors directly. If v was the head, its
// successor takes over.
func (r *Ring) Remove(v int) {
	if r.vertices[v].removed {
		fatalf("vertex %d is already removed", v)
	}
	if r.size == 1 {
		fatalf("cannot remove the last vertex %d", v)
	}

	prev, next := r.Neighbors(v)
	r.vertices[prev].next = next
	r.vertices[next].prev = prev
	r.vertices[v].removed = true
	r.vertices[v].ear = false
	r.size--

	if r.head == v {
		r.head = next
	}
}

// Iterate over the active vertices by following next links from start until we
// get back to it. Each call walks the current links from scratch, so the
// sequence can be ranged over repeatedly as the ring changes.
func (r *Ring) Active(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if r.size == 0 {
			return
		}
		if r.vertices[start].removed {
			fatalf("cannot traverse from removed vertex %d", start)
		}
		v := start
		for {
			if !yield(v) {
				return
			}
			v = r.vertices[v].next
			if v == start {
				return
			}
		}
	}
}

// Debug dump of the active cycle from the head. Ears are green, everything else
// is red.
func (r *Ring) String() string {
	var parts []string
	for v := range r.Active(r.head) {
		p := r.vertices[v].point
		label := fmt.Sprintf("%d(%d,%d)", v, p.X, p.Y)
		if r.vertices[v].ear {
			parts = append(parts, aurora.Green(label).String())
		} else {
			parts = append(parts, aurora.Red(label).String())
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a set of diagonals triangulates a polygon. The rules are:
// 1. There are exactly n-3 diagonals.
// 2. No diagonal joins two vertices that are adjacent in the polygon, and no diagonal repeats.
// 3. No diagonal touches an original edge, except at a shared endpoint.
// 4. No two diagonals touch, except at a shared endpoint.
// 5. Edges and diagonals together form exactly n-2 triangles, all counterclockwise.
// 6. The sum of the areas of those triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon Polygon, diagonals []Diagonal) {
	t.Helper()
	require.True(t, polygon.IsCCW(), "polygon is not counterclockwise")

	points := polygon.Points
	n := len(points)
	require.Len(t, diagonals, n-3, "a triangulation has n-3 diagonals")

	edges := make(normalizedSegmentSet)
	for i := range points {
		edges.add(i, CircularIndex(i+1, n))
	}

	chords := make(normalizedSegmentSet)
	for _, d := range diagonals {
		require.False(t, edges.contains(d.From, d.To), "diagonal %v joins adjacent vertices", d)
		require.False(t, chords.contains(d.From, d.To), "diagonal %v is repeated", d)
		chords.add(d.From, d.To)

		for i := range points {
			j := CircularIndex(i+1, n)
			if sharesEndpoint(d.From, d.To, i, j) {
				continue
			}
			assert.False(t,
				SegmentsIntersect(points[d.From], points[d.To], points[i], points[j]),
				"diagonal %v touches edge %d-%d", d, i, j,
			)
		}
	}

	for i, d1 := range diagonals {
		for _, d2 := range diagonals[i+1:] {
			if sharesEndpoint(d1.From, d1.To, d2.From, d2.To) {
				continue
			}
			assert.False(t,
				SegmentsIntersect(points[d1.From], points[d1.To], points[d2.From], points[d2.To]),
				"diagonals %v and %v touch", d1, d2,
			)
		}
	}

	// Every triple that is pairwise connected is a triangle. In a valid
	// triangulation there are no other 3-cycles, since no vertex lies inside.
	connected := func(a, b int) bool {
		return edges.contains(a, b) || chords.contains(a, b)
	}
	triangleCount := 0
	triangleArea2 := 0
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !connected(a, b) {
				continue
			}
			for c := b + 1; c < n; c++ {
				if !connected(a, c) || !connected(b, c) {
					continue
				}
				triangleCount++
				area2 := SignedArea2(points[a], points[b], points[c])
				// a < b < c follows the polygon order, so it's CCW
				assert.Positive(t, area2, "triangle %d-%d-%d is not counterclockwise", a, b, c)
				triangleArea2 += area2
			}
		}
	}
	assert.Equal(t, n-2, triangleCount, "a triangulation has n-2 triangles")

	assert.InDelta(t, polygonArea(polygon), float64(triangleArea2)/2, 1e-6,
		"sum of the areas of all triangles is equal to the area of the polygon")
}

func polygonArea(polygon Polygon) float64 {
	ring := make(orb.Ring, 0, len(polygon.Points)+1)
	for _, p := range polygon.Points {
		ring = append(ring, orb.Point{float64(p.X), float64(p.Y)})
	}
	ring = append(ring, ring[0])
	return math.Abs(planar.Area(orb.Polygon{ring}))
}

// An undirected edge between two vertex indices, smaller index first
type normalizedSegment struct {
	lower, upper int
}

func newNormalizedSegment(a, b int) normalizedSegment {
	if a < b {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b int) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b int) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

package internal

// Points are values, not pointers. Vertices are identified by their position
// in the input, so nothing ever needs to compare points by identity.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type Polygon struct {
	Points []Point
}

// A diagonal added during ear clipping, reported as the input indices of its
// endpoints. From is the clipped ear's predecessor and To its successor at the
// time of clipping.
type Diagonal struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

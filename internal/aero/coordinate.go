package aero

import "fmt"

// Coordinate is a position in the rocket body frame. X runs along the
// axis from the nose tip towards the tail.
type Coordinate struct {
	X, Y, Z float64
}

var CoordinateNul = Coordinate{}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Average returns the plain arithmetic midpoint of the two coordinates.
// The aggregate CP is built by applying this pairwise in traversal order;
// the result is intentionally not force-weighted, for compatibility with
// reference output.
func (c Coordinate) Average(o Coordinate) Coordinate {
	return Coordinate{(c.X + o.X) / 2, (c.Y + o.Y) / 2, (c.Z + o.Z) / 2}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f,%.4f,%.4f)", c.X, c.Y, c.Z)
}

package grid

import "fmt"

// Topology selects the tiling of a grid.
type Topology int

const (
	// Square tiles the plane with squares; every cell has 8 neighbors (diagonals included).
	Square Topology = iota
	// FlatHex tiles the plane with flat-top hexagons; odd columns are shifted
	// half a cell down and every cell has 6 neighbors.
	FlatHex
)

// String implements fmt.Stringer.
func (t Topology) String() string {
	switch t {
	case Square:
		return "square"
	case FlatHex:
		return "flat-hex"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Valid reports whether t is one of the implemented topologies.
func (t Topology) Valid() bool {
	return t == Square || t == FlatHex
}

// Period returns the number of discrete rotation steps in a full turn:
// 4 for Square (90°), 6 for FlatHex (60°). Unknown topologies return 0.
func (t Topology) Period() int {
	switch t {
	case Square:
		return 4
	case FlatHex:
		return 6
	default:
		return 0
	}
}

// Coord is a cell position in offset coordinates.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Add returns the component-wise sum c+d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the component-wise difference c-d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// Coord3 is a cell position with an altitude.
type Coord3 struct {
	X, Y, Z int
}

// Flat drops the altitude.
func (c Coord3) Flat() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// AltitudeRange is the closed altitude band [Min, Max] covered by a cell of a 3D shape.
type AltitudeRange struct {
	Min, Max int
}

// Contains reports whether z lies within the band.
func (r AltitudeRange) Contains(z int) bool {
	return r.Min <= z && z <= r.Max
}

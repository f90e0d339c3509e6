package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// cube is a FlatHex cell in cube coordinates. The invariant xu+yu+zu == 0
// is enforced by newCube and preserved by every operation below.
type cube struct {
	xu, yu, zu int
}

// newCube returns the cube coordinate (xu, yu, zu).
// Returns ErrInvalidCoordinate if the components do not sum to zero.
func newCube(xu, yu, zu int) (cube, error) {
	if xu+yu+zu != 0 {
		return cube{}, fmt.Errorf("%w: cube (%d,%d,%d) does not sum to zero", ErrInvalidCoordinate, xu, yu, zu)
	}
	return cube{xu: xu, yu: yu, zu: zu}, nil
}

// offsetToCube converts offset (x, y) to cube coordinates.
// The column becomes zu; odd columns are shifted half a cell down.
func offsetToCube(c Coord) cube {
	zu := c.X
	xu := c.Y - (c.X-parity(c.X))/2
	return cube{xu: xu, yu: -xu - zu, zu: zu}
}

// toOffset converts back to offset coordinates.
func (u cube) toOffset() Coord {
	return Coord{X: u.zu, Y: u.xu + (u.zu-parity(u.zu))/2}
}

func (u cube) sub(v cube) cube {
	return cube{xu: u.xu - v.xu, yu: u.yu - v.yu, zu: u.zu - v.zu}
}

func (u cube) add(v cube) cube {
	return cube{xu: u.xu + v.xu, yu: u.yu + v.yu, zu: u.zu + v.zu}
}

// rotate60 turns the vector u by one 60° step.
func (u cube) rotate60() cube {
	return cube{xu: -u.zu, yu: -u.xu, zu: -u.yu}
}

func (u cube) vec() r3.Vec {
	return r3.Vec{X: float64(u.xu), Y: float64(u.yu), Z: float64(u.zu)}
}

// cubeDistance is the hex step count between u and v.
func cubeDistance(u, v cube) int {
	d := u.sub(v)
	return max(abs(d.xu), abs(d.yu), abs(d.zu))
}

// cubeRound snaps a fractional cube position to the nearest cell.
// Halves round to even; the component with the largest rounding error is
// recomputed from the other two so that the sum stays zero.
func cubeRound(p r3.Vec) (cube, error) {
	rx, ry, rz := math.RoundToEven(p.X), math.RoundToEven(p.Y), math.RoundToEven(p.Z)
	dx, dy, dz := math.Abs(rx-p.X), math.Abs(ry-p.Y), math.Abs(rz-p.Z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return newCube(int(rx), int(ry), int(rz))
}

package grid

import "fmt"

// Neighbor offsets, clockwise from north. FlatHex offsets depend on the
// column parity because odd columns sit half a cell lower.
var (
	squareOffsets = [8]Coord{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	hexEvenOffsets = [6]Coord{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}}
	hexOddOffsets  = [6]Coord{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
)

// check returns ErrUnknownTopology for values outside {Square, FlatHex}.
func (t Topology) check() error {
	if !t.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownTopology, t)
	}
	return nil
}

// Neighbors returns the cells adjacent to (x, y): 8 on Square grids,
// 6 on FlatHex grids. The result is not bounded by any grid; use
// Grid.Neighbors for the filtered variant. Unknown topologies yield nil.
// Complexity: O(1).
func (t Topology) Neighbors(x, y int) []Coord {
	var offsets []Coord
	switch t {
	case Square:
		offsets = squareOffsets[:]
	case FlatHex:
		if parity(x) == 0 {
			offsets = hexEvenOffsets[:]
		} else {
			offsets = hexOddOffsets[:]
		}
	default:
		return nil
	}
	out := make([]Coord, len(offsets))
	for i, d := range offsets {
		out[i] = Coord{X: x + d.X, Y: y + d.Y}
	}
	return out
}

// Distance returns the number of adjacency steps between a and b:
// the Chebyshev distance on Square grids, the cube distance on FlatHex grids.
// Unknown topologies yield -1.
func (t Topology) Distance(a, b Coord) int {
	switch t {
	case Square:
		return max(abs(a.X-b.X), abs(a.Y-b.Y))
	case FlatHex:
		return cubeDistance(offsetToCube(a), offsetToCube(b))
	default:
		return -1
	}
}

// Rotate turns every coordinate about center by the given number of
// discrete steps: 90° per step on Square grids ((dx, dy) -> (dy, -dx)),
// 60° per step on FlatHex grids. Negative steps turn the other way.
// When rotations is a multiple of the period, or coords is exactly
// [center], a copy of coords is returned unchanged.
// Complexity: O(n·k), k = rotations mod period.
func (t Topology) Rotate(center Coord, coords []Coord, rotations int) ([]Coord, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	period := t.Period()
	steps := ((rotations % period) + period) % period
	out := make([]Coord, len(coords))
	copy(out, coords)
	if steps == 0 || (len(coords) == 1 && coords[0] == center) {
		return out, nil
	}

	if t == Square {
		for i, c := range coords {
			d := c.Sub(center)
			for range steps {
				d = Coord{X: d.Y, Y: -d.X}
			}
			out[i] = center.Add(d)
		}
		return out, nil
	}

	origin := offsetToCube(center)
	for i, c := range coords {
		d := offsetToCube(c).sub(origin)
		for range steps {
			d = d.rotate60()
		}
		out[i] = origin.add(d).toOffset()
	}
	return out, nil
}

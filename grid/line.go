package grid

import "fmt"

// Line rasterises the segment between (x1, y1) and (x2, y2), endpoints
// included, with an incremental-error (Bresenham-family) walk adapted to
// the topology. Consecutive cells are always adjacent. The set of cells is
// the same whichever endpoint comes first.
// Returns ErrRasterization if the walk overshoots or exceeds
// |x2-x1|+|y2-y1|+1 cells.
// Complexity: O(|dx|+|dy|).
func (t Topology) Line(x1, y1, x2, y2 int) ([]Coord, error) {
	switch t {
	case Square:
		return squareLine(x1, y1, x2, y2), nil
	case FlatHex:
		return hexLine(x1, y1, x2, y2)
	default:
		return nil, t.check()
	}
}

// squareLine walks the major axis one cell at a time. Steep segments are
// mirrored on the diagonal and right-to-left segments are walked
// left-to-right then reversed, so both directions produce the same cells.
// The error term err/dx is kept as an exact fraction.
func squareLine(x1, y1, x2, y2 int) []Coord {
	if x1 == x2 && y1 == y2 {
		return []Coord{{x1, y1}}
	}

	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1, x2, y2 = y1, x1, y2, x2
	}
	reversed := x1 > x2
	if reversed {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy := x2-x1, abs(y2-y1)
	step := 1
	if y2 < y1 {
		step = -1
	}

	out := make([]Coord, 0, dx+1)
	y, err := y1, 0
	for x := x1; x <= x2; x++ {
		if steep {
			out = append(out, Coord{y, x})
		} else {
			out = append(out, Coord{x, y})
		}
		// offset > 0.5 <=> 2·err > dx
		err += dy
		if 2*err > dx {
			y += step
			err -= dx
		}
	}

	if reversed {
		reverse(out)
	}
	return out
}

// hexLine walks a FlatHex segment from its left endpoint. Segments steeper
// than the hex diagonals take straight vertical steps mixed with diagonal
// ones; shallower segments zig-zag across columns, each step moving half a
// cell up or down. Error terms are scaled to integers.
func hexLine(x1, y1, x2, y2 int) ([]Coord, error) {
	if x1 == x2 && y1 == y2 {
		return []Coord{{x1, y1}}, nil
	}
	bound := abs(x2-x1) + abs(y2-y1) + 1

	reversed := x1 > x2
	if reversed {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	var (
		out []Coord
		err error
	)
	if x2-x1 < 2*abs(y2-y1)+parity(x2) {
		out, err = hexLineVertical(x1, y1, x2, y2, bound)
	} else {
		out, err = hexLineHorizontal(x1, y1, x2, y2, bound)
	}
	if err != nil {
		return nil, err
	}

	if reversed {
		reverse(out)
	}
	return out, nil
}

// hexLineVertical handles segments within 30° of the vertical axis.
// With dy the visual height (half-cell precision) and 1.5·dx the visual
// width, the fractional error grows by dx/(2·dy) per half step; here it is
// scaled by 2·m, where m = 2·dy.
func hexLineVertical(x1, y1, x2, y2, bound int) ([]Coord, error) {
	dir := 1
	if y2 < y1 {
		dir = -1
	}
	m := 2 * dir * (y2 - y1)
	if parity(x1+x2) == 1 {
		if parity(x1) == 0 {
			m += dir
		} else {
			m -= dir
		}
	}
	inc := 3 * (x2 - x1)

	out := make([]Coord, 0, bound)
	x, y := x1, y1
	out = append(out, Coord{x, y})
	offset := 0
	for x != x2 || y != y2 {
		offset += inc
		if offset <= m {
			y += dir
			offset += inc
		} else {
			// moving right keeps the row when it lowers us by half a cell
			// in the walking direction, otherwise the row changes too
			if (parity(x) == 0 && dir == 1) || (parity(x) == 1 && dir == -1) {
				x++
			} else {
				x++
				y += dir
			}
			offset -= 3 * m
		}
		out = append(out, Coord{x, y})

		if dir*y > dir*y2 || x > x2 || len(out) > bound {
			return nil, fmt.Errorf("%w: hex line (%d,%d)-(%d,%d)", ErrRasterization, x1, y1, x2, y2)
		}
	}
	return out, nil
}

// hexLineHorizontal handles segments within 60° of the horizontal axis.
// Every step moves one column right and half a cell up or down; the error
// dy/dx per column is scaled by 2·dx.
func hexLineHorizontal(x1, y1, x2, y2, bound int) ([]Coord, error) {
	dx := x2 - x1
	n := 2 * (y2 - y1)
	if parity(x1+x2) == 1 {
		if parity(x1) == 0 {
			n++
		} else {
			n--
		}
	}

	out := make([]Coord, 0, bound)
	x, y := x1, y1
	out = append(out, Coord{x, y})
	d := 0
	for x != x2 || y != y2 {
		d += n
		if d > 0 {
			// half a cell down
			if parity(x) == 1 {
				y++
			}
			d -= dx
		} else {
			// half a cell up
			if parity(x) == 0 {
				y--
			}
			d += dx
		}
		x++
		out = append(out, Coord{x, y})

		if x > x2 || len(out) > bound {
			return nil, fmt.Errorf("%w: hex line (%d,%d)-(%d,%d)", ErrRasterization, x1, y1, x2, y2)
		}
	}
	return out, nil
}

func reverse(coords []Coord) {
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}
}

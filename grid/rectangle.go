package grid

// Rectangle returns every cell of the axis-aligned box with corners
// (x1, y1) and (x2, y2), in column-major order (x, then y).
// The corners may be given in any order.
// Complexity: O(W×H).
func Rectangle(x1, y1, x2, y2 int) []Coord {
	lo, hi, _ := BoundingRect(Coord{x1, y1}, Coord{x2, y2})
	out := make([]Coord, 0, (hi.X-lo.X+1)*(hi.Y-lo.Y+1))
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			out = append(out, Coord{x, y})
		}
	}
	return out
}

// HollowRectangle returns the perimeter cells of the axis-aligned box with
// corners (x1, y1) and (x2, y2): top side, bottom side, left side, right
// side, each cell listed once. Degenerate boxes collapse to a line or a
// single cell.
// Complexity: O(W+H).
func HollowRectangle(x1, y1, x2, y2 int) []Coord {
	lo, hi, _ := BoundingRect(Coord{x1, y1}, Coord{x2, y2})
	out := make([]Coord, 0, 2*(hi.X-lo.X+1)+2*(hi.Y-lo.Y+1))
	for x := lo.X; x <= hi.X; x++ {
		out = append(out, Coord{x, lo.Y})
	}
	for x := lo.X; x <= hi.X; x++ {
		out = append(out, Coord{x, hi.Y})
	}
	for y := lo.Y; y <= hi.Y; y++ {
		out = append(out, Coord{lo.X, y})
	}
	for y := lo.Y; y <= hi.Y; y++ {
		out = append(out, Coord{hi.X, y})
	}
	return dedupe(out)
}

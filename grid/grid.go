package grid

import "fmt"

// Grid is a width×height board of cells with a fixed topology.
// Dimensions may change through SetWidth and SetHeight, which keep them
// strictly positive. A Grid is not safe for concurrent mutation.
type Grid struct {
	width, height int
	topology      Topology
}

// New constructs a Grid.
// Returns ErrInvalidDimension if width or height is not strictly positive,
// ErrUnknownTopology if topology is not Square or FlatHex.
func New(width, height int, topology Topology) (*Grid, error) {
	if err := topology.check(); err != nil {
		return nil, err
	}
	g := &Grid{topology: topology}
	if err := g.SetWidth(width); err != nil {
		return nil, err
	}
	if err := g.SetHeight(height); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Topology returns the grid's tiling.
func (g *Grid) Topology() Topology { return g.topology }

// SetWidth changes the number of columns.
// Returns ErrInvalidDimension, leaving the grid unchanged, if width <= 0.
func (g *Grid) SetWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidDimension, width)
	}
	g.width = width
	return nil
}

// SetHeight changes the number of rows.
// Returns ErrInvalidDimension, leaving the grid unchanged, if height <= 0.
func (g *Grid) SetHeight(height int) error {
	if height <= 0 {
		return fmt.Errorf("%w: height %d", ErrInvalidDimension, height)
	}
	g.height = height
	return nil
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return g.width * g.height
}

// Contains reports whether (x, y) lies within [0, width)×[0, height).
// Complexity: O(1).
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cells returns every coordinate of the grid, column by column.
func (g *Grid) Cells() []Coord {
	return Rectangle(0, 0, g.width-1, g.height-1)
}

// Neighbors returns the cells adjacent to (x, y) that lie on the grid.
func (g *Grid) Neighbors(x, y int) []Coord {
	all := g.topology.Neighbors(x, y)
	out := all[:0]
	for _, c := range all {
		if g.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return out
}

// Flood runs Topology.Flood restricted to the grid's cells. The start cell
// is kept even when it lies off the grid. Options given by the caller
// are applied after the grid adjacency and may replace it.
func (g *Grid) Flood(start Coord, opts ...FloodOption) (*FloodResult, error) {
	adj := WithNeighbors(func(c Coord) []Coord { return g.Neighbors(c.X, c.Y) })
	return g.topology.Flood(start, append([]FloodOption{adj}, opts...)...)
}

// Zone returns the cells within radius adjacency steps of (x, y),
// expanding only through on-grid cells. As with Flood, (x, y) itself is
// kept even when it lies off the grid.
// Returns ErrInvalidRadius for a negative radius.
func (g *Grid) Zone(x, y, radius int) (CoordSet, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	res, err := g.Flood(Coord{x, y}, WithMaxDepth(radius))
	if err != nil {
		return nil, err
	}
	return res.Set(), nil
}

// Line rasterises a segment with the grid's topology. Cells are not clipped.
func (g *Grid) Line(x1, y1, x2, y2 int) ([]Coord, error) {
	return g.topology.Line(x1, y1, x2, y2)
}

// Triangle rasterises a sector with the grid's topology. Cells are not clipped.
func (g *Grid) Triangle(xa, ya, xh, yh int, factor float64) ([]Coord, error) {
	return g.topology.Triangle(xa, ya, xh, yh, factor)
}

// Rotate turns coords about center with the grid's topology.
func (g *Grid) Rotate(center Coord, coords []Coord, rotations int) ([]Coord, error) {
	return g.topology.Rotate(center, coords, rotations)
}

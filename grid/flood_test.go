package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/grid"
)

func TestZone_RadiusZero(t *testing.T) {
	for _, topo := range topologies {
		z, err := topo.Zone(4, -2, 0)
		require.NoError(t, err)
		assert.Equal(t, []grid.Coord{{4, -2}}, z.Sorted(), "%v", topo)
	}
}

// TestZone_Sizes checks the cell count of graph-distance balls:
// (2r+1)² on Square, 3r(r+1)+1 on FlatHex.
func TestZone_Sizes(t *testing.T) {
	for r := 0; r <= 4; r++ {
		sq, err := grid.Square.Zone(0, 0, r)
		require.NoError(t, err)
		assert.Equal(t, (2*r+1)*(2*r+1), sq.Len(), "square r=%d", r)

		for _, x := range []int{0, 1} {
			hex, err := grid.FlatHex.Zone(x, 0, r)
			require.NoError(t, err)
			assert.Equal(t, 3*r*(r+1)+1, hex.Len(), "hex x=%d r=%d", x, r)
		}
	}
}

// TestZone_Monotonic verifies zone(r) ⊆ zone(r+1) and that every cell is
// within r steps of the center.
func TestZone_Monotonic(t *testing.T) {
	center := grid.C(3, 2)
	for _, topo := range topologies {
		prev, err := topo.Zone(center.X, center.Y, 0)
		require.NoError(t, err)
		for r := 1; r <= 4; r++ {
			z, err := topo.Zone(center.X, center.Y, r)
			require.NoError(t, err)
			assert.Empty(t, prev.Difference(z).Sorted(), "%v: zone(%d) not a superset", topo, r)
			for c := range z {
				assert.LessOrEqual(t, topo.Distance(center, c), r)
			}
			prev = z
		}
	}
}

func TestZone_InvalidRadius(t *testing.T) {
	_, err := grid.FlatHex.Zone(0, 0, -1)
	assert.ErrorIs(t, err, grid.ErrInvalidRadius)

	_, err = grid.Topology(6).Zone(0, 0, 1)
	assert.ErrorIs(t, err, grid.ErrUnknownTopology)
}

//----------------------------------------------------------------------------//
// Flood
//----------------------------------------------------------------------------//

func TestFlood_DepthAndOrder(t *testing.T) {
	res, err := grid.Square.Flood(grid.C(0, 0), grid.WithMaxDepth(1))
	require.NoError(t, err)
	require.Len(t, res.Order, 9)
	assert.Equal(t, grid.C(0, 0), res.Order[0])
	assert.Equal(t, 0, res.Depth[grid.C(0, 0)])
	assert.Equal(t, 1, res.Depth[grid.C(1, 1)])
}

// TestFlood_Accept bounds an otherwise infinite flood with a predicate:
// only cells in the strip 0 <= y <= 1, 0 <= x <= 4 are accepted.
func TestFlood_Accept(t *testing.T) {
	inStrip := func(c grid.Coord) bool { return c.X >= 0 && c.X <= 4 && c.Y >= 0 && c.Y <= 1 }
	calls := map[grid.Coord]int{}
	res, err := grid.Square.Flood(grid.C(0, 0), grid.WithAccept(func(c grid.Coord) bool {
		calls[c]++
		return inStrip(c)
	}))
	require.NoError(t, err)
	assert.Equal(t, 10, res.Set().Len())
	for c, n := range calls {
		assert.Equal(t, 1, n, "predicate asked %d times about %v", n, c)
	}
}

func TestFlood_CustomNeighbors(t *testing.T) {
	// 4-connectivity on a 3x3 board
	g, err := grid.New(3, 3, grid.Square)
	require.NoError(t, err)
	orth := func(c grid.Coord) []grid.Coord {
		var out []grid.Coord
		for _, d := range []grid.Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := c.Add(d)
			if g.Contains(n.X, n.Y) {
				out = append(out, n)
			}
		}
		return out
	}
	res, err := g.Flood(grid.C(0, 0), grid.WithNeighbors(orth), grid.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{0, 0}, {1, 0}, {0, 1}}, res.Set().Sorted())
}

func TestFlood_Errors(t *testing.T) {
	_, err := grid.Square.Flood(grid.C(0, 0), grid.WithMaxDepth(-2))
	assert.ErrorIs(t, err, grid.ErrOptionViolation)

	stop := errors.New("stop")
	res, err := grid.FlatHex.Flood(grid.C(0, 0), grid.WithMaxDepth(3), grid.WithOnVisit(func(c grid.Coord, depth int) error {
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, "OnVisit error")
	assert.Len(t, res.Order, 2)
}

package pencil_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/internal/logging"
	"github.com/katalvlaran/tilegrid/pencil"
)

func newGrid(t *testing.T, topo grid.Topology) *grid.Grid {
	t.Helper()
	g, err := grid.New(10, 10, topo)
	require.NoError(t, err)
	return g
}

func TestConstructors_Errors(t *testing.T) {
	_, err := pencil.NewLinePencil(nil)
	assert.ErrorIs(t, err, pencil.ErrNilGrid)
	_, err = pencil.NewSimplePencil(nil)
	assert.ErrorIs(t, err, pencil.ErrNilGrid)
	_, err = pencil.NewPaintPotPencil(nil)
	assert.ErrorIs(t, err, pencil.ErrNilGrid)

	g := newGrid(t, grid.Square)
	for _, n := range []int{0, -3} {
		_, err = pencil.NewLinePencil(g, pencil.WithSize(n))
		assert.ErrorIs(t, err, grid.ErrInvalidDimension, "size %d", n)
	}
}

func TestPencil_NotStarted(t *testing.T) {
	g := newGrid(t, grid.Square)
	lp, err := pencil.NewLinePencil(g)
	require.NoError(t, err)
	sp, err := pencil.NewSimplePencil(g)
	require.NoError(t, err)
	pp, err := pencil.NewPaintPotPencil(g)
	require.NoError(t, err)

	for _, p := range []pencil.Pencil{lp, sp, pp} {
		assert.False(t, p.Started())
		_, ok := p.Origin()
		assert.False(t, ok)
		_, ok = p.Position()
		assert.False(t, ok)
		assert.ErrorIs(t, p.Update(1, 1), pencil.ErrNotStarted)
		assert.Empty(t, p.Selection())
		assert.Empty(t, p.Added())
		assert.Empty(t, p.Removed())
	}
}

func TestLinePencil_Draw(t *testing.T) {
	p, err := pencil.NewLinePencil(newGrid(t, grid.Square))
	require.NoError(t, err)

	require.NoError(t, p.Start(0, 0))
	assert.True(t, p.Started())
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}}, p.Selection())
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}}, p.Added())

	require.NoError(t, p.Update(3, 0))
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, p.Selection())
	assert.Equal(t, []grid.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, p.Added())
	assert.Empty(t, p.Removed())

	// retracting the free end releases the far cells
	require.NoError(t, p.Update(1, 0))
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, p.Selection())
	assert.Empty(t, p.Added())
	assert.Equal(t, []grid.Coord{{X: 2, Y: 0}, {X: 3, Y: 0}}, p.Removed())

	pos, ok := p.Position()
	require.True(t, ok)
	assert.Equal(t, grid.C(1, 0), pos)
	origin, _ := p.Origin()
	assert.Equal(t, grid.C(0, 0), origin)
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 0}}, p.History())

	assert.ErrorIs(t, p.Start(4, 4), pencil.ErrAlreadyStarted)
	origin, _ = p.Origin()
	assert.Equal(t, grid.C(0, 0), origin)
}

func TestLinePencil_VisitedIsNoop(t *testing.T) {
	p, err := pencil.NewLinePencil(newGrid(t, grid.Square))
	require.NoError(t, err)
	require.NoError(t, p.Start(0, 0))
	require.NoError(t, p.Update(3, 0))
	require.NoError(t, p.Update(1, 0))

	// (3,0) was already visited: nothing changes
	require.NoError(t, p.Update(3, 0))
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, p.Selection())
	assert.Equal(t, []grid.Coord{{X: 2, Y: 0}, {X: 3, Y: 0}}, p.Removed())
	pos, _ := p.Position()
	assert.Equal(t, grid.C(1, 0), pos)
}

func TestLinePencil_Thick(t *testing.T) {
	p, err := pencil.NewLinePencil(newGrid(t, grid.FlatHex), pencil.WithSize(2))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Size())

	require.NoError(t, p.Start(2, 2))
	assert.Equal(t, []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}}, p.Selection())
}

// TestLinePencil_DeltaInvariants drags the pencil around and checks that
// each step's delta is consistent with the selection it produced.
func TestLinePencil_DeltaInvariants(t *testing.T) {
	path := []grid.Coord{{X: 4, Y: 4}, {X: 7, Y: 5}, {X: 1, Y: 9}, {X: 0, Y: 2}, {X: 5, Y: 5}, {X: 9, Y: 0}, {X: 4, Y: 3}}
	for _, topo := range []grid.Topology{grid.Square, grid.FlatHex} {
		p, err := pencil.NewLinePencil(newGrid(t, topo), pencil.WithSize(2))
		require.NoError(t, err)
		require.NoError(t, p.Start(4, 4))

		prev := grid.NewCoordSet(p.Selection()...)
		for _, c := range path[1:] {
			require.NoError(t, p.Update(c.X, c.Y))
			sel := grid.NewCoordSet(p.Selection()...)
			added := grid.NewCoordSet(p.Added()...)
			removed := grid.NewCoordSet(p.Removed()...)

			assert.Zero(t, added.Intersect(removed).Len(), "%v %v", topo, c)
			assert.Equal(t, sel, prev.Difference(removed).Union(added), "%v %v", topo, c)
			assert.True(t, sel.Has(c))
			prev = sel
		}
	}
}

func TestSimplePencil_Paint(t *testing.T) {
	p, err := pencil.NewSimplePencil(newGrid(t, grid.Square))
	require.NoError(t, err)

	require.NoError(t, p.Start(0, 0))
	require.NoError(t, p.Update(1, 0))
	assert.Equal(t, []grid.Coord{{X: 1, Y: 0}}, p.Added())

	// going back over painted ground is ignored
	require.NoError(t, p.Update(0, 0))
	pos, _ := p.Position()
	assert.Equal(t, grid.C(1, 0), pos)
	assert.Equal(t, []grid.Coord{{X: 1, Y: 0}}, p.Added())

	require.Error(t, p.SetSize(0))
	require.NoError(t, p.SetSize(2))
	require.NoError(t, p.Update(5, 5))
	assert.Len(t, p.Added(), 9)
	assert.Len(t, p.Selection(), 11)
	assert.Empty(t, p.Removed())

	// overlapping brush only adds what is new
	require.NoError(t, p.Update(6, 5))
	assert.Equal(t, []grid.Coord{{X: 7, Y: 4}, {X: 7, Y: 5}, {X: 7, Y: 6}}, p.Added())
	assert.Empty(t, p.Removed())
	assert.ErrorIs(t, p.Start(0, 0), pencil.ErrAlreadyStarted)
}

func TestPaintPotPencil_Fill(t *testing.T) {
	g := newGrid(t, grid.Square)
	p, err := pencil.NewPaintPotPencil(g)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Start(0, 0, nil), pencil.ErrNilPredicate)
	assert.False(t, p.Started())

	leftStrip := func(_, c grid.Coord) bool { return c.X < 2 }
	require.NoError(t, p.Start(0, 0, leftStrip))
	assert.Len(t, p.Selection(), 20)
	assert.Equal(t, p.Selection(), p.Added())
	assert.Empty(t, p.Removed())
	for _, c := range p.Selection() {
		assert.Less(t, c.X, 2)
	}

	// the fill is a snapshot
	require.NoError(t, p.Update(8, 8))
	assert.Len(t, p.Selection(), 20)
	pos, _ := p.Position()
	assert.Equal(t, grid.C(0, 0), pos)

	assert.ErrorIs(t, p.Start(5, 5, leftStrip), pencil.ErrAlreadyStarted)
}

func TestPaintPotPencil_OriginAlwaysSelected(t *testing.T) {
	for _, topo := range []grid.Topology{grid.Square, grid.FlatHex} {
		p, err := pencil.NewPaintPotPencil(newGrid(t, topo))
		require.NoError(t, err)
		require.NoError(t, p.Start(3, 3, func(_, _ grid.Coord) bool { return false }))
		assert.Equal(t, []grid.Coord{{X: 3, Y: 3}}, p.Selection())
	}
}

func TestPaintPotPencil_StaysOnGrid(t *testing.T) {
	g, err := grid.New(4, 3, grid.FlatHex)
	require.NoError(t, err)
	p, err := pencil.NewPaintPotPencil(g)
	require.NoError(t, err)

	require.NoError(t, p.Start(1, 1, func(_, _ grid.Coord) bool { return true }))
	assert.Equal(t, g.Len(), len(p.Selection()))
	for _, c := range p.Selection() {
		assert.True(t, g.Contains(c.X, c.Y), "%v", c)
	}
}

func TestPencil_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, slog.LevelDebug)
	p, err := pencil.NewLinePencil(newGrid(t, grid.Square), pencil.WithLogger(log))
	require.NoError(t, err)

	require.NoError(t, p.Start(1, 1))
	require.NoError(t, p.Update(2, 2))
	out := buf.String()
	assert.Contains(t, out, `msg="pencil start" kind=line origin=1,1 size=1`)
	assert.Contains(t, out, `msg="pencil update" kind=line position=2,2 added=1 removed=0 selection=2`)

	// a nil logger keeps the default
	_, err = pencil.NewLinePencil(newGrid(t, grid.Square), pencil.WithLogger(nil))
	assert.NoError(t, err)
}

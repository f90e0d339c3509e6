package pencil

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tilegrid/grid"
)

// Pencil is the behaviour shared by every pencil. Start takes different
// arguments per variant and is therefore not part of the interface.
type Pencil interface {
	// Update moves the pencil to (x, y) and recomputes the selection.
	Update(x, y int) error
	// Started reports whether Start succeeded.
	Started() bool
	// Origin returns the Start position.
	Origin() (grid.Coord, bool)
	// Position returns the last effective position.
	Position() (grid.Coord, bool)
	// Size returns the brush size.
	Size() int
	// SetSize changes the brush size for the following updates.
	SetSize(n int) error
	// Selection returns the selected cells in row-major order.
	Selection() []grid.Coord
	// Added returns the cells added by the last effective update.
	Added() []grid.Coord
	// Removed returns the cells removed by the last effective update.
	Removed() []grid.Coord
}

// delta is the outcome of a variant's recomputation for a new position.
type delta struct {
	selection, added, removed grid.CoordSet
}

// recomputeFunc derives the next selection for position pos.
type recomputeFunc func(pos grid.Coord) (delta, error)

// base holds the state common to all pencils.
type base struct {
	kind string
	grid *grid.Grid
	log  *slog.Logger
	size int

	started     bool
	origin      grid.Coord
	hasPosition bool
	position    grid.Coord

	history []grid.Coord  // positions since Start, in order
	visited grid.CoordSet // membership index over history

	selection grid.CoordSet
	added     grid.CoordSet
	removed   grid.CoordSet
}

func newBase(kind string, g *grid.Grid, opts []Option) (base, error) {
	if g == nil {
		return base{}, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return base{}, o.err
	}
	return base{
		kind:      kind,
		grid:      g,
		log:       o.Logger,
		size:      o.Size,
		visited:   grid.NewCoordSet(),
		selection: grid.NewCoordSet(),
		added:     grid.NewCoordSet(),
		removed:   grid.NewCoordSet(),
	}, nil
}

// start sets the origin and runs the first update.
func (b *base) start(x0, y0 int, recompute recomputeFunc) error {
	if b.selection.Len() > 0 {
		return fmt.Errorf("%w: %s pencil at %v", ErrAlreadyStarted, b.kind, b.origin)
	}
	b.origin = grid.C(x0, y0)
	b.position = b.origin
	b.started, b.hasPosition = true, true
	b.history = b.history[:0]
	b.visited = grid.NewCoordSet()
	b.log.Debug("pencil start",
		slog.String("kind", b.kind),
		slog.String("origin", b.origin.String()),
		slog.Int("size", b.size))

	return b.update(x0, y0, recompute)
}

// update records (x, y) and commits the variant's recomputation. Positions
// already visited since Start are ignored. A failed recomputation leaves
// the pencil untouched.
func (b *base) update(x, y int, recompute recomputeFunc) error {
	if !b.started {
		return ErrNotStarted
	}
	pos := grid.C(x, y)
	if b.visited.Has(pos) {
		return nil
	}

	d, err := recompute(pos)
	if err != nil {
		b.log.Debug("pencil update failed",
			slog.String("kind", b.kind),
			slog.String("position", pos.String()),
			slog.Any("error", err))
		return fmt.Errorf("pencil: %s update at %v: %w", b.kind, pos, err)
	}

	b.history = append(b.history, pos)
	b.visited.Add(pos)
	b.position, b.hasPosition = pos, true
	b.selection, b.added, b.removed = d.selection, d.added, d.removed
	b.log.Debug("pencil update",
		slog.String("kind", b.kind),
		slog.String("position", pos.String()),
		slog.Int("added", d.added.Len()),
		slog.Int("removed", d.removed.Len()),
		slog.Int("selection", d.selection.Len()))
	return nil
}

// Started reports whether Start succeeded.
func (b *base) Started() bool { return b.started }

// Origin returns the Start position; ok is false before Start.
func (b *base) Origin() (c grid.Coord, ok bool) { return b.origin, b.started }

// Position returns the last effective position; ok is false before Start.
func (b *base) Position() (c grid.Coord, ok bool) { return b.position, b.hasPosition }

// Size returns the brush size.
func (b *base) Size() int { return b.size }

// SetSize changes the brush size. The current selection is not recomputed.
// Returns grid.ErrInvalidDimension if n <= 0.
func (b *base) SetSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: pencil size %d", grid.ErrInvalidDimension, n)
	}
	b.size = n
	return nil
}

// History returns the positions visited since Start, in order.
func (b *base) History() []grid.Coord {
	out := make([]grid.Coord, len(b.history))
	copy(out, b.history)
	return out
}

// Selection returns the selected cells in row-major order.
func (b *base) Selection() []grid.Coord { return b.selection.Sorted() }

// Added returns the cells added by the last effective update, in row-major order.
func (b *base) Added() []grid.Coord { return b.added.Sorted() }

// Removed returns the cells removed by the last effective update, in row-major order.
func (b *base) Removed() []grid.Coord { return b.removed.Sorted() }

// brush returns the zone painted around c at the current size.
func (b *base) brush(c grid.Coord) (grid.CoordSet, error) {
	return b.grid.Topology().Zone(c.X, c.Y, b.size-1)
}

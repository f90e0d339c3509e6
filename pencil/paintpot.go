package pencil

import "github.com/katalvlaran/tilegrid/grid"

// SimilarFunc reports whether candidate belongs to the same region as
// origin. It typically compares caller-owned cell attributes.
type SimilarFunc func(origin, candidate grid.Coord) bool

// PaintPotPencil selects, at Start, the region of cells connected to the
// origin through cells that a SimilarFunc accepts. The flood follows the
// grid's adjacency and stays on the grid; the origin is always selected.
// The result is a snapshot: once started, Update has no effect.
type PaintPotPencil struct {
	base
	similar SimilarFunc
}

var _ Pencil = (*PaintPotPencil)(nil)

// NewPaintPotPencil returns an unstarted PaintPotPencil filling g.
// WithSize is accepted but has no effect on the fill.
func NewPaintPotPencil(g *grid.Grid, opts ...Option) (*PaintPotPencil, error) {
	b, err := newBase("paint-pot", g, opts)
	if err != nil {
		return nil, err
	}
	return &PaintPotPencil{base: b}, nil
}

// Start fills from (x0, y0) using similar.
// Returns ErrNilPredicate if similar is nil, ErrAlreadyStarted if the
// pencil already holds a selection.
func (p *PaintPotPencil) Start(x0, y0 int, similar SimilarFunc) error {
	if similar == nil {
		return ErrNilPredicate
	}
	prev := p.similar
	p.similar = similar
	if err := p.start(x0, y0, p.recompute); err != nil {
		p.similar = prev
		return err
	}
	return nil
}

// Update is inert once the fill is done.
// Returns ErrNotStarted before Start.
func (p *PaintPotPencil) Update(x, y int) error {
	if p.selection.Len() > 0 {
		return nil
	}
	return p.update(x, y, p.recompute)
}

func (p *PaintPotPencil) recompute(grid.Coord) (delta, error) {
	origin := p.origin
	res, err := p.grid.Flood(origin, grid.WithAccept(func(c grid.Coord) bool {
		return p.similar(origin, c)
	}))
	if err != nil {
		return delta{}, err
	}
	return delta{
		selection: res.Set(),
		added:     res.Set(),
		removed:   grid.NewCoordSet(),
	}, nil
}

package pencil

import "github.com/katalvlaran/tilegrid/grid"

// SimplePencil paints freehand: every position adds a zone of radius
// Size-1 around it and nothing is ever removed.
type SimplePencil struct {
	base
}

var _ Pencil = (*SimplePencil)(nil)

// NewSimplePencil returns an unstarted SimplePencil drawing on g.
func NewSimplePencil(g *grid.Grid, opts ...Option) (*SimplePencil, error) {
	b, err := newBase("simple", g, opts)
	if err != nil {
		return nil, err
	}
	return &SimplePencil{base: b}, nil
}

// Start begins painting at (x0, y0).
// Returns ErrAlreadyStarted if the pencil already holds a selection.
func (p *SimplePencil) Start(x0, y0 int) error {
	return p.start(x0, y0, p.recompute)
}

// Update paints at (x, y).
// Returns ErrNotStarted before Start.
func (p *SimplePencil) Update(x, y int) error {
	return p.update(x, y, p.recompute)
}

func (p *SimplePencil) recompute(pos grid.Coord) (delta, error) {
	z, err := p.brush(pos)
	if err != nil {
		return delta{}, err
	}
	return delta{
		selection: p.selection.Union(z),
		added:     z.Difference(p.selection),
		removed:   grid.NewCoordSet(),
	}, nil
}

package pencil

import "github.com/katalvlaran/tilegrid/grid"

// LinePencil selects a thick line from the origin to the current position.
// Every line cell spreads into a zone of radius Size-1; cells are not
// clipped to the grid.
type LinePencil struct {
	base
}

var _ Pencil = (*LinePencil)(nil)

// NewLinePencil returns an unstarted LinePencil drawing on g.
func NewLinePencil(g *grid.Grid, opts ...Option) (*LinePencil, error) {
	b, err := newBase("line", g, opts)
	if err != nil {
		return nil, err
	}
	return &LinePencil{base: b}, nil
}

// Start begins a line at (x0, y0).
// Returns ErrAlreadyStarted if the pencil already holds a selection.
func (p *LinePencil) Start(x0, y0 int) error {
	return p.start(x0, y0, p.recompute)
}

// Update moves the free end of the line to (x, y).
// Returns ErrNotStarted before Start.
func (p *LinePencil) Update(x, y int) error {
	return p.update(x, y, p.recompute)
}

func (p *LinePencil) recompute(pos grid.Coord) (delta, error) {
	cells, err := p.grid.Line(p.origin.X, p.origin.Y, pos.X, pos.Y)
	if err != nil {
		return delta{}, err
	}
	next := grid.NewCoordSet()
	for _, c := range cells {
		z, err := p.brush(c)
		if err != nil {
			return delta{}, err
		}
		for cell := range z {
			next.Add(cell)
		}
	}
	return delta{
		selection: next,
		added:     next.Difference(p.selection),
		removed:   p.selection.Difference(next),
	}, nil
}

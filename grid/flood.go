package grid

import "fmt"

// FloodOption configures Flood via functional arguments.
// An invalid option is recorded and surfaced as ErrOptionViolation
// when Flood runs.
type FloodOption func(*FloodOptions)

// FloodOptions holds the parameters of a breadth-first flood.
type FloodOptions struct {
	// MaxDepth limits expansion to cells at most MaxDepth steps from the
	// start. A negative value disables the limit.
	MaxDepth int

	// Neighbors enumerates the cells adjacent to c. Nil means the
	// topology's own unbounded adjacency.
	Neighbors func(c Coord) []Coord

	// Accept is asked about every newly discovered cell. Rejected cells
	// are neither added nor expanded. The start cell is always accepted.
	Accept func(c Coord) bool

	// OnVisit is called when a cell is dequeued, with its depth.
	// Returning an error aborts the flood.
	OnVisit func(c Coord, depth int) error

	err error
}

// DefaultFloodOptions returns FloodOptions with no depth limit, the
// topology's adjacency, every cell accepted and a no-op visit hook.
func DefaultFloodOptions() FloodOptions {
	return FloodOptions{
		MaxDepth: -1,
		Accept:   func(Coord) bool { return true },
		OnVisit:  func(Coord, int) error { return nil },
	}
}

// WithMaxDepth stops expansion beyond depth d.
//
//	d >= 0: cells at most d steps away
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) FloodOption {
	return func(o *FloodOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithNeighbors replaces the adjacency function.
func WithNeighbors(fn func(c Coord) []Coord) FloodOption {
	return func(o *FloodOptions) {
		if fn != nil {
			o.Neighbors = fn
		}
	}
}

// WithAccept installs a predicate that bounds the flood.
// Without a depth limit the predicate must eventually reject cells,
// otherwise an unbounded adjacency never runs out of cells.
func WithAccept(fn func(c Coord) bool) FloodOption {
	return func(o *FloodOptions) {
		if fn != nil {
			o.Accept = fn
		}
	}
}

// WithOnVisit registers a callback run on every visited cell.
func WithOnVisit(fn func(c Coord, depth int) error) FloodOption {
	return func(o *FloodOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// FloodResult holds the cells reached by a flood:
//   - Order: cells in visit order, start first.
//   - Depth: steps from the start to each reached cell.
type FloodResult struct {
	Order []Coord
	Depth map[Coord]int
}

// Set returns the reached cells as a set.
func (r *FloodResult) Set() CoordSet {
	return NewCoordSet(r.Order...)
}

// floodItem pairs a cell with its distance from the start.
type floodItem struct {
	c     Coord
	depth int
}

// Flood expands breadth-first from start over the adjacency relation,
// each cell being discovered, accepted or rejected at most once.
// Returns ErrUnknownTopology, ErrOptionViolation, or a wrapped OnVisit error.
// Complexity: O(V·d) for V reached cells of degree d.
func (t Topology) Flood(start Coord, opts ...FloodOption) (*FloodResult, error) {
	o := DefaultFloodOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Neighbors == nil {
		if err := t.check(); err != nil {
			return nil, err
		}
		o.Neighbors = func(c Coord) []Coord { return t.Neighbors(c.X, c.Y) }
	}

	res := &FloodResult{Depth: map[Coord]int{start: 0}}
	seen := NewCoordSet(start)
	queue := []floodItem{{c: start}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.c)
		if err := o.OnVisit(item.c, item.depth); err != nil {
			return res, fmt.Errorf("grid: OnVisit error at %v: %w", item.c, err)
		}

		next := item.depth + 1
		if o.MaxDepth >= 0 && next > o.MaxDepth {
			continue
		}
		for _, nb := range o.Neighbors(item.c) {
			if seen.Has(nb) {
				continue
			}
			seen.Add(nb)
			if !o.Accept(nb) {
				continue
			}
			res.Depth[nb] = next
			queue = append(queue, floodItem{c: nb, depth: next})
		}
	}
	return res, nil
}

// Zone returns every cell within radius adjacency steps of (x, y).
// A radius of 0 yields {(x, y)}. The ball is measured in graph steps,
// not Euclidean distance.
// Returns ErrInvalidRadius for a negative radius.
// Complexity: O(r²·d).
func (t Topology) Zone(x, y, radius int) (CoordSet, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	res, err := t.Flood(Coord{x, y}, WithMaxDepth(radius))
	if err != nil {
		return nil, err
	}
	return res.Set(), nil
}

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle rasterises the isosceles sector with apex (xa, ya) whose base is
// centred on (xh, yh) and perpendicular to the apex→centre direction.
// The base half-width is |AH| / (factor·√3): factor 1 gives a 60° cone,
// larger factors narrow it.
//
// The three edges are rasterised with Line. The edge of least slope is the
// base; every base cell is then extended row by row towards the opposite
// corner until it meets one of the two other edges (the hat).
// The result lists each cell once: fill cells first, then hat cells.
// Apex == centre yields the single apex cell.
// Returns ErrInvalidFactor, ErrUnknownTopology or ErrRasterization.
func (t Topology) Triangle(xa, ya, xh, yh int, factor float64) ([]Coord, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	if !(factor > 0) || math.IsInf(factor, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	apex := Coord{xa, ya}
	if xa == xh && ya == yh {
		return []Coord{apex}, nil
	}

	b, c, err := t.baseCorners(apex, Coord{xh, yh}, factor)
	if err != nil {
		return nil, err
	}
	return t.fillTriangle(apex, b, c)
}

// baseCorners returns the two base corners B and C, at ±k·n from the base
// centre h, where n is the normal to the apex→centre direction and
// k = 1/(factor·√3). FlatHex corners are computed in cube space.
func (t Topology) baseCorners(a, h Coord, factor float64) (b, c Coord, err error) {
	k := 1 / (factor * math.Sqrt(3))

	if t == Square {
		hv := r2.Vec{X: float64(h.X), Y: float64(h.Y)}
		n := r2.Vec{X: float64(a.Y - h.Y), Y: float64(h.X - a.X)}
		bv := r2.Add(hv, r2.Scale(k, n))
		cv := r2.Sub(hv, r2.Scale(k, n))
		b = Coord{int(math.RoundToEven(bv.X)), int(math.RoundToEven(bv.Y))}
		c = Coord{int(math.RoundToEven(cv.X)), int(math.RoundToEven(cv.Y))}
		return b, c, nil
	}

	ua, uh := offsetToCube(a), offsetToCube(h)
	dx, dy := uh.xu-ua.xu, uh.yu-ua.yu
	nx, ny := -(2*dy + dx), 2*dx+dy
	n := r3.Vec{X: float64(nx), Y: float64(ny), Z: float64(-nx - ny)}
	ub, err := cubeRound(r3.Add(uh.vec(), r3.Scale(k, n)))
	if err != nil {
		return Coord{}, Coord{}, err
	}
	uc, err := cubeRound(r3.Sub(uh.vec(), r3.Scale(k, n)))
	if err != nil {
		return Coord{}, Coord{}, err
	}
	return ub.toOffset(), uc.toOffset(), nil
}

// segment is a triangle edge between two corners.
type segment struct {
	from, to Coord
}

// slope is |dy/dx|, +Inf for vertical edges.
func (s segment) slope() float64 {
	if s.from.X == s.to.X {
		return math.Inf(1)
	}
	return math.Abs(float64(s.to.Y-s.from.Y) / float64(s.to.X-s.from.X))
}

func (t Topology) fillTriangle(a, b, c Coord) ([]Coord, error) {
	edges := [3]segment{{a, b}, {b, c}, {c, a}}
	opposite := [3]Coord{c, a, b}

	// first edge of least slope wins ties
	bi := 0
	for i := 1; i < 3; i++ {
		if edges[i].slope() < edges[bi].slope() {
			bi = i
		}
	}
	baseEdge := edges[bi]
	base, err := t.Line(baseEdge.from.X, baseEdge.from.Y, baseEdge.to.X, baseEdge.to.Y)
	if err != nil {
		return nil, err
	}

	var hat []Coord
	for i, e := range edges {
		if i == bi {
			continue
		}
		cells, err := t.Line(e.from.X, e.from.Y, e.to.X, e.to.Y)
		if err != nil {
			return nil, err
		}
		hat = append(hat, cells...)
	}
	onHat := NewCoordSet(hat...)

	top := opposite[bi]
	sense := 1
	if top.Y < baseEdge.from.Y || (top.Y == baseEdge.from.Y && top.Y <= baseEdge.to.Y) {
		sense = -1
	}
	// hex edges may stray half a cell outside the corners' rows
	lo, hi, _ := BoundingRect(append(append([]Coord{a, b, c}, base...), hat...)...)

	out := make([]Coord, 0, len(base)*2+len(hat))
	for _, cell := range base {
		walk := make([]Coord, 0, hi.Y-lo.Y+1)
		for cur := cell; !onHat.Has(cur); cur.Y += sense {
			if cur.Y < lo.Y || cur.Y > hi.Y {
				// never met the hat in this column: keep the base cell only
				walk = append(walk[:0], cell)
				break
			}
			walk = append(walk, cur)
		}
		out = append(out, walk...)
	}
	out = append(out, hat...)
	return dedupe(out), nil
}

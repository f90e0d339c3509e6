package grid

import "gonum.org/v1/gonum/spatial/r2"

// DefaultScale is the side length, in drawing units, used by renderers
// that do not pick their own cell size.
const DefaultScale = 120.0

// Unit flat-top hexagon, column pitch √3/2 (0.866), width 2/√3 (1.1547).
var hexOutline = [6]r2.Vec{
	{X: 0.2886, Y: 0}, {X: 0.866, Y: 0}, {X: 1.1547, Y: 0.5},
	{X: 0.866, Y: 1}, {X: 0.2886, Y: 1}, {X: 0, Y: 0.5},
}

// Outline returns the polygon of cell (x, y) in drawing space, clockwise
// from the top-left vertex: 4 vertices for Square, 6 for FlatHex (odd
// columns half a cell lower). Unknown topologies yield nil.
func (t Topology) Outline(x, y int, scale float64) []r2.Vec {
	switch t {
	case Square:
		o := r2.Vec{X: float64(x), Y: float64(y)}
		return []r2.Vec{
			r2.Scale(scale, o),
			r2.Scale(scale, r2.Add(o, r2.Vec{X: 1})),
			r2.Scale(scale, r2.Add(o, r2.Vec{X: 1, Y: 1})),
			r2.Scale(scale, r2.Add(o, r2.Vec{Y: 1})),
		}
	case FlatHex:
		o := r2.Vec{X: 0.866 * float64(x), Y: float64(y)}
		if parity(x) == 1 {
			o.Y += 0.5
		}
		out := make([]r2.Vec, len(hexOutline))
		for i, v := range hexOutline {
			out[i] = r2.Scale(scale, r2.Add(o, v))
		}
		return out
	default:
		return nil
	}
}

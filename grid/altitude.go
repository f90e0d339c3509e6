package grid

import "math"

// Line3D rasterises the segment from (x1, y1, z1) to (x2, y2, z2).
// The flat cells come from Line; the altitude follows a second, Square
// line from (0, z1) to (n-1, z2), n being the number of flat cells, whose
// x component indexes the flat line. Steep climbs therefore repeat a flat
// cell at several altitudes. Equal altitudes skip the second line.
func (t Topology) Line3D(x1, y1, z1, x2, y2, z2 int) ([]Coord3, error) {
	flat, err := t.Line(x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}
	if z1 == z2 {
		out := make([]Coord3, len(flat))
		for i, c := range flat {
			out[i] = Coord3{X: c.X, Y: c.Y, Z: z1}
		}
		return out, nil
	}

	profile := squareLine(0, z1, len(flat)-1, z2)
	out := make([]Coord3, len(profile))
	for i, p := range profile {
		c := flat[p.X]
		out[i] = Coord3{X: c.X, Y: c.Y, Z: p.Y}
	}
	return out, nil
}

// Triangle3D approximates a cone with apex (xa, ya, za) and base centred
// on (xh, yh, zh). The footprint is Triangle(xa, ya, xh, yh, factor);
// each footprint cell maps to the altitude band it covers.
//
// The band of a cell at distance d from the apex is the range of the
// Square profile line from (0, za) to (D, zh), D being the apex→centre
// distance, sampled at d (at D when d > D), widened on both sides by
// ⌊d/(factor·√3)⌋+1 for d > 0. The widening is a rough stand-in for the
// cone flare and is not geometrically exact.
func (t Topology) Triangle3D(xa, ya, za, xh, yh, zh int, factor float64) (map[Coord]AltitudeRange, error) {
	flat, err := t.Triangle(xa, ya, xh, yh, factor)
	if err != nil {
		return nil, err
	}
	k := 1 / (factor * math.Sqrt(3))
	apex := Coord{xa, ya}
	length := t.Distance(apex, Coord{xh, yh})

	bands := make(map[int]AltitudeRange, length+1)
	for _, p := range squareLine(0, za, length, zh) {
		band, ok := bands[p.X]
		if !ok {
			bands[p.X] = AltitudeRange{Min: p.Y, Max: p.Y}
			continue
		}
		band.Min, band.Max = min(band.Min, p.Y), max(band.Max, p.Y)
		bands[p.X] = band
	}

	out := make(map[Coord]AltitudeRange, len(flat))
	for _, c := range flat {
		d := t.Distance(apex, c)
		band, ok := bands[d]
		if !ok {
			d = length
			band = bands[length]
		}
		dh := 0
		if d > 0 {
			dh = int(k*float64(d)) + 1
		}
		out[c] = AltitudeRange{Min: band.Min - dh, Max: band.Max + dh}
	}
	return out, nil
}

package grid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseCoord parses the "x,y" form produced by Coord.String.
// Surrounding spaces around each component are ignored.
// Returns ErrInvalidCoordinate if s is not a pair of integers.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q is not an x,y pair", ErrInvalidCoordinate, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: x is not an integer", ErrInvalidCoordinate, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: y is not an integer", ErrInvalidCoordinate, s)
	}
	return Coord{X: x, Y: y}, nil
}

// BoundingRect returns the top-left and bottom-right corners of the smallest
// axis-aligned box containing every coordinate.
// Returns ErrInvalidCoordinate if coords is empty.
// Complexity: O(n).
func BoundingRect(coords ...Coord) (lo, hi Coord, err error) {
	if len(coords) == 0 {
		return Coord{}, Coord{}, fmt.Errorf("%w: bounding box of no coordinates", ErrInvalidCoordinate)
	}
	lo, hi = coords[0], coords[0]
	for _, c := range coords[1:] {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi, nil
}

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set holding coords.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts coords into s.
func (s CoordSet) Add(coords ...Coord) {
	for _, c := range coords {
		s[c] = struct{}{}
	}
}

// Has reports whether c belongs to s.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of coordinates in s.
func (s CoordSet) Len() int {
	return len(s)
}

// Union returns a new set with the members of s and t.
func (s CoordSet) Union(t CoordSet) CoordSet {
	out := make(CoordSet, len(s)+len(t))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range t {
		out[c] = struct{}{}
	}
	return out
}

// Difference returns a new set with the members of s that are not in t.
func (s CoordSet) Difference(t CoordSet) CoordSet {
	out := make(CoordSet)
	for c := range s {
		if _, ok := t[c]; !ok {
			out[c] = struct{}{}
		}
	}
	return out
}

// Intersect returns a new set with the members common to s and t.
func (s CoordSet) Intersect(t CoordSet) CoordSet {
	out := make(CoordSet)
	for c := range s {
		if _, ok := t[c]; ok {
			out[c] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members of s in row-major order (by Y, then X).
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}

// SortCoords sorts coords in place in row-major order (by Y, then X).
func SortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
}

// dedupe drops repeated coordinates, keeping the first occurrence of each.
func dedupe(coords []Coord) []Coord {
	seen := make(CoordSet, len(coords))
	out := coords[:0]
	for _, c := range coords {
		if seen.Has(c) {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// parity returns 0 for even v and 1 for odd v, negative values included.
func parity(v int) int {
	return v & 1
}

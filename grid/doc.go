// Package grid provides the geometry kernel for tile-based game boards:
// square and flat-top hexagonal grids addressed by integer offset
// coordinates.
//
// What:
//
//   - Grid wraps a width×height board with a Topology (Square or FlatHex).
//   - Topology implements adjacency, line and triangle rasterisation,
//     rotation, distance and cell outlines for its tiling.
//   - Zone and Flood expand a cell set breadth-first over the adjacency
//     relation, visiting each cell at most once.
//   - Rectangle and HollowRectangle enumerate axis-aligned boxes.
//   - Line3D and Triangle3D add an altitude axis on top of the flat shapes.
//
// Why:
//
//   - Tabletop and strategy tooling: line of sight, areas of effect,
//     cones, movement radii, selection brushes.
//
// Coordinates:
//
// Offset coordinates (x, y) are the canonical representation. On FlatHex
// grids odd columns sit half a cell lower than even columns. Rotation and
// distance on FlatHex go through cube coordinates (xu+yu+zu = 0), which
// never leave this package.
//
// Complexity:
//
//   - Line:      O(|dx|+|dy|), Memory: O(|dx|+|dy|).
//   - Zone:      O(r²·d), Memory: O(r²)   (d = 8 for Square, 6 for FlatHex).
//   - Triangle:  O(A) where A is the triangle area in cells.
//   - Rotate:    O(n·k) for n coordinates and k steps (k < period).
//
// Errors:
//
//   - ErrInvalidDimension: width or height not strictly positive.
//   - ErrInvalidCoordinate: malformed coordinate pair or cube triple.
//   - ErrInvalidRadius: negative zone radius.
//   - ErrInvalidFactor: non-positive triangle half-angle factor.
//   - ErrRasterization: line or triangle fill failed to converge.
//   - ErrUnknownTopology: Topology value outside {Square, FlatHex}.
//   - ErrOptionViolation: invalid Flood option.
package grid

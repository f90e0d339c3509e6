// Package tilegrid is a geometry kernel and selection toolkit for
// tile-based game boards and map editors.
//
// 🚀 What is tilegrid?
//
//	A small, pure-Go library that brings together:
//		• Topologies: Square (8 neighbours) and flat-top hexagons (6 neighbours)
//		• Shapes: lines, filled triangles (cones), rectangles and outlines
//		• Expansion: radius zones and predicate-driven flood fills
//		• Transforms: rotation in 90° or 60° steps, cube-coordinate distance
//		• Altitude: 3D lines and cones with per-cell altitude bands
//		• Pencils: stateful line, freehand and paint-pot selection tools
//
// ✨ Why choose tilegrid?
//
//   - Integer coordinates everywhere; no floating-point drift in lines
//   - Deterministic output order, suitable for golden tests
//   - Explicit sentinel errors, wrapped with context
//   - Pencils report per-update deltas for incremental redraws
//
// Packages:
//
//	grid/   Grid, Topology, Coord, CoordSet, shapes, zones and flood
//	pencil/ LinePencil, SimplePencil, PaintPotPencil
//
// Quick ASCII example (FlatHex, odd columns shifted down):
//
//	 __    __
//	/0,0\__/2,0\
//	\__/1,0\__/
//	/0,1\__/2,1\
//	\__/1,1\__/
//
// Cell (1,0) touches (0,0), (2,0), (0,1), (2,1) and (1,1).
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid

// Package pencil turns a stream of pointer positions into an evolving
// cell selection on a grid.Grid, reporting what each update added and
// removed so that a renderer can repaint only the changed cells.
//
// What:
//
//   - LinePencil: a thick line from the origin to the current position;
//     moving the pointer both grows and shrinks the selection.
//   - SimplePencil: freehand painting; every position adds a zone and
//     nothing is ever removed.
//   - PaintPotPencil: a flood fill from the origin over cells that a
//     caller-supplied SimilarFunc accepts, computed once at Start.
//
// Protocol:
//
//	p, _ := pencil.NewLinePencil(g, pencil.WithSize(2))
//	_ = p.Start(x0, y0)   // pointer pressed
//	_ = p.Update(x, y)    // pointer moved; read p.Added() and p.Removed()
//	cells := p.Selection() // pointer released; apply, then drop p
//
// A position already visited since Start is ignored, so replaying the
// same hover events is free. After every update Added and Removed are
// disjoint and Selection equals the previous selection minus Removed
// plus Added.
//
// Errors:
//
//   - ErrNilGrid: constructor called without a grid.
//   - ErrNilPredicate: PaintPotPencil started without a SimilarFunc.
//   - ErrAlreadyStarted: Start on a pencil whose selection is non-empty.
//   - ErrNotStarted: Update before Start.
//   - grid.ErrInvalidDimension: size not strictly positive.
//
// Pencils are not safe for concurrent use.
package pencil

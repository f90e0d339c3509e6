package pencil

import "errors"

var (
	// ErrNilGrid indicates a pencil constructed without a grid.
	ErrNilGrid = errors.New("pencil: grid is nil")
	// ErrNilPredicate indicates a PaintPotPencil started without a SimilarFunc.
	ErrNilPredicate = errors.New("pencil: similarity predicate is nil")
	// ErrAlreadyStarted indicates Start on a pencil that already holds a selection.
	ErrAlreadyStarted = errors.New("pencil: already started")
	// ErrNotStarted indicates Update before Start.
	ErrNotStarted = errors.New("pencil: not started")
)

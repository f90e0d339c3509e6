package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a width, height or size that is not strictly positive.
	ErrInvalidDimension = errors.New("grid: dimension must be a strictly positive integer")
	// ErrInvalidCoordinate indicates a malformed coordinate pair or cube triple.
	ErrInvalidCoordinate = errors.New("grid: invalid coordinate")
	// ErrInvalidRadius indicates a negative zone radius.
	ErrInvalidRadius = errors.New("grid: radius must be non-negative")
	// ErrInvalidFactor indicates a triangle half-angle factor that is not strictly positive.
	ErrInvalidFactor = errors.New("grid: half-angle factor must be strictly positive")
	// ErrRasterization indicates a rasterisation that did not converge.
	ErrRasterization = errors.New("grid: rasterization did not converge")
	// ErrUnknownTopology indicates a Topology value with no implementation.
	ErrUnknownTopology = errors.New("grid: unknown topology")
	// ErrOptionViolation is returned when an invalid FloodOption is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

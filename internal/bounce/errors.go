package bounce

import "errors"

var (
	// ErrInvalidGeometry is returned for non-positive canvas dimensions.
	ErrInvalidGeometry = errors.New("invalid canvas geometry")

	// ErrEmptyGrid is returned when the canvas is too small for a single brick row or column.
	ErrEmptyGrid = errors.New("brick grid is empty")

	// ErrUnknownLevel is returned for level numbers with no layout.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrInvalidState is returned when a lifecycle command does not apply to the current state.
	ErrInvalidState = errors.New("invalid state for command")
)

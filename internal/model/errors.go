package model

import "errors"

var (
	// ErrIllegalState is returned when a cursor removal is attempted without a
	// preceding successful Next since construction or the last removal.
	ErrIllegalState = errors.New("cannot remove an element until Next has been called")

	// ErrOutOfBounds is returned when a cursor is advanced past the end of its
	// study group, or refers to an element that no longer exists.
	ErrOutOfBounds = errors.New("cursor position out of bounds")
)

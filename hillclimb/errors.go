package hillclimb

import "errors"

var (
	// ErrNoStart indicates the input has no 'S' marker.
	ErrNoStart = errors.New("hillclimb: no start marker 'S'")
	// ErrNoEnd indicates the input has no 'E' marker.
	ErrNoEnd = errors.New("hillclimb: no end marker 'E'")
	// ErrDuplicateMarker indicates more than one 'S' or 'E' marker.
	ErrDuplicateMarker = errors.New("hillclimb: marker appears more than once")
	// ErrBadElevation indicates a cell that is not 'a'..'z', 'S' or 'E'.
	ErrBadElevation = errors.New("hillclimb: invalid elevation")
	// ErrNoPath indicates the end cannot be reached.
	ErrNoPath = errors.New("hillclimb: no path found")
)

package lexicon

import "errors"

var (
	// ErrInvalidOverlay is returned when an overlay file is malformed or
	// contains incomplete entries.
	ErrInvalidOverlay = errors.New("invalid lexicon overlay")
)

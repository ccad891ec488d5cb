package analysis

import "errors"

var (
	// ErrParserRequired is returned when a parser is not provided.
	ErrParserRequired = errors.New("parser required")
)

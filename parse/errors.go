package parse

import "errors"

var (
	// ErrLexiconRequired is returned when a lexicon is not provided.
	ErrLexiconRequired = errors.New("lexicon required")
)

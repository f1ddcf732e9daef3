package travel

import "errors"

var (
	// ErrInvalidQuery signals a malformed search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnsupportedDomain signals a search domain the engine does not handle.
	ErrUnsupportedDomain = errors.New("unsupported search domain")
)

package growth

import "errors"

var (
	// ErrInvalidInput indicates a nil or incomplete growth entry.
	ErrInvalidInput = errors.New("invalid growth entry")
)

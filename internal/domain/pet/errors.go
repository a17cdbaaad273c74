package pet

import "errors"

var (
	// ErrNegativeElapsed indicates Advance was called with a negative
	// duration, typically a host clock that went backward.
	ErrNegativeElapsed = errors.New("negative elapsed duration")
	// ErrInvalidStage indicates an unknown stage name or value.
	ErrInvalidStage = errors.New("invalid stage")
	// ErrInvalidThresholds indicates misordered or non-positive thresholds.
	ErrInvalidThresholds = errors.New("invalid growth thresholds")
)

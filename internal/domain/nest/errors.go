package nest

import "errors"

var (
	// ErrPetNotFound indicates the pet doesn't live in this nest.
	ErrPetNotFound = errors.New("pet not found")
	// ErrInvalidInput indicates invalid nest input.
	ErrInvalidInput = errors.New("invalid nest input")
	// ErrNestNotLoaded indicates the service is used before Load.
	ErrNestNotLoaded = errors.New("nest not loaded")
)

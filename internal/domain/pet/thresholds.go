package pet

import (
	"fmt"
	"time"
)

// Thresholds hold the accumulated ages at which a pet enters each
// stage after Egg. They must be positive and strictly increasing.
type Thresholds struct {
	Hatch  time.Duration `json:"hatch"`  // Egg -> Hatchling
	Fledge time.Duration `json:"fledge"` // Hatchling -> Juvenile
	Mature time.Duration `json:"mature"` // Juvenile -> Adult
}

// DefaultThresholds grow a pet over a few days of desk time.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Hatch:  1 * time.Hour,
		Fledge: 12 * time.Hour,
		Mature: 72 * time.Hour,
	}
}

// Validate checks ordering and positivity.
func (t Thresholds) Validate() error {
	if t.Hatch <= 0 {
		return fmt.Errorf("%w: hatch must be positive, got %s", ErrInvalidThresholds, t.Hatch)
	}
	if t.Fledge <= t.Hatch {
		return fmt.Errorf("%w: fledge (%s) must exceed hatch (%s)", ErrInvalidThresholds, t.Fledge, t.Hatch)
	}
	if t.Mature <= t.Fledge {
		return fmt.Errorf("%w: mature (%s) must exceed fledge (%s)", ErrInvalidThresholds, t.Mature, t.Fledge)
	}
	return nil
}

// StageFor maps an accumulated age to the stage it implies.
func (t Thresholds) StageFor(age time.Duration) Stage {
	switch {
	case age >= t.Mature:
		return StageAdult
	case age >= t.Fledge:
		return StageJuvenile
	case age >= t.Hatch:
		return StageHatchling
	default:
		return StageEgg
	}
}

// EnteredAt returns the age at which a pet enters the given stage.
func (t Thresholds) EnteredAt(s Stage) time.Duration {
	switch s {
	case StageHatchling:
		return t.Hatch
	case StageJuvenile:
		return t.Fledge
	case StageAdult:
		return t.Mature
	default:
		return 0
	}
}

// Next returns the age threshold for the stage after s. The second
// return is false once the pet is Adult.
func (t Thresholds) Next(s Stage) (time.Duration, bool) {
	switch s {
	case StageEgg:
		return t.Hatch, true
	case StageHatchling:
		return t.Fledge, true
	case StageJuvenile:
		return t.Mature, true
	default:
		return 0, false
	}
}

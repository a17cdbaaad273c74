// Package pet implements the growth engine: a pet's stage is a pure
// function of its accumulated age, advanced by elapsed-time deltas the
// host delivers at whatever cadence it likes. The engine performs no
// I/O and reads no clocks; callers own persistence and scheduling.
package pet

import "time"

// Advance adds elapsed time to the pet's age and recomputes its stage.
// It returns a StageChange if the stage rose during this call, nil
// otherwise. Calling once with a total duration T yields the same final
// stage as any sequence of non-negative deltas summing to T.
//
// A negative elapsed duration is rejected with ErrNegativeElapsed and
// leaves the pet untouched. Adult is terminal: further calls accumulate
// age but never produce another change.
func (p *Pet) Advance(elapsed time.Duration) (*StageChange, error) {
	if elapsed < 0 {
		return nil, ErrNegativeElapsed
	}

	p.Age += elapsed
	next := p.Thresholds.StageFor(p.Age)
	if next <= p.Stage {
		return nil, nil
	}

	change := &StageChange{
		PetID: p.ID,
		From:  p.Stage,
		To:    next,
		Age:   p.Age,
	}
	p.Stage = next
	p.StageEnteredAt = p.Thresholds.EnteredAt(next)
	return change, nil
}

// Reset returns the pet to a fresh egg. Dev and test affordance.
func (p *Pet) Reset() {
	p.Stage = StageEgg
	p.Age = 0
	p.StageEnteredAt = 0
}

// Restore reconstructs the pet from a persisted snapshot. The stored
// stage is authoritative and is not recomputed from age, so a snapshot
// taken under different thresholds never regresses on load; the
// forward-only guard in Advance keeps it that way afterward.
func (p *Pet) Restore(stage Stage, age time.Duration) error {
	if !stage.Valid() {
		return ErrInvalidStage
	}
	if age < 0 {
		return ErrNegativeElapsed
	}
	p.Stage = stage
	p.Age = age
	entered := p.Thresholds.EnteredAt(stage)
	if entered > age {
		entered = age
	}
	p.StageEnteredAt = entered
	return nil
}

// NextStageIn returns how much more age the pet needs before its next
// stage, and false once it is Adult.
func (p *Pet) NextStageIn() (time.Duration, bool) {
	threshold, ok := p.Thresholds.Next(p.Stage)
	if !ok {
		return 0, false
	}
	remaining := threshold - p.Age
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

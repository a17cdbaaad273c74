package pet

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is a discrete phase in a pet's lifecycle. Stages are ordered:
// a pet only ever moves toward Adult, never back.
type Stage int

const (
	StageEgg Stage = iota
	StageHatchling
	StageJuvenile
	StageAdult
)

var stageNames = [...]string{"egg", "hatchling", "juvenile", "adult"}

func (s Stage) String() string {
	if s < StageEgg || s > StageAdult {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Valid reports whether s is one of the four lifecycle stages.
func (s Stage) Valid() bool {
	return s >= StageEgg && s <= StageAdult
}

// ParseStage converts a stage name back into a Stage.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return StageEgg, fmt.Errorf("%w: %q", ErrInvalidStage, name)
}

// MarshalJSON encodes the stage by name so snapshots and API payloads
// stay readable.
func (s Stage) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStage, int(s))
	}
	return json.Marshal(s.String())
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStage(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// StageChange describes a single stage transition produced by Advance.
// When one call crosses several thresholds at once, From is the stage
// before the call and To the final stage, so there is exactly one
// change per call regardless of how coarsely time is delivered.
type StageChange struct {
	PetID string        `json:"pet_id"`
	From  Stage         `json:"from"`
	To    Stage         `json:"to"`
	Age   time.Duration `json:"age"`
}

// Pet is one inhabitant of a nest, from egg to grown bird.
type Pet struct {
	ID             string        `json:"id"`
	NestID         string        `json:"nest_id"`
	Name           string        `json:"name"`
	Stage          Stage         `json:"stage"`
	Age            time.Duration `json:"age"`
	StageEnteredAt time.Duration `json:"stage_entered_at"`
	Thresholds     Thresholds    `json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// New lays a fresh egg in the given nest.
func New(nestID, name string, th Thresholds) *Pet {
	now := time.Now()
	return &Pet{
		ID:         uuid.NewString(),
		NestID:     nestID,
		Name:       name,
		Stage:      StageEgg,
		Thresholds: th,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

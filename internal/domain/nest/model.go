package nest

import (
	"time"

	"github.com/cozypet/nestd/internal/domain/pet"
)

// Nest is the container owning a clutch of pets. The daemon keeps one
// default nest; the model supports more for future multi-nest setups.
type Nest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PetView is the read-only snapshot handed to the presentation layer.
// The GUI shell maps Stage to a sprite and shows NextStageIn as a
// countdown; it never touches the pet itself.
type PetView struct {
	ID             string         `json:"id"`
	NestID         string         `json:"nest_id"`
	Name           string         `json:"name"`
	Stage          pet.Stage      `json:"stage"`
	Age            time.Duration  `json:"age"`
	StageEnteredAt time.Duration  `json:"stage_entered_at"`
	NextStageIn    *time.Duration `json:"next_stage_in,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Overview bundles the nest with snapshots of all its pets.
type Overview struct {
	Nest Nest      `json:"nest"`
	Pets []PetView `json:"pets"`
}

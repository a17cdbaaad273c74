package growth

import (
	"time"

	"github.com/cozypet/nestd/internal/domain/pet"
)

// Entry records one stage transition in the growth log.
type Entry struct {
	ID        int64         `json:"id"`
	NestID    string        `json:"nest_id"`
	PetID     string        `json:"pet_id"`
	PetName   string        `json:"pet_name"`
	From      pet.Stage     `json:"from"`
	To        pet.Stage     `json:"to"`
	Age       time.Duration `json:"age"`
	CreatedAt time.Time     `json:"created_at"`
}

// ListOptions provides filtering options for reading the growth log.
type ListOptions struct {
	NestID string
	PetID  *string
	Limit  int
	Offset int
}

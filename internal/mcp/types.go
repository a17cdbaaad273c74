package mcp

import (
	"time"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/nest"
	"github.com/cozypet/nestd/internal/domain/pet"
)

// PetResponse is the wire form of a pet snapshot. Durations are Go
// duration strings so the shell can show them verbatim or parse them.
type PetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Stage          string    `json:"stage"`
	Age            string    `json:"age"`
	StageEnteredAt string    `json:"stage_entered_at"`
	NextStageIn    *string   `json:"next_stage_in,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NestResponse bundles the nest with its pets.
type NestResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	Pets      []PetResponse `json:"pets"`
}

// StageChangeResponse describes a transition caused by a tool call.
type StageChangeResponse struct {
	PetID string `json:"pet_id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Age   string `json:"age"`
}

// GrowthEntryResponse is the wire form of a growth log entry.
type GrowthEntryResponse struct {
	PetID     string    `json:"pet_id"`
	PetName   string    `json:"pet_name"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Age       string    `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

func toPetResponse(view *nest.PetView) PetResponse {
	resp := PetResponse{
		ID:             view.ID,
		Name:           view.Name,
		Stage:          view.Stage.String(),
		Age:            view.Age.String(),
		StageEnteredAt: view.StageEnteredAt.String(),
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
	if view.NextStageIn != nil {
		s := view.NextStageIn.String()
		resp.NextStageIn = &s
	}
	return resp
}

func toStageChangeResponse(change *pet.StageChange) *StageChangeResponse {
	if change == nil {
		return nil
	}
	return &StageChangeResponse{
		PetID: change.PetID,
		From:  change.From.String(),
		To:    change.To.String(),
		Age:   change.Age.String(),
	}
}

func toGrowthEntryResponse(entry growth.Entry) GrowthEntryResponse {
	return GrowthEntryResponse{
		PetID:     entry.PetID,
		PetName:   entry.PetName,
		From:      entry.From.String(),
		To:        entry.To.String(),
		Age:       entry.Age.String(),
		CreatedAt: entry.CreatedAt,
	}
}

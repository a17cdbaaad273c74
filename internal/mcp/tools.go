package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/nest"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// handlers binds tool implementations to the domain services. Kept as
// plain methods so tests can call them without a transport.
type handlers struct {
	services Services
}

// GetNestParams has no fields; the daemon owns a single nest.
type GetNestParams struct{}

// GetPetParams identifies one pet.
type GetPetParams struct {
	ID string `json:"id"`
}

// HatchEggParams names the new egg.
type HatchEggParams struct {
	Name string `json:"name"`
}

// FastForwardParams advances one pet by a synthetic duration.
type FastForwardParams struct {
	ID string `json:"id"`
	By string `json:"by"` // Go duration string, e.g. "90s" or "13h"
}

// FastForwardResult carries the pet after the jump and the transition,
// if one occurred.
type FastForwardResult struct {
	Pet    PetResponse          `json:"pet"`
	Change *StageChangeResponse `json:"change,omitempty"`
}

// ResetPetParams identifies the pet to return to a fresh egg.
type ResetPetParams struct {
	ID string `json:"id"`
}

// GrowthHistoryParams filters the growth log.
type GrowthHistoryParams struct {
	PetID string `json:"pet_id,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// GrowthHistoryResult lists recent transitions, newest first.
type GrowthHistoryResult struct {
	Entries []GrowthEntryResponse `json:"entries"`
}

func registerTools(server *sdkmcp.Server, services Services) {
	h := &handlers{services: services}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_nest",
		Description: "Get the nest and a snapshot of every pet in it",
	}, h.getNest)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_pet",
		Description: "Get one pet's snapshot, including its next-stage countdown",
	}, h.getPet)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "hatch_egg",
		Description: "Lay a new named egg in the nest",
	}, h.hatchEgg)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "fast_forward",
		Description: "Advance one pet by a synthetic duration (dev tooling)",
	}, h.fastForward)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reset_pet",
		Description: "Return a pet to a fresh egg (dev tooling)",
	}, h.resetPet)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "growth_history",
		Description: "List recent stage transitions, newest first",
	}, h.growthHistory)
}

func (h *handlers) getNest(ctx context.Context, req *sdkmcp.CallToolRequest, params GetNestParams) (*sdkmcp.CallToolResult, NestResponse, error) {
	overview, err := h.services.Nest.Overview(ctx)
	if err != nil {
		return nil, NestResponse{}, mapError(err)
	}

	resp := NestResponse{
		ID:        overview.Nest.ID,
		Name:      overview.Nest.Name,
		CreatedAt: overview.Nest.CreatedAt,
		Pets:      make([]PetResponse, 0, len(overview.Pets)),
	}
	for i := range overview.Pets {
		resp.Pets = append(resp.Pets, toPetResponse(&overview.Pets[i]))
	}
	return nil, resp, nil
}

func (h *handlers) getPet(ctx context.Context, req *sdkmcp.CallToolRequest, params GetPetParams) (*sdkmcp.CallToolResult, PetResponse, error) {
	view, err := h.services.Nest.Get(ctx, params.ID)
	if err != nil {
		return nil, PetResponse{}, mapError(err)
	}
	return nil, toPetResponse(view), nil
}

func (h *handlers) hatchEgg(ctx context.Context, req *sdkmcp.CallToolRequest, params HatchEggParams) (*sdkmcp.CallToolResult, PetResponse, error) {
	view, err := h.services.Nest.Hatch(ctx, nest.HatchRequest{Name: params.Name})
	if err != nil {
		return nil, PetResponse{}, mapError(err)
	}
	return nil, toPetResponse(view), nil
}

func (h *handlers) fastForward(ctx context.Context, req *sdkmcp.CallToolRequest, params FastForwardParams) (*sdkmcp.CallToolResult, FastForwardResult, error) {
	by, err := time.ParseDuration(params.By)
	if err != nil {
		return nil, FastForwardResult{}, &APIError{
			Code:         "INVALID_ELAPSED",
			Message:      fmt.Sprintf("invalid duration %q", params.By),
			RecoveryHint: "Use a Go duration string like \"90s\" or \"13h\"",
		}
	}

	view, change, err := h.services.Nest.FastForward(ctx, params.ID, by)
	if err != nil {
		return nil, FastForwardResult{}, mapError(err)
	}
	return nil, FastForwardResult{
		Pet:    toPetResponse(view),
		Change: toStageChangeResponse(change),
	}, nil
}

func (h *handlers) resetPet(ctx context.Context, req *sdkmcp.CallToolRequest, params ResetPetParams) (*sdkmcp.CallToolResult, PetResponse, error) {
	view, err := h.services.Nest.Reset(ctx, params.ID)
	if err != nil {
		return nil, PetResponse{}, mapError(err)
	}
	return nil, toPetResponse(view), nil
}

func (h *handlers) growthHistory(ctx context.Context, req *sdkmcp.CallToolRequest, params GrowthHistoryParams) (*sdkmcp.CallToolResult, GrowthHistoryResult, error) {
	opts := growth.ListOptions{
		NestID: getNestID(ctx),
		Limit:  params.Limit,
	}
	if params.PetID != "" {
		opts.PetID = &params.PetID
	}

	entries, err := h.services.Growth.Recent(ctx, opts)
	if err != nil {
		return nil, GrowthHistoryResult{}, mapError(err)
	}

	result := GrowthHistoryResult{Entries: make([]GrowthEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		result.Entries = append(result.Entries, toGrowthEntryResponse(entry))
	}
	return nil, result, nil
}

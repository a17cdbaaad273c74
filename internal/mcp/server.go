// Package mcp exposes the nest to the GUI shell over the Model Context
// Protocol: stdio when the shell spawns nestd as a child process,
// streamable HTTP when it talks to a detached daemon. The shell is a
// pure presentation adapter; every tool here is a read or a dev
// affordance, never the growth clock itself.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/nest"
	"github.com/cozypet/nestd/internal/domain/pet"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// NestService defines nest operations needed by MCP.
type NestService interface {
	Overview(ctx context.Context) (*nest.Overview, error)
	Get(ctx context.Context, petID string) (*nest.PetView, error)
	Hatch(ctx context.Context, req nest.HatchRequest) (*nest.PetView, error)
	FastForward(ctx context.Context, petID string, by time.Duration) (*nest.PetView, *pet.StageChange, error)
	Reset(ctx context.Context, petID string) (*nest.PetView, error)
}

// GrowthService defines growth log operations needed by MCP.
type GrowthService interface {
	Recent(ctx context.Context, opts growth.ListOptions) ([]growth.Entry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Nest   NestService
	Growth GrowthService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

const serverInstructions = `nestd keeps a nest of virtual pets that grow
from egg to adult on real elapsed time. Use get_nest to render the
current clutch, get_pet for a single pet with its next-stage countdown,
and growth_history for recent transitions. hatch_egg adds a pet;
fast_forward and reset_pet are development affordances for shell
integrators who don't want to wait a day for a hatch.`

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "nestd",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(defaultNestMiddleware(cfg.Services.Nest))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}

package nest

import (
	"context"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/pet"
)

// NestRepository provides persistence for nests.
type NestRepository interface {
	Create(ctx context.Context, n *Nest) error
	Get(ctx context.Context, id string) (*Nest, error)
	GetDefault(ctx context.Context) (*Nest, error)
}

// PetRepository provides snapshot persistence for pets.
type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) error
	Get(ctx context.Context, id string) (*pet.Pet, error)
	Update(ctx context.Context, p *pet.Pet) error
	ListByNest(ctx context.Context, nestID string) ([]*pet.Pet, error)
}

// GrowthLogRepository records stage transitions.
type GrowthLogRepository interface {
	Log(ctx context.Context, entry *growth.Entry) error
}

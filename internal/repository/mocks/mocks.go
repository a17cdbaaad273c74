// Package mocks provides testify mocks for the repository interfaces
// the domain services depend on.
package mocks

import (
	"context"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/nest"
	"github.com/cozypet/nestd/internal/domain/pet"
	"github.com/stretchr/testify/mock"
)

// NestRepository is a mock for nest.NestRepository.
type NestRepository struct {
	mock.Mock
}

func (m *NestRepository) Create(ctx context.Context, n *nest.Nest) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NestRepository) Get(ctx context.Context, id string) (*nest.Nest, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*nest.Nest); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NestRepository) GetDefault(ctx context.Context) (*nest.Nest, error) {
	args := m.Called(ctx)
	if n, ok := args.Get(0).(*nest.Nest); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

// PetRepository is a mock for nest.PetRepository.
type PetRepository struct {
	mock.Mock
}

func (m *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PetRepository) Get(ctx context.Context, id string) (*pet.Pet, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*pet.Pet); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PetRepository) ListByNest(ctx context.Context, nestID string) ([]*pet.Pet, error) {
	args := m.Called(ctx, nestID)
	if pets, ok := args.Get(0).([]*pet.Pet); ok {
		return pets, args.Error(1)
	}
	return nil, args.Error(1)
}

// GrowthLogRepository is a mock for growth.Repository.
type GrowthLogRepository struct {
	mock.Mock
}

func (m *GrowthLogRepository) Log(ctx context.Context, entry *growth.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *GrowthLogRepository) List(ctx context.Context, opts growth.ListOptions) ([]growth.Entry, error) {
	args := m.Called(ctx, opts)
	if entries, ok := args.Get(0).([]growth.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

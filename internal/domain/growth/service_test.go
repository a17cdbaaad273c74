package growth_test

import (
	"context"
	"testing"
	"time"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/pet"
	"github.com/cozypet/nestd/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGrowthService_RecordAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.GrowthLogRepository{}
	entry := &growth.Entry{
		NestID:  "n1",
		PetID:   "p1",
		PetName: "Pip",
		From:    pet.StageEgg,
		To:      pet.StageHatchling,
		Age:     61 * time.Second,
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, growth.ListOptions{NestID: "n1"}).Return([]growth.Entry{}, nil)

	svc := growth.NewService(repo, nil)
	require.NoError(t, svc.Record(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	_, err := svc.Recent(ctx, growth.ListOptions{NestID: "n1"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGrowthService_RecordValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.GrowthLogRepository{}
	svc := growth.NewService(repo, nil)

	require.ErrorIs(t, svc.Record(ctx, nil), growth.ErrInvalidInput)
	require.ErrorIs(t, svc.Record(ctx, &growth.Entry{}), growth.ErrInvalidInput)
	repo.AssertNotCalled(t, "Log", mock.Anything, mock.Anything)
}

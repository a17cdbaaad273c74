package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/cozypet/nestd/internal/domain/nest"
	"github.com/cozypet/nestd/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestNestRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewNestRepository(db)
	n := &nest.Nest{ID: "n1", Name: "Cozy Nest", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, n))

	loaded, err := repo.Get(ctx, "n1")
	require.NoError(t, err)
	require.Equal(t, "Cozy Nest", loaded.Name)

	require.ErrorIs(t, repo.Create(ctx, n), repository.ErrDuplicate)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNestRepository_GetDefault(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewNestRepository(db)
	_, err := repo.GetDefault(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	older := &nest.Nest{ID: "n1", Name: "First", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &nest.Nest{ID: "n2", Name: "Second", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	def, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, "n1", def.ID)
}

package integration_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/nest"
	"github.com/cozypet/nestd/internal/domain/pet"
	"github.com/cozypet/nestd/internal/sqlite"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *sqlite.DB
	nestRepo   *sqlite.NestRepository
	petRepo    *sqlite.PetRepository
	growthRepo *sqlite.GrowthLogRepository

	nestSvc   *nest.Service
	growthSvc *growth.Service

	thresholds pet.Thresholds
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	nestRepo := sqlite.NewNestRepository(db)
	petRepo := sqlite.NewPetRepository(db)
	growthRepo := sqlite.NewGrowthLogRepository(db)

	thresholds := pet.Thresholds{
		Hatch:  60 * time.Second,
		Fledge: 300 * time.Second,
		Mature: 900 * time.Second,
	}
	nestSvc := nest.NewService(nestRepo, petRepo, growthRepo, thresholds, nil)
	growthSvc := growth.NewService(growthRepo, nil)

	return &testEnv{
		db:         db,
		nestRepo:   nestRepo,
		petRepo:    petRepo,
		growthRepo: growthRepo,
		nestSvc:    nestSvc,
		growthSvc:  growthSvc,
		thresholds: thresholds,
	}
}

func TestIntegration_ColdStartLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.nestSvc.Load(ctx))

	hatched, err := env.nestSvc.Hatch(ctx, nest.HatchRequest{Name: "Pip"})
	require.NoError(t, err)
	require.Equal(t, pet.StageEgg, hatched.Stage)

	// Simulate a tick loop delivering one second at a time past hatch.
	for i := 0; i < 61; i++ {
		_, err := env.nestSvc.Advance(ctx, time.Second)
		require.NoError(t, err)
	}
	view, err := env.nestSvc.Get(ctx, hatched.ID)
	require.NoError(t, err)
	require.Equal(t, pet.StageHatchling, view.Stage)

	// A long suspend delivered as one coarse delta: single transition
	// straight to adult.
	changes, err := env.nestSvc.Advance(ctx, 1000*time.Second)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Equal(t, pet.StageHatchling, changes[0].From)
	require.Equal(t, pet.StageAdult, changes[0].To)

	entries, err := env.growthSvc.Recent(ctx, growth.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, pet.StageAdult, entries[0].To)
	require.Equal(t, pet.StageHatchling, entries[1].To)
}

func TestIntegration_RestartRestoresProgress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.nestSvc.Load(ctx))
	hatched, err := env.nestSvc.Hatch(ctx, nest.HatchRequest{Name: "Wren"})
	require.NoError(t, err)

	_, err = env.nestSvc.Advance(ctx, 400*time.Second)
	require.NoError(t, err)
	require.NoError(t, env.nestSvc.Checkpoint(ctx))

	// A second service over the same database is a daemon restart.
	restarted := nest.NewService(env.nestRepo, env.petRepo, env.growthRepo, env.thresholds, nil)
	require.NoError(t, restarted.Load(ctx))

	view, err := restarted.Get(ctx, hatched.ID)
	require.NoError(t, err)
	require.Equal(t, pet.StageJuvenile, view.Stage)
	require.Equal(t, 400*time.Second, view.Age)

	// Growth continues from the snapshot, not from zero.
	changes, err := restarted.Advance(ctx, 500*time.Second)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Equal(t, pet.StageAdult, changes[0].To)
}

func TestIntegration_MultiplePetsAdvanceIndependently(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.nestSvc.Load(ctx))
	older, err := env.nestSvc.Hatch(ctx, nest.HatchRequest{Name: "Pip"})
	require.NoError(t, err)

	_, err = env.nestSvc.Advance(ctx, 301*time.Second)
	require.NoError(t, err)

	younger, err := env.nestSvc.Hatch(ctx, nest.HatchRequest{Name: "Wren"})
	require.NoError(t, err)

	_, err = env.nestSvc.Advance(ctx, 61*time.Second)
	require.NoError(t, err)

	olderView, err := env.nestSvc.Get(ctx, older.ID)
	require.NoError(t, err)
	youngerView, err := env.nestSvc.Get(ctx, younger.ID)
	require.NoError(t, err)

	require.Equal(t, pet.StageJuvenile, olderView.Stage)
	require.Equal(t, pet.StageHatchling, youngerView.Stage)
	require.Greater(t, olderView.Age, youngerView.Age)
}

package nest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/pet"
	"github.com/cozypet/nestd/internal/repository"
	"github.com/google/uuid"
)

// DefaultNestName is used when the daemon creates its nest on first run.
const DefaultNestName = "Cozy Nest"

// Service owns the nest and its pets. Pets live in memory and are
// advanced by the host tick loop; snapshots go to storage on stage
// changes and checkpoints. The engine itself is single-writer, but the
// query surface runs beside the tick loop, so the service serializes
// access with a mutex.
type Service struct {
	nests      NestRepository
	pets       PetRepository
	growthLog  GrowthLogRepository
	thresholds pet.Thresholds
	logger     *slog.Logger

	mu   sync.Mutex
	nest *Nest
	byID map[string]*pet.Pet
}

// NewService creates a new nest service.
func NewService(
	nests NestRepository,
	pets PetRepository,
	growthLog GrowthLogRepository,
	thresholds pet.Thresholds,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		nests:      nests,
		pets:       pets,
		growthLog:  growthLog,
		thresholds: thresholds,
		logger:     logger,
		byID:       make(map[string]*pet.Pet),
	}
}

// Load restores the nest and its pets from storage, creating the
// default nest on first run. Restored pets keep their persisted stage;
// age accumulates from there.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.nests.GetDefault(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		n = &Nest{
			ID:        uuid.NewString(),
			Name:      DefaultNestName,
			CreatedAt: time.Now(),
		}
		if err := s.nests.Create(ctx, n); err != nil {
			return fmt.Errorf("creating nest: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading nest: %w", err)
	}
	s.nest = n

	loaded, err := s.pets.ListByNest(ctx, n.ID)
	if err != nil {
		return fmt.Errorf("loading pets: %w", err)
	}

	s.byID = make(map[string]*pet.Pet, len(loaded))
	for _, p := range loaded {
		p.Thresholds = s.thresholds
		// Rebuild through Restore so snapshot validation and the
		// stage-entry clamp apply to stored rows too.
		if err := p.Restore(p.Stage, p.Age); err != nil {
			return fmt.Errorf("restoring pet %s: %w", p.ID, err)
		}
		s.byID[p.ID] = p
	}

	s.logger.Info("nest loaded", "nest_id", n.ID, "pets", len(loaded))
	return nil
}

// HatchRequest describes a new egg.
type HatchRequest struct {
	Name string
}

// Hatch lays a new egg in the nest.
func (s *Service) Hatch(ctx context.Context, req HatchRequest) (*PetView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nest == nil {
		return nil, ErrNestNotLoaded
	}

	p := pet.New(s.nest.ID, name, s.thresholds)
	if err := s.pets.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}
	s.byID[p.ID] = p

	s.logger.Info("egg laid", "pet_id", p.ID, "name", p.Name)
	view := s.view(p)
	return &view, nil
}

// Advance delivers elapsed time to every pet in the nest and returns
// the stage changes it caused. Negative elapsed is rejected before any
// pet is touched. Persistence failures do not roll back in-memory
// growth; the next checkpoint retries the write.
func (s *Service) Advance(ctx context.Context, elapsed time.Duration) ([]pet.StageChange, error) {
	if elapsed < 0 {
		return nil, pet.ErrNegativeElapsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var changes []pet.StageChange
	for _, p := range s.byID {
		change, err := p.Advance(elapsed)
		if err != nil {
			return nil, err
		}
		if change == nil {
			continue
		}
		changes = append(changes, *change)
		s.persistChange(ctx, p, change)
	}
	return changes, nil
}

// FastForward advances a single pet by a synthetic duration. Dev
// tooling: lets a shell integrator watch a hatch without waiting a day.
func (s *Service) FastForward(ctx context.Context, petID string, by time.Duration) (*PetView, *pet.StageChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[petID]
	if !ok {
		return nil, nil, ErrPetNotFound
	}

	change, err := p.Advance(by)
	if err != nil {
		return nil, nil, err
	}
	if change != nil {
		s.persistChange(ctx, p, change)
	} else if err := s.persist(ctx, p); err != nil {
		s.logger.Error("pet snapshot failed", "pet_id", p.ID, "error", err)
	}

	view := s.view(p)
	return &view, change, nil
}

// Reset returns a pet to a fresh egg.
func (s *Service) Reset(ctx context.Context, petID string) (*PetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[petID]
	if !ok {
		return nil, ErrPetNotFound
	}

	p.Reset()
	if err := s.persist(ctx, p); err != nil {
		return nil, fmt.Errorf("persisting reset: %w", err)
	}

	s.logger.Info("pet reset", "pet_id", p.ID, "name", p.Name)
	view := s.view(p)
	return &view, nil
}

// Get returns a read-only snapshot of one pet.
func (s *Service) Get(ctx context.Context, petID string) (*PetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[petID]
	if !ok {
		return nil, ErrPetNotFound
	}
	view := s.view(p)
	return &view, nil
}

// Overview returns the nest and snapshots of all pets, oldest first.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nest == nil {
		return nil, ErrNestNotLoaded
	}

	views := make([]PetView, 0, len(s.byID))
	for _, p := range s.byID {
		views = append(views, s.view(p))
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].ID < views[j].ID
		}
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})

	return &Overview{Nest: *s.nest, Pets: views}, nil
}

// Checkpoint flushes every pet's current age to storage. Called
// periodically by the host and once at shutdown.
func (s *Service) Checkpoint(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, p := range s.byID {
		if err := s.persist(ctx, p); err != nil {
			errs = append(errs, fmt.Errorf("pet %s: %w", p.ID, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("checkpoint: %w", errors.Join(errs...))
	}
	return nil
}

func (s *Service) persistChange(ctx context.Context, p *pet.Pet, change *pet.StageChange) {
	s.logger.Info("stage change",
		"pet_id", p.ID, "name", p.Name,
		"from", change.From.String(), "to", change.To.String(), "age", change.Age)

	if err := s.persist(ctx, p); err != nil {
		s.logger.Error("pet snapshot failed", "pet_id", p.ID, "error", err)
	}
	entry := &growth.Entry{
		NestID:    p.NestID,
		PetID:     p.ID,
		PetName:   p.Name,
		From:      change.From,
		To:        change.To,
		Age:       change.Age,
		CreatedAt: time.Now(),
	}
	if err := s.growthLog.Log(ctx, entry); err != nil {
		s.logger.Error("growth log write failed", "pet_id", p.ID, "error", err)
	}
}

func (s *Service) persist(ctx context.Context, p *pet.Pet) error {
	p.UpdatedAt = time.Now()
	return s.pets.Update(ctx, p)
}

func (s *Service) view(p *pet.Pet) PetView {
	view := PetView{
		ID:             p.ID,
		NestID:         p.NestID,
		Name:           p.Name,
		Stage:          p.Stage,
		Age:            p.Age,
		StageEnteredAt: p.StageEnteredAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if remaining, ok := p.NextStageIn(); ok {
		view.NextStageIn = &remaining
	}
	return view
}

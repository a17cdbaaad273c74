package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cozypet/nestd/internal/domain/pet"
	"github.com/cozypet/nestd/internal/repository"
)

// PetRepository implements nest.PetRepository for SQLite. Durations are
// stored as integer nanoseconds; stage as its name, checked by the
// schema.
type PetRepository struct {
	db *DB
}

// NewPetRepository creates a new PetRepository
func NewPetRepository(db *DB) *PetRepository {
	return &PetRepository{db: db}
}

// Create inserts a new pet snapshot
func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	query := `
		INSERT INTO pets (
			id, nest_id, name, stage, age_ns, stage_entered_ns, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.NestID,
		p.Name,
		p.Stage.String(),
		int64(p.Age),
		int64(p.StageEnteredAt),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create pet: %w", err)
	}

	return nil
}

// Get retrieves a pet snapshot by ID
func (r *PetRepository) Get(ctx context.Context, id string) (*pet.Pet, error) {
	query := `
		SELECT id, nest_id, name, stage, age_ns, stage_entered_ns, created_at, updated_at
		FROM pets
		WHERE id = ?
	`

	p, err := scanPet(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	return p, nil
}

// Update writes the current snapshot of a pet
func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	query := `
		UPDATE pets
		SET name = ?, stage = ?, age_ns = ?, stage_entered_ns = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Stage.String(),
		int64(p.Age),
		int64(p.StageEnteredAt),
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListByNest returns all pets in a nest, oldest first
func (r *PetRepository) ListByNest(ctx context.Context, nestID string) ([]*pet.Pet, error) {
	query := `
		SELECT id, nest_id, name, stage, age_ns, stage_entered_ns, created_at, updated_at
		FROM pets
		WHERE nest_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, nestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	var pets []*pet.Pet
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	return pets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (*pet.Pet, error) {
	var p pet.Pet
	var stageName string
	var ageNS, enteredNS int64

	err := row.Scan(
		&p.ID,
		&p.NestID,
		&p.Name,
		&stageName,
		&ageNS,
		&enteredNS,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	stage, err := pet.ParseStage(stageName)
	if err != nil {
		return nil, err
	}
	p.Stage = stage
	p.Age = time.Duration(ageNS)
	p.StageEnteredAt = time.Duration(enteredNS)

	return &p, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cozypet/nestd/internal/domain/nest"
	"github.com/cozypet/nestd/internal/repository"
)

// NestRepository implements nest.NestRepository for SQLite
type NestRepository struct {
	db *DB
}

// NewNestRepository creates a new NestRepository
func NewNestRepository(db *DB) *NestRepository {
	return &NestRepository{db: db}
}

// Create inserts a new nest
func (r *NestRepository) Create(ctx context.Context, n *nest.Nest) error {
	query := `INSERT INTO nests (id, name, created_at) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, n.ID, n.Name, n.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create nest: %w", err)
	}

	return nil
}

// Get retrieves a nest by ID
func (r *NestRepository) Get(ctx context.Context, id string) (*nest.Nest, error) {
	query := `SELECT id, name, created_at FROM nests WHERE id = ?`

	var n nest.Nest
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.Name, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nest: %w", err)
	}

	return &n, nil
}

// GetDefault returns the oldest nest, which is the one the daemon owns.
func (r *NestRepository) GetDefault(ctx context.Context) (*nest.Nest, error) {
	query := `SELECT id, name, created_at FROM nests ORDER BY created_at, id LIMIT 1`

	var n nest.Nest
	err := r.db.QueryRowContext(ctx, query).Scan(&n.ID, &n.Name, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default nest: %w", err)
	}

	return &n, nil
}

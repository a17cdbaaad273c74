package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/pet"
	"github.com/cozypet/nestd/internal/repository"
)

// GrowthLogRepository implements growth.Repository for SQLite
type GrowthLogRepository struct {
	db *DB
}

// NewGrowthLogRepository creates a new GrowthLogRepository
func NewGrowthLogRepository(db *DB) *GrowthLogRepository {
	return &GrowthLogRepository{db: db}
}

// Log inserts a new growth entry
func (r *GrowthLogRepository) Log(ctx context.Context, entry *growth.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO growth_log (
			nest_id, pet_id, pet_name, from_stage, to_stage, age_ns, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.NestID,
		entry.PetID,
		entry.PetName,
		entry.From.String(),
		entry.To.String(),
		int64(entry.Age),
		createdAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to log growth entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}
	entry.CreatedAt = createdAt

	return nil
}

// List returns growth entries matching the given filters, newest first
func (r *GrowthLogRepository) List(ctx context.Context, opts growth.ListOptions) ([]growth.Entry, error) {
	query := `
		SELECT id, nest_id, pet_id, pet_name, from_stage, to_stage, age_ns, created_at
		FROM growth_log
	`

	var args []any
	var conditions []string

	if opts.NestID != "" {
		conditions = append(conditions, "nest_id = ?")
		args = append(args, opts.NestID)
	}
	if opts.PetID != nil {
		conditions = append(conditions, "pet_id = ?")
		args = append(args, *opts.PetID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)

	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list growth entries: %w", err)
	}
	defer rows.Close()

	var entries []growth.Entry
	for rows.Next() {
		var entry growth.Entry
		var fromName, toName string
		var ageNS int64

		err := rows.Scan(
			&entry.ID,
			&entry.NestID,
			&entry.PetID,
			&entry.PetName,
			&fromName,
			&toName,
			&ageNS,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan growth entry: %w", err)
		}

		if entry.From, err = pet.ParseStage(fromName); err != nil {
			return nil, err
		}
		if entry.To, err = pet.ParseStage(toName); err != nil {
			return nil, err
		}
		entry.Age = time.Duration(ageNS)

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list growth entries: %w", err)
	}

	return entries, nil
}

package growth

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles growth log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new growth log service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends a stage transition, stamping the current time if missing.
func (s *Service) Record(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.PetID == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("recording growth entry: %w", err)
	}
	return nil
}

// Recent lists growth entries with filtering, newest first.
func (s *Service) Recent(ctx context.Context, opts ListOptions) ([]Entry, error) {
	return s.repo.List(ctx, opts)
}

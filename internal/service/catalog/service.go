// Package catalog manages the shared name catalog: idempotent seeding from
// the built-in list and filtered listing.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/nafnapp-backend/internal/catalogdata"
	"github.com/heartmarshall/nafnapp-backend/internal/domain"
)

//go:generate moq -out name_repo_mock_test.go . nameRepo:nameRepoMock

type nameRepo interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, batch []domain.Name) (int64, error)
	List(ctx context.Context, filter domain.GenderFilter) ([]domain.Name, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Name, error)
}

// Service seeds and serves the name catalog.
type Service struct {
	log       *slog.Logger
	names     nameRepo
	batchSize int
}

// New creates a catalog service. batchSize caps how many names go into a
// single insert statement.
func New(log *slog.Logger, names nameRepo, batchSize int) *Service {
	return &Service{
		log:       log.With("service", "catalog"),
		names:     names,
		batchSize: batchSize,
	}
}

// EnsureSeeded populates an empty catalog from the built-in name list.
// A non-empty catalog is left untouched. Returns the number of names
// inserted.
func (s *Service) EnsureSeeded(ctx context.Context) (int64, error) {
	count, err := s.names.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	if count > 0 {
		s.log.DebugContext(ctx, "catalog already seeded", "names", count)
		return 0, nil
	}
	return s.Seed(ctx, catalogdata.Names())
}

// Seed inserts names in batches, skipping duplicates. A failed batch is
// logged and the remaining batches still run; the error of the last failed
// batch is returned alongside the insert count so callers can decide
// whether a partial seed is acceptable.
func (s *Service) Seed(ctx context.Context, names []domain.Name) (int64, error) {
	var (
		inserted int64
		failed   int
		lastErr  error
	)

	for start := 0; start < len(names); start += s.batchSize {
		end := start + s.batchSize
		if end > len(names) {
			end = len(names)
		}

		n, err := s.names.CreateBatch(ctx, names[start:end])
		if err != nil {
			failed++
			lastErr = err
			s.log.ErrorContext(ctx, "seed batch failed",
				"from", start, "to", end, "error", err)
			continue
		}
		inserted += n
	}

	s.log.InfoContext(ctx, "catalog seeded",
		"requested", len(names), "inserted", inserted, "failed_batches", failed)

	if lastErr != nil {
		return inserted, fmt.Errorf("%d seed batches failed: %w", failed, lastErr)
	}
	return inserted, nil
}

// List returns the catalog names admitted by the filter.
func (s *Service) List(ctx context.Context, filter domain.GenderFilter) ([]domain.Name, error) {
	if !filter.IsValid() {
		return nil, fmt.Errorf("%w: invalid gender filter %q", domain.ErrValidation, filter)
	}
	return s.names.List(ctx, filter)
}

// Get returns a single catalog name.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Name, error) {
	return s.names.GetByID(ctx, id)
}

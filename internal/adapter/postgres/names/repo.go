// Package names persists the shared name catalog.
package names

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres"
	"github.com/heartmarshall/nafnapp-backend/internal/domain"
)

const table = "master_names"

var columns = []string{"id", "name", "gender", "meaning", "created_at"}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type nameRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Gender    string    `db:"gender"`
	Meaning   *string   `db:"meaning"`
	CreatedAt time.Time `db:"created_at"`
}

func (r nameRow) toDomain() domain.Name {
	return domain.Name{
		ID:        r.ID,
		Name:      r.Name,
		Gender:    domain.Gender(r.Gender),
		Meaning:   r.Meaning,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides access to the master_names table.
type Repo struct {
	db postgres.Querier
}

// New creates a name catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a single catalog name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Name, error) {
	query, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row nameRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "name", id)
	}

	n := row.toDomain()
	return &n, nil
}

// List returns all catalog names admitted by the gender filter, ordered by
// insertion (created_at, then name for stability). Callers apply their own
// presentation ordering on top.
func (r *Repo) List(ctx context.Context, filter domain.GenderFilter) ([]domain.Name, error) {
	builder := qb.Select(columns...).
		From(table).
		OrderBy("created_at ASC", "name ASC")

	// UNISEX names match every filter.
	switch filter {
	case domain.FilterFemale:
		builder = builder.Where(squirrel.Eq{"gender": []string{
			domain.GenderFemale.String(), domain.GenderUnisex.String(),
		}})
	case domain.FilterMale:
		builder = builder.Where(squirrel.Eq{"gender": []string{
			domain.GenderMale.String(), domain.GenderUnisex.String(),
		}})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []nameRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "names", filter)
	}

	result := make([]domain.Name, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

// Count returns the total number of catalog names.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int64
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "names count", nil)
	}
	return count, nil
}

// CreateBatch inserts a batch of names, skipping any that already exist.
// Returns the number of rows actually inserted.
func (r *Repo) CreateBatch(ctx context.Context, batch []domain.Name) (int64, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	builder := qb.Insert(table).
		Columns("id", "name", "gender", "meaning").
		Suffix("ON CONFLICT (id) DO NOTHING")
	for _, n := range batch {
		builder = builder.Values(n.ID, n.Name, n.Gender.String(), n.Meaning)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "names batch", len(batch))
	}
	return tag.RowsAffected(), nil
}

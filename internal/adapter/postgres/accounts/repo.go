// Package accounts persists the membership link between an identity and
// its couple.
package accounts

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

const table = "accounts"

var columns = []string{"id", "couple_id", "role", "created_at"}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type accountRow struct {
	ID        uuid.UUID `db:"id"`
	CoupleID  uuid.UUID `db:"couple_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (r accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:        r.ID,
		CoupleID:  r.CoupleID,
		Role:      domain.Role(r.Role),
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides access to the accounts table.
type Repo struct {
	db postgres.Querier
}

// New creates an account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a new account. The UNIQUE(couple_id, role) constraint
// guarantees at most one account per role per couple, so a join race that
// slips past the couple slot check still surfaces as ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a domain.Account) error {
	query, args, err := qb.Insert(table).
		Columns("id", "couple_id", "role").
		Values(a.ID, a.CoupleID, a.Role.String()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "account", a.ID)
	}
	return nil
}

// GetByID returns the account for an identity.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row accountRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	a := row.toDomain()
	return &a, nil
}

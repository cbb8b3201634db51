// Package couples persists couple records and their shared settings.
package couples

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres"
	"github.com/heartmarshall/nafnapp-backend/internal/domain"
)

const table = "couples"

var columns = []string{
	"id", "nickname", "partner1_id", "partner2_id",
	"presentation_order", "gender_filter", "created_at", "updated_at",
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type coupleRow struct {
	ID                uuid.UUID  `db:"id"`
	Nickname          string     `db:"nickname"`
	Partner1ID        uuid.UUID  `db:"partner1_id"`
	Partner2ID        *uuid.UUID `db:"partner2_id"`
	PresentationOrder string     `db:"presentation_order"`
	GenderFilter      string     `db:"gender_filter"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r coupleRow) toDomain() domain.Couple {
	return domain.Couple{
		ID:         r.ID,
		Nickname:   r.Nickname,
		Partner1ID: r.Partner1ID,
		Partner2ID: r.Partner2ID,
		Settings: domain.CoupleSettings{
			PresentationOrder: domain.PresentationOrder(r.PresentationOrder),
			GenderFilter:      domain.GenderFilter(r.GenderFilter),
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides access to the couples table.
type Repo struct {
	db postgres.Querier
}

// New creates a couple repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a new couple with its founding partner and settings.
func (r *Repo) Create(ctx context.Context, c domain.Couple) error {
	query, args, err := qb.Insert(table).
		Columns("id", "nickname", "partner1_id", "presentation_order", "gender_filter").
		Values(c.ID, c.Nickname, c.Partner1ID,
			c.Settings.PresentationOrder.String(), c.Settings.GenderFilter.String()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "couple", c.ID)
	}
	return nil
}

// GetByID returns a couple by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	query, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row coupleRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}

	c := row.toDomain()
	return &c, nil
}

// ClaimPartner2 fills the second partner slot if and only if it is still
// open. The conditional write makes concurrent joins safe: exactly one
// caller observes claimed=true, the loser sees claimed=false.
func (r *Repo) ClaimPartner2(ctx context.Context, coupleID, partnerID uuid.UUID) (bool, error) {
	query, args, err := qb.Update(table).
		Set("partner2_id", partnerID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": coupleID}).
		Where("partner2_id IS NULL").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "couple", coupleID)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateSettings replaces the couple's shared settings and optionally its
// nickname, returning the updated couple.
func (r *Repo) UpdateSettings(ctx context.Context, coupleID uuid.UUID, settings domain.CoupleSettings, nickname *string) (*domain.Couple, error) {
	builder := qb.Update(table).
		Set("presentation_order", settings.PresentationOrder.String()).
		Set("gender_filter", settings.GenderFilter.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": coupleID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if nickname != nil {
		builder = builder.Set("nickname", *nickname)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row coupleRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "couple", coupleID)
	}

	c := row.toDomain()
	return &c, nil
}

// Package preferences persists per-couple swipe decisions on catalog names.
package preferences

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

const table = "name_likes"

var columns = []string{
	"id", "couple_id", "name_id",
	"partner1_decision", "partner2_decision", "created_at", "updated_at",
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type preferenceRow struct {
	ID               uuid.UUID `db:"id"`
	CoupleID         uuid.UUID `db:"couple_id"`
	NameID           uuid.UUID `db:"name_id"`
	Partner1Decision string    `db:"partner1_decision"`
	Partner2Decision string    `db:"partner2_decision"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r preferenceRow) toDomain() domain.PreferenceRecord {
	return domain.PreferenceRecord{
		ID:               r.ID,
		CoupleID:         r.CoupleID,
		NameID:           r.NameID,
		Partner1Decision: domain.Decision(r.Partner1Decision),
		Partner2Decision: domain.Decision(r.Partner2Decision),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Repo provides access to the name_likes table.
type Repo struct {
	db postgres.Querier
}

// New creates a preference repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the preference record for a couple and name, or
// domain.ErrNotFound when neither partner has decided yet.
func (r *Repo) Get(ctx context.Context, coupleID, nameID uuid.UUID) (*domain.PreferenceRecord, error) {
	query, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"couple_id": coupleID, "name_id": nameID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row preferenceRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "preference", nameID)
	}

	p := row.toDomain()
	return &p, nil
}

// UpsertDecision records one partner's decision, creating the record on
// first touch. Only the acting partner's column is written, so concurrent
// upserts by the two partners commute. Returns the record after the write.
func (r *Repo) UpsertDecision(ctx context.Context, coupleID, nameID uuid.UUID, role domain.Role, decision domain.Decision) (*domain.PreferenceRecord, error) {
	col, err := decisionColumn(role)
	if err != nil {
		return nil, err
	}

	p1, p2 := domain.DecisionUndecided, domain.DecisionUndecided
	if role == domain.RolePartner1 {
		p1 = decision
	} else {
		p2 = decision
	}

	query, args, err := qb.Insert(table).
		Columns("id", "couple_id", "name_id", "partner1_decision", "partner2_decision").
		Values(uuid.New(), coupleID, nameID, p1.String(), p2.String()).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (couple_id, name_id) DO UPDATE SET %s = EXCLUDED.%s, updated_at = now() RETURNING %s",
			col, col, strings.Join(columns, ", "),
		)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row preferenceRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "preference", nameID)
	}

	rec := row.toDomain()
	return &rec, nil
}

// ListByCouple returns all preference records for a couple.
func (r *Repo) ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]domain.PreferenceRecord, error) {
	query, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"couple_id": coupleID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []preferenceRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "preferences", coupleID)
	}

	result := make([]domain.PreferenceRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func decisionColumn(role domain.Role) (string, error) {
	switch role {
	case domain.RolePartner1:
		return "partner1_decision", nil
	case domain.RolePartner2:
		return "partner2_decision", nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
}

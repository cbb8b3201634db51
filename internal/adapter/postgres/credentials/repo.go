// Package credentials persists login credentials for the local identity
// provider.
package credentials

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

const table = "credentials"

var columns = []string{"id", "email", "password_hash", "created_at"}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type credentialRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r credentialRow) toDomain() domain.Credential {
	return domain.Credential{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// Repo provides access to the credentials table.
type Repo struct {
	db postgres.Querier
}

// New creates a credential repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a new credential and returns the persisted row. Returns
// domain.ErrAlreadyExists when the email is already registered.
func (r *Repo) Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	query, args, err := qb.Insert(table).
		Columns("id", "email", "password_hash").
		Values(cred.ID, strings.ToLower(cred.Email), cred.PasswordHash).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row credentialRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "credential", cred.Email)
	}

	created := row.toDomain()
	return &created, nil
}

// GetByEmail looks up a credential by its normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": strings.ToLower(email)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row credentialRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "credential", email)
	}

	cred := row.toDomain()
	return &cred, nil
}

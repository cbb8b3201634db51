package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/nafnapp-backend/internal/domain"
)

// minPasswordLength mirrors the weak-password threshold of the identity
// provider the mobile app originally used.
const minPasswordLength = 6

// credentialRepo defines the credential persistence needed by LocalProvider.
type credentialRepo interface {
	Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error)
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
}

// LocalProvider is an email+password Provider backed by the credential store.
type LocalProvider struct {
	log      *slog.Logger
	creds    credentialRepo
	limiter  *attemptLimiter
	hashCost int
}

// NewLocalProvider creates a LocalProvider. maxAttempts failed verifications
// per email within window trigger domain.ErrRateLimited.
func NewLocalProvider(logger *slog.Logger, creds credentialRepo, hashCost, maxAttempts int, window time.Duration) *LocalProvider {
	return &LocalProvider{
		log:      logger.With("service", "identity"),
		creds:    creds,
		limiter:  newAttemptLimiter(maxAttempts, window),
		hashCost: hashCost,
	}
}

// Create provisions a new identity.
func (p *LocalProvider) Create(ctx context.Context, email, password string) (*Identity, error) {
	email = normalizeEmail(email)

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("identity.Create: %w", domain.ErrInvalidFormat)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("identity.Create: %w", domain.ErrWeakCredential)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.hashCost)
	if err != nil {
		return nil, fmt.Errorf("identity.Create hash password: %w", err)
	}

	cred := &domain.Credential{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	created, err := p.creds.Create(ctx, cred)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("identity.Create: %w", domain.ErrEmailInUse)
		}
		return nil, fmt.Errorf("identity.Create: %w", err)
	}

	p.log.InfoContext(ctx, "identity created", slog.String("identity_id", created.ID.String()))

	return &Identity{ID: created.ID, Email: created.Email}, nil
}

// Verify checks an email+password pair against the stored credential.
// An unknown email and a wrong password are indistinguishable to the caller.
func (p *LocalProvider) Verify(ctx context.Context, email, password string) (*Identity, error) {
	email = normalizeEmail(email)

	if !p.limiter.allow(email) {
		return nil, fmt.Errorf("identity.Verify: %w", domain.ErrRateLimited)
	}

	cred, err := p.creds.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Burn comparable time so unknown emails are not detectable.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			p.limiter.fail(email)
			return nil, fmt.Errorf("identity.Verify: %w", domain.ErrInvalidCredential)
		}
		return nil, fmt.Errorf("identity.Verify: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		p.limiter.fail(email)
		return nil, fmt.Errorf("identity.Verify: %w", domain.ErrInvalidCredential)
	}

	p.limiter.reset(email)

	return &Identity{ID: cred.ID, Email: cred.Email}, nil
}

// dummyHash is a bcrypt hash of an unguessable value, used for constant-ish
// time verification of unknown emails.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("nafnapp-dummy-credential"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}()

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Package pairing manages couples and their sessions: creating a couple,
// joining one by invite code, logging in, and shared settings.
package pairing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/nafnapp-backend/internal/auth"
	"github.com/heartmarshall/nafnapp-backend/internal/domain"
	"github.com/heartmarshall/nafnapp-backend/internal/identity"
	"github.com/heartmarshall/nafnapp-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . identityProvider coupleRepo accountRepo txManager tokenIssuer catalogSeeder

type identityProvider interface {
	Create(ctx context.Context, email, password string) (*identity.Identity, error)
	Verify(ctx context.Context, email, password string) (*identity.Identity, error)
}

type coupleRepo interface {
	Create(ctx context.Context, c domain.Couple) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	ClaimPartner2(ctx context.Context, coupleID, partnerID uuid.UUID) (bool, error)
	UpdateSettings(ctx context.Context, coupleID uuid.UUID, settings domain.CoupleSettings, nickname *string) (*domain.Couple, error)
}

type accountRepo interface {
	Create(ctx context.Context, a domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tokenIssuer interface {
	GenerateAccessToken(c auth.Claims) (string, error)
}

type catalogSeeder interface {
	EnsureSeeded(ctx context.Context) (int64, error)
}

// Session is an authenticated pairing context returned by the entry points.
type Session struct {
	Token   string
	Account domain.Account
	Couple  domain.Couple
}

// JoinCode returns the invite code the second partner uses to join.
// The couple ID doubles as the code.
func (s Session) JoinCode() string { return s.Couple.ID.String() }

// CreateCoupleInput registers the founding partner and their couple. A nil
// Settings applies the defaults.
type CreateCoupleInput struct {
	Email    string
	Password string
	Nickname string
	Settings *domain.CoupleSettings
}

// JoinCoupleInput registers the second partner into an open couple.
type JoinCoupleInput struct {
	Email    string
	Password string
	JoinCode string
}

// UpdateSettingsInput changes the couple's shared settings. A nil Nickname
// leaves the nickname untouched.
type UpdateSettingsInput struct {
	PresentationOrder domain.PresentationOrder
	GenderFilter      domain.GenderFilter
	Nickname          *string
}

// UserContext is the authenticated member's view of their pairing.
type UserContext struct {
	Account  domain.Account
	Couple   domain.Couple
	JoinCode string
}

// Service implements the pairing workflows.
type Service struct {
	log          *slog.Logger
	ids          identityProvider
	couples      coupleRepo
	accounts     accountRepo
	tx           txManager
	tokens       tokenIssuer
	seeder       catalogSeeder
	seedOnCreate bool
}

// New creates a pairing service. When seedOnCreate is set, creating a couple
// also triggers catalog seeding so the first swipe queue is never empty.
func New(log *slog.Logger, ids identityProvider, couples coupleRepo, accounts accountRepo,
	tx txManager, tokens tokenIssuer, seeder catalogSeeder, seedOnCreate bool) *Service {
	return &Service{
		log:          log.With("service", "pairing"),
		ids:          ids,
		couples:      couples,
		accounts:     accounts,
		tx:           tx,
		tokens:       tokens,
		seeder:       seeder,
		seedOnCreate: seedOnCreate,
	}
}

// CreateCouple registers the founding partner, opens a couple with a free
// second slot, and returns an authenticated session.
func (s *Service) CreateCouple(ctx context.Context, input CreateCoupleInput) (*Session, error) {
	settings := domain.DefaultCoupleSettings()
	if input.Settings != nil {
		if !input.Settings.PresentationOrder.IsValid() || !input.Settings.GenderFilter.IsValid() {
			return nil, fmt.Errorf("%w: invalid settings", domain.ErrValidation)
		}
		settings = *input.Settings
	}

	var (
		account domain.Account
		couple  domain.Couple
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ident, err := s.ids.Create(ctx, input.Email, input.Password)
		if err != nil {
			return err
		}

		couple = domain.Couple{
			ID:         uuid.New(),
			Nickname:   input.Nickname,
			Partner1ID: ident.ID,
			Settings:   settings,
		}
		if err := s.couples.Create(ctx, couple); err != nil {
			return fmt.Errorf("create couple: %w", err)
		}

		account = domain.Account{
			ID:       ident.ID,
			CoupleID: couple.ID,
			Role:     domain.RolePartner1,
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "couple created",
		"couple_id", couple.ID.String(), "identity_id", account.ID.String())

	if s.seedOnCreate {
		// Seeding is best effort here: the queue endpoint works off
		// whatever the catalog holds, and the seeder command can
		// backfill.
		if _, err := s.seeder.EnsureSeeded(ctx); err != nil {
			s.log.ErrorContext(ctx, "catalog seeding failed", "error", err)
		}
	}

	return s.session(account, couple)
}

// JoinCouple registers the second partner into the couple named by the join
// code. Exactly one of two racing joiners wins the open slot.
func (s *Service) JoinCouple(ctx context.Context, input JoinCoupleInput) (*Session, error) {
	coupleID, err := uuid.Parse(input.JoinCode)
	if err != nil {
		return nil, fmt.Errorf("pairing.JoinCouple: %w", domain.ErrInvalidCode)
	}

	var (
		account domain.Account
		couple  domain.Couple
	)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.couples.GetByID(ctx, coupleID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("pairing.JoinCouple: %w", domain.ErrInvalidCode)
			}
			return err
		}
		if !c.IsOpen() {
			return fmt.Errorf("pairing.JoinCouple: %w", domain.ErrAlreadyPaired)
		}

		ident, err := s.ids.Create(ctx, input.Email, input.Password)
		if err != nil {
			return err
		}

		claimed, err := s.couples.ClaimPartner2(ctx, coupleID, ident.ID)
		if err != nil {
			return fmt.Errorf("claim partner slot: %w", err)
		}
		if !claimed {
			// Lost the race between the IsOpen check and the write.
			return fmt.Errorf("pairing.JoinCouple: %w", domain.ErrAlreadyPaired)
		}

		account = domain.Account{
			ID:       ident.ID,
			CoupleID: coupleID,
			Role:     domain.RolePartner2,
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("pairing.JoinCouple: %w", domain.ErrAlreadyPaired)
			}
			return fmt.Errorf("create account: %w", err)
		}

		couple = *c
		couple.Partner2ID = &ident.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "partner joined",
		"couple_id", couple.ID.String(), "identity_id", account.ID.String())

	return s.session(account, couple)
}

// Login authenticates an existing member and returns a fresh session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	ident, err := s.ids.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Identity exists but was never attached to a couple.
			return nil, fmt.Errorf("pairing.Login: %w", domain.ErrNotPaired)
		}
		return nil, err
	}

	couple, err := s.couples.GetByID(ctx, account.CoupleID)
	if err != nil {
		return nil, err
	}

	return s.session(*account, *couple)
}

// CurrentUser returns the calling member's pairing context. The identity is
// taken from the request context set by the auth middleware.
func (s *Service) CurrentUser(ctx context.Context) (*UserContext, error) {
	identityID, ok := ctxutil.IdentityIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("pairing.CurrentUser: %w", domain.ErrUnauthorized)
	}

	account, err := s.accounts.GetByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("pairing.CurrentUser: %w", domain.ErrNotPaired)
		}
		return nil, err
	}

	couple, err := s.couples.GetByID(ctx, account.CoupleID)
	if err != nil {
		return nil, err
	}

	return &UserContext{
		Account:  *account,
		Couple:   *couple,
		JoinCode: couple.ID.String(),
	}, nil
}

// UpdateSettings replaces the couple's shared settings. Either partner may
// change them; the change applies to both.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.Couple, error) {
	coupleID, ok := ctxutil.CoupleIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("pairing.UpdateSettings: %w", domain.ErrUnauthorized)
	}

	if !input.PresentationOrder.IsValid() {
		return nil, fmt.Errorf("%w: invalid presentation order %q",
			domain.ErrValidation, input.PresentationOrder)
	}
	if !input.GenderFilter.IsValid() {
		return nil, fmt.Errorf("%w: invalid gender filter %q",
			domain.ErrValidation, input.GenderFilter)
	}

	settings := domain.CoupleSettings{
		PresentationOrder: input.PresentationOrder,
		GenderFilter:      input.GenderFilter,
	}

	couple, err := s.couples.UpdateSettings(ctx, coupleID, settings, input.Nickname)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "settings updated",
		"couple_id", coupleID.String(),
		"order", settings.PresentationOrder.String(),
		"filter", settings.GenderFilter.String())

	return couple, nil
}

func (s *Service) session(account domain.Account, couple domain.Couple) (*Session, error) {
	token, err := s.tokens.GenerateAccessToken(auth.Claims{
		IdentityID: account.ID,
		CoupleID:   couple.ID,
		Role:       account.Role.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, Account: account, Couple: couple}, nil
}

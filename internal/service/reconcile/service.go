// Package reconcile implements the swipe workflow: building each member's
// queue, recording decisions, and deriving the couple's matches.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nafnapp-backend/internal/domain"
	"github.com/heartmarshall/nafnapp-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . nameRepo preferenceRepo coupleRepo

type nameRepo interface {
	List(ctx context.Context, filter domain.GenderFilter) ([]domain.Name, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Name, error)
}

type preferenceRepo interface {
	Get(ctx context.Context, coupleID, nameID uuid.UUID) (*domain.PreferenceRecord, error)
	UpsertDecision(ctx context.Context, coupleID, nameID uuid.UUID, role domain.Role, decision domain.Decision) (*domain.PreferenceRecord, error)
	ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]domain.PreferenceRecord, error)
}

type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
}

// Match is a name both members approved.
type Match struct {
	Name      domain.Name
	MatchedAt time.Time
}

// Like is a name the calling member approved. Match is set when the partner
// approved it too.
type Like struct {
	Name  domain.Name
	Match bool
}

// DecideResult reports the outcome of recording a decision. NewMatch is set
// when this decision completed a mutual approval that was not one before,
// which is the moment a client should celebrate.
type DecideResult struct {
	Record   domain.PreferenceRecord
	NewMatch bool
}

// Service reconciles both members' decisions over the shared catalog.
type Service struct {
	log     *slog.Logger
	names   nameRepo
	prefs   preferenceRepo
	couples coupleRepo

	// newRNG supplies the shuffle source; tests pin it for determinism.
	newRNG func() *rand.Rand
}

// New creates a reconciliation service.
func New(log *slog.Logger, names nameRepo, prefs preferenceRepo, couples coupleRepo) *Service {
	return &Service{
		log:     log.With("service", "reconcile"),
		names:   names,
		prefs:   prefs,
		couples: couples,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Queue returns the catalog names the calling member has not decided on
// yet, narrowed by the couple's gender filter and arranged by its
// presentation order. The two members' queues are independent: one
// member's decisions never remove names from the other's queue.
func (s *Service) Queue(ctx context.Context) ([]domain.Name, error) {
	coupleID, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	couple, err := s.couples.GetByID(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	names, err := s.names.List(ctx, couple.Settings.GenderFilter)
	if err != nil {
		return nil, err
	}

	decided, err := s.decidedSet(ctx, coupleID, role)
	if err != nil {
		return nil, err
	}

	queue := make([]domain.Name, 0, len(names))
	for _, n := range names {
		if !decided[n.ID] {
			queue = append(queue, n)
		}
	}

	switch couple.Settings.PresentationOrder {
	case domain.OrderShuffled:
		shuffle(queue, s.newRNG())
	default:
		sortIcelandic(queue)
	}

	return queue, nil
}

// Decide records the calling member's decision on a name. Decisions are
// idempotent and revisable: a member may flip APPROVED to REJECTED or back
// at any time, and may retract with UNDECIDED.
func (s *Service) Decide(ctx context.Context, nameID uuid.UUID, decision domain.Decision) (*DecideResult, error) {
	coupleID, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if !decision.IsValid() {
		return nil, fmt.Errorf("%w: invalid decision %q", domain.ErrValidation, decision)
	}

	if _, err := s.names.GetByID(ctx, nameID); err != nil {
		return nil, err
	}

	prior, err := s.prefs.Get(ctx, coupleID, nameID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	newMatch := domain.IsNewMatch(prior, role, decision)

	record, err := s.prefs.UpsertDecision(ctx, coupleID, nameID, role, decision)
	if err != nil {
		return nil, err
	}

	if newMatch {
		s.log.InfoContext(ctx, "new match",
			"couple_id", coupleID.String(), "name_id", nameID.String())
	}

	return &DecideResult{Record: *record, NewMatch: newMatch}, nil
}

// Matches returns the names both members approved, in Icelandic collation
// order. Flipping a decision away from APPROVED removes the match; flipping
// back restores it.
func (s *Service) Matches(ctx context.Context) ([]Match, error) {
	coupleID, _, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.prefs.ListByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	matchedAt := make(map[uuid.UUID]time.Time)
	for i := range records {
		if records[i].IsMatch() {
			matchedAt[records[i].NameID] = records[i].UpdatedAt
		}
	}
	if len(matchedAt) == 0 {
		return []Match{}, nil
	}

	names, err := s.resolveNames(ctx, matchedAt)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(names))
	for _, n := range names {
		matches = append(matches, Match{Name: n, MatchedAt: matchedAt[n.ID]})
	}
	return matches, nil
}

// Likes returns the names the calling member approved, regardless of what
// their partner thinks, in Icelandic collation order. Names the partner also
// approved carry the Match flag.
func (s *Service) Likes(ctx context.Context) ([]Like, error) {
	coupleID, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.prefs.ListByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	liked := make(map[uuid.UUID]time.Time)
	matched := make(map[uuid.UUID]bool)
	for i := range records {
		if records[i].DecisionFor(role) == domain.DecisionApproved {
			liked[records[i].NameID] = records[i].UpdatedAt
			matched[records[i].NameID] = records[i].IsMatch()
		}
	}
	if len(liked) == 0 {
		return []Like{}, nil
	}

	names, err := s.resolveNames(ctx, liked)
	if err != nil {
		return nil, err
	}

	likes := make([]Like, 0, len(names))
	for _, n := range names {
		likes = append(likes, Like{Name: n, Match: matched[n.ID]})
	}
	return likes, nil
}

// resolveNames maps a set of name IDs back to catalog names, sorted with
// Icelandic collation. The full catalog is fetched once instead of a query
// per ID.
func (s *Service) resolveNames(ctx context.Context, ids map[uuid.UUID]time.Time) ([]domain.Name, error) {
	all, err := s.names.List(ctx, domain.FilterAll)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Name, 0, len(ids))
	for _, n := range all {
		if _, ok := ids[n.ID]; ok {
			out = append(out, n)
		}
	}
	sortIcelandic(out)
	return out, nil
}

func (s *Service) decidedSet(ctx context.Context, coupleID uuid.UUID, role domain.Role) (map[uuid.UUID]bool, error) {
	records, err := s.prefs.ListByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	decided := make(map[uuid.UUID]bool, len(records))
	for i := range records {
		if records[i].DecisionFor(role).IsDecided() {
			decided[records[i].NameID] = true
		}
	}
	return decided, nil
}

func callerFromCtx(ctx context.Context) (uuid.UUID, domain.Role, error) {
	coupleID, ok := ctxutil.CoupleIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", fmt.Errorf("reconcile: %w", domain.ErrUnauthorized)
	}
	roleStr, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", fmt.Errorf("reconcile: %w", domain.ErrUnauthorized)
	}
	role := domain.Role(roleStr)
	if !role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("reconcile: %w", domain.ErrUnauthorized)
	}
	return coupleID, role, nil
}

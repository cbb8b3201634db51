package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nafnapp-backend/internal/domain"
	"github.com/heartmarshall/nafnapp-backend/internal/service/reconcile"
)

// swipeService defines the minimal interface needed by NamesHandler.
type swipeService interface {
	Queue(ctx context.Context) ([]domain.Name, error)
	Decide(ctx context.Context, nameID uuid.UUID, decision domain.Decision) (*reconcile.DecideResult, error)
	Matches(ctx context.Context) ([]reconcile.Match, error)
	Likes(ctx context.Context) ([]reconcile.Like, error)
}

// NamesHandler serves the swipe endpoints: queue, decisions, matches and
// personal likes.
type NamesHandler struct {
	svc swipeService
	log *slog.Logger
}

// NewNamesHandler creates a NamesHandler.
func NewNamesHandler(svc swipeService, logger *slog.Logger) *NamesHandler {
	return &NamesHandler{svc: svc, log: logger.With("handler", "names")}
}

type nameView struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Gender  string  `json:"gender"`
	Meaning *string `json:"meaning,omitempty"`
}

type queueResponse struct {
	Names []nameView `json:"names"`
	Total int        `json:"total"`
}

type decideRequest struct {
	Decision string `json:"decision"`
}

type decideResponse struct {
	NameID           string `json:"nameId"`
	Partner1Decision string `json:"partner1Decision"`
	Partner2Decision string `json:"partner2Decision"`
	Match            bool   `json:"match"`
	NewMatch         bool   `json:"newMatch"`
}

type matchView struct {
	Name      nameView  `json:"name"`
	MatchedAt time.Time `json:"matchedAt"`
}

type matchesResponse struct {
	Matches []matchView `json:"matches"`
	Total   int         `json:"total"`
}

type likeView struct {
	Name  nameView `json:"name"`
	Match bool     `json:"match"`
}

type likesResponse struct {
	Likes []likeView `json:"likes"`
	Total int        `json:"total"`
}

// Queue handles GET /api/v1/names/queue.
func (h *NamesHandler) Queue(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Queue(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, queueResponse{
		Names: toNameViews(names),
		Total: len(names),
	})
}

// Decide handles POST /api/v1/names/{nameID}/decision.
func (h *NamesHandler) Decide(w http.ResponseWriter, r *http.Request) {
	nameID, err := uuid.Parse(r.PathValue("nameID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid name id")
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Decide(r.Context(), nameID, domain.Decision(req.Decision))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, decideResponse{
		NameID:           result.Record.NameID.String(),
		Partner1Decision: result.Record.Partner1Decision.String(),
		Partner2Decision: result.Record.Partner2Decision.String(),
		Match:            result.Record.IsMatch(),
		NewMatch:         result.NewMatch,
	})
}

// Matches handles GET /api/v1/names/matches.
func (h *NamesHandler) Matches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.svc.Matches(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views := make([]matchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, matchView{
			Name:      toNameView(m.Name),
			MatchedAt: m.MatchedAt,
		})
	}

	writeJSON(w, http.StatusOK, matchesResponse{Matches: views, Total: len(views)})
}

// Likes handles GET /api/v1/names/likes.
func (h *NamesHandler) Likes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.svc.Likes(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views := make([]likeView, 0, len(likes))
	for _, l := range likes {
		views = append(views, likeView{
			Name:  toNameView(l.Name),
			Match: l.Match,
		})
	}

	writeJSON(w, http.StatusOK, likesResponse{Likes: views, Total: len(views)})
}

func toNameView(n domain.Name) nameView {
	return nameView{
		ID:      n.ID.String(),
		Name:    n.Name,
		Gender:  n.Gender.String(),
		Meaning: n.Meaning,
	}
}

func toNameViews(names []domain.Name) []nameView {
	views := make([]nameView, 0, len(names))
	for _, n := range names {
		views = append(views, toNameView(n))
	}
	return views
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/nafnapp-backend/internal/domain"
	"github.com/heartmarshall/nafnapp-backend/internal/service/pairing"
)

// pairingService defines the minimal interface needed by PairingHandler.
type pairingService interface {
	CreateCouple(ctx context.Context, input pairing.CreateCoupleInput) (*pairing.Session, error)
	JoinCouple(ctx context.Context, input pairing.JoinCoupleInput) (*pairing.Session, error)
	Login(ctx context.Context, email, password string) (*pairing.Session, error)
	CurrentUser(ctx context.Context) (*pairing.UserContext, error)
	UpdateSettings(ctx context.Context, input pairing.UpdateSettingsInput) (*domain.Couple, error)
}

// PairingHandler serves couple and session endpoints.
type PairingHandler struct {
	svc pairingService
	log *slog.Logger
}

// NewPairingHandler creates a PairingHandler.
func NewPairingHandler(svc pairingService, logger *slog.Logger) *PairingHandler {
	return &PairingHandler{svc: svc, log: logger.With("handler", "pairing")}
}

type createCoupleRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Nickname string        `json:"nickname"`
	Settings *settingsView `json:"settings,omitempty"`
}

type joinCoupleRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	JoinCode string `json:"joinCode"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateSettingsRequest struct {
	PresentationOrder string  `json:"presentationOrder"`
	GenderFilter      string  `json:"genderFilter"`
	Nickname          *string `json:"nickname,omitempty"`
}

type sessionResponse struct {
	AccessToken string         `json:"accessToken"`
	Account     accountView    `json:"account"`
	Couple      coupleResponse `json:"couple"`
}

type accountView struct {
	ID       string `json:"id"`
	CoupleID string `json:"coupleId"`
	Role     string `json:"role"`
}

type coupleResponse struct {
	ID        string       `json:"id"`
	Nickname  string       `json:"nickname,omitempty"`
	JoinCode  string       `json:"joinCode"`
	Complete  bool         `json:"complete"`
	Settings  settingsView `json:"settings"`
	CreatedAt time.Time    `json:"createdAt"`
}

type settingsView struct {
	PresentationOrder string `json:"presentationOrder"`
	GenderFilter      string `json:"genderFilter"`
}

type meResponse struct {
	Account accountView    `json:"account"`
	Couple  coupleResponse `json:"couple"`
}

// CreateCouple handles POST /api/v1/couples.
func (h *PairingHandler) CreateCouple(w http.ResponseWriter, r *http.Request) {
	var req createCoupleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := pairing.CreateCoupleInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	}
	if req.Settings != nil {
		input.Settings = &domain.CoupleSettings{
			PresentationOrder: domain.PresentationOrder(req.Settings.PresentationOrder),
			GenderFilter:      domain.GenderFilter(req.Settings.GenderFilter),
		}
	}

	sess, err := h.svc.CreateCouple(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// JoinCouple handles POST /api/v1/couples/join.
func (h *PairingHandler) JoinCouple(w http.ResponseWriter, r *http.Request) {
	var req joinCoupleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.svc.JoinCouple(r.Context(), pairing.JoinCoupleInput{
		Email:    req.Email,
		Password: req.Password,
		JoinCode: req.JoinCode,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// Login handles POST /api/v1/auth/login.
func (h *PairingHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// Me handles GET /api/v1/me.
func (h *PairingHandler) Me(w http.ResponseWriter, r *http.Request) {
	uc, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		Account: toAccountView(uc.Account),
		Couple:  toCoupleResponse(uc.Couple),
	})
}

// UpdateSettings handles PUT /api/v1/couples/settings.
func (h *PairingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	couple, err := h.svc.UpdateSettings(r.Context(), pairing.UpdateSettingsInput{
		PresentationOrder: domain.PresentationOrder(req.PresentationOrder),
		GenderFilter:      domain.GenderFilter(req.GenderFilter),
		Nickname:          req.Nickname,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCoupleResponse(*couple))
}

func toSessionResponse(sess *pairing.Session) sessionResponse {
	return sessionResponse{
		AccessToken: sess.Token,
		Account:     toAccountView(sess.Account),
		Couple:      toCoupleResponse(sess.Couple),
	}
}

func toAccountView(a domain.Account) accountView {
	return accountView{
		ID:       a.ID.String(),
		CoupleID: a.CoupleID.String(),
		Role:     a.Role.String(),
	}
}

func toCoupleResponse(c domain.Couple) coupleResponse {
	return coupleResponse{
		ID:       c.ID.String(),
		Nickname: c.Nickname,
		JoinCode: c.ID.String(),
		Complete: !c.IsOpen(),
		Settings: settingsView{
			PresentationOrder: c.Settings.PresentationOrder.String(),
			GenderFilter:      c.Settings.GenderFilter.String(),
		},
		CreatedAt: c.CreatedAt,
	}
}

package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nafnapp-backend/internal/config"
	"github.com/heartmarshall/nafnapp-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Pairing   *PairingHandler
	Names     *NamesHandler
	Health    *HealthHandler
	Auth      middleware.Middleware
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit middleware.Middleware
}

// NewRouter builds the HTTP handler: probes stay outside the common
// middleware chain, API routes go through request-id, logging, recovery,
// CORS, rate limiting and token parsing, and everything except the three
// entry points additionally requires a valid session.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)

	api := http.NewServeMux()

	// Entry points reachable without a session.
	api.HandleFunc("POST /api/v1/couples", deps.Pairing.CreateCouple)
	api.HandleFunc("POST /api/v1/couples/join", deps.Pairing.JoinCouple)
	api.HandleFunc("POST /api/v1/auth/login", deps.Pairing.Login)

	// Everything below needs an authenticated member.
	api.Handle("GET /api/v1/me", middleware.RequireAuth(http.HandlerFunc(deps.Pairing.Me)))
	api.Handle("PUT /api/v1/couples/settings", middleware.RequireAuth(http.HandlerFunc(deps.Pairing.UpdateSettings)))
	api.Handle("GET /api/v1/names/queue", middleware.RequireAuth(http.HandlerFunc(deps.Names.Queue)))
	api.Handle("POST /api/v1/names/{nameID}/decision", middleware.RequireAuth(http.HandlerFunc(deps.Names.Decide)))
	api.Handle("GET /api/v1/names/matches", middleware.RequireAuth(http.HandlerFunc(deps.Names.Matches)))
	api.Handle("GET /api/v1/names/likes", middleware.RequireAuth(http.HandlerFunc(deps.Names.Likes)))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
		deps.RateLimit,
		deps.Auth,
	)

	mux.Handle("/api/v1/", chain(api))

	return mux
}

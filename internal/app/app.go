package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres"
	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres/accounts"
	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres/couples"
	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres/credentials"
	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres/names"
	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres/preferences"
	"github.com/heartmarshall/nafnapp-backend/internal/auth"
	"github.com/heartmarshall/nafnapp-backend/internal/config"
	"github.com/heartmarshall/nafnapp-backend/internal/identity"
	"github.com/heartmarshall/nafnapp-backend/internal/service/catalog"
	"github.com/heartmarshall/nafnapp-backend/internal/service/pairing"
	"github.com/heartmarshall/nafnapp-backend/internal/service/reconcile"
	"github.com/heartmarshall/nafnapp-backend/internal/transport/middleware"
	"github.com/heartmarshall/nafnapp-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and the HTTP transport, and serves until
// the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	credentialRepo := credentials.New(pool)
	coupleRepo := couples.New(pool)
	accountRepo := accounts.New(pool)
	nameRepo := names.New(pool)
	preferenceRepo := preferences.New(pool)
	txManager := postgres.NewTxManager(pool)

	identityProvider := identity.NewLocalProvider(logger, credentialRepo,
		cfg.Auth.PasswordHashCost, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginWindow)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	catalogService := catalog.New(logger, nameRepo, cfg.Catalog.SeedBatchSize)
	pairingService := pairing.New(logger, identityProvider, coupleRepo, accountRepo,
		txManager, jwtManager, catalogService, cfg.Catalog.SeedOnCreate)
	reconcileService := reconcile.New(logger, nameRepo, preferenceRepo, coupleRepo)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Pairing:   rest.NewPairingHandler(pairingService, logger),
		Names:     rest.NewNamesHandler(reconcileService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      middleware.Auth(jwtManager),
		Logger:    logger,
		CORS:      cfg.CORS,
		RateLimit: rateLimiter.Limit(cfg.Server.RatePerMinute),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

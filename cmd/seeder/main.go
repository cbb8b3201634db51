// Command seeder loads the built-in Icelandic name catalog into the
// database. It is safe to run repeatedly: names already present are left
// untouched. Intended for fresh environments and offline re-seeding, the
// server also seeds lazily when the first couple is created.
//
// Flags:
//
//	--force  insert missing names even when the catalog is non-empty
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres"
	"github.com/heartmarshall/nafnapp-backend/internal/adapter/postgres/names"
	"github.com/heartmarshall/nafnapp-backend/internal/app"
	"github.com/heartmarshall/nafnapp-backend/internal/catalogdata"
	"github.com/heartmarshall/nafnapp-backend/internal/config"
	"github.com/heartmarshall/nafnapp-backend/internal/service/catalog"
)

func main() {
	forceFlag := flag.Bool("force", false, "insert missing names even when the catalog is non-empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			logger.Error("run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.New(logger, names.New(pool), cfg.Catalog.SeedBatchSize)

	seed := svc.EnsureSeeded
	if *forceFlag {
		seed = func(ctx context.Context) (int64, error) {
			return svc.Seed(ctx, catalogdata.Names())
		}
	}

	inserted, err := seed(ctx)
	if err != nil {
		logger.Error("seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("catalog ready", slog.Int64("inserted", inserted))
}

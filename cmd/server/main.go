// Command server runs the HTTP API. Configuration comes from a YAML file
// (CONFIG_PATH, default config.yaml) with environment variable overrides.
// The process stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/nafnapp-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

// Command server runs the SEO scan backend HTTP API.
//
// Configuration is read from config.yaml (CONFIG_PATH overrides the
// location) and environment variables; a local .env file is loaded if
// present.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/element-hunter/backend/internal/app"
)

func main() {
	// Best-effort: a missing .env is fine in production.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("application error: %v", err)
		os.Exit(1)
	}
}

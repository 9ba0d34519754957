// Command cleanup-tokens sweeps the refresh_tokens table, removing rows
// that are expired or were revoked by logout. Intended to run on a cron
// schedule next to the server.
//
// Usage:
//
//	cleanup-tokens
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	tokenrepo "github.com/element-hunter/backend/internal/adapter/postgres/token"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	deleted, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("sweep refresh tokens: %v", err)
	}

	fmt.Printf("Removed %d expired/revoked refresh tokens.\n", deleted)
}

// Command populate-tokens backfills API tokens for users created before
// token issuance existed. Users that already have a token are left alone.
//
// Usage:
//
//	populate-tokens
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

	userrepo "github.com/element-hunter/backend/internal/adapter/postgres/user"
	"github.com/element-hunter/backend/internal/auth"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo := userrepo.New(pool)

	ids, err := repo.ListWithoutAPIToken(ctx)
	if err != nil {
		log.Fatalf("list users without api token: %v", err)
	}

	var updated int
	for _, id := range ids {
		token, err := auth.NewAPIToken()
		if err != nil {
			log.Fatalf("generate api token: %v", err)
		}
		if _, err := repo.UpdateAPIToken(ctx, id, token); err != nil {
			log.Fatalf("update api token for user %s: %v", id, err)
		}
		updated++
	}

	fmt.Printf("Populated API tokens for %d users.\n", updated)
}

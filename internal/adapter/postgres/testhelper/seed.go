package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/element-hunter/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a bcrypt-free placeholder password hash and a
// unique API token. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "hash-" + suffix,
		APIToken:     "api-token-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, api_token, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.APIToken, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedScan creates a scan for the given user with a small but realistic
// payload. Returns a filled domain.Scan.
func SeedScan(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Scan {
	t.Helper()
	return SeedScanWithPayload(t, pool, userID, map[string]any{
		"meta": map[string]any{
			"title":       "Seed Page " + uniqueSuffix(),
			"description": "A seeded page",
		},
		"links": map[string]any{"internal": 2, "external": 1},
	})
}

// SeedScanWithPayload creates a scan for the given user with the given payload.
func SeedScanWithPayload(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, payload any) domain.Scan {
	t.Helper()
	ctx := context.Background()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("testhelper: SeedScanWithPayload marshal payload: %v", err)
	}

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	scan := domain.Scan{
		ID:        uuid.New(),
		UserID:    userID,
		URL:       "https://example.com/page-" + suffix,
		Data:      raw,
		CreatedAt: now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO scans (id, user_id, url, data, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		scan.ID, scan.UserID, scan.URL, scan.Data, scan.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScanWithPayload insert scan: %v", err)
	}

	return scan
}

// SeedFolder creates a folder for the given user. Returns a filled domain.Folder.
func SeedFolder(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Folder {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	folder := domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Folder " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO folders (id, user_id, name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		folder.ID, folder.UserID, folder.Name, folder.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder insert folder: %v", err)
	}

	return folder
}

// SeedMembership attaches a scan to a folder directly.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, folderID, scanID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO folder_scans (folder_id, scan_id) VALUES ($1, $2)`,
		folderID, scanID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership insert folder_scan: %v", err)
	}
}

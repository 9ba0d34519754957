// Package scan implements the Scan repository using PostgreSQL.
package scan

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/element-hunter/backend/internal/adapter/postgres"
	"github.com/element-hunter/backend/internal/domain"
)

// Repo provides scan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new scan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const createScanSQL = `
INSERT INTO scans (id, user_id, url, data, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, url, data, created_at`

const getScanByIDSQL = `
SELECT id, user_id, url, data, created_at
FROM scans
WHERE id = $1 AND user_id = $2`

const filterOwnedIDsSQL = `
SELECT id FROM scans WHERE user_id = $1 AND id = ANY($2::uuid[])`

// Create inserts a new scan and returns the persisted domain.Scan.
func (r *Repo) Create(ctx context.Context, s *domain.Scan) (*domain.Scan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Scan
	err := q.QueryRow(ctx, createScanSQL, s.ID, s.UserID, s.URL, s.Data, s.CreatedAt).
		Scan(&created.ID, &created.UserID, &created.URL, &created.Data, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "scan", s.ID)
	}

	return &created, nil
}

// GetByID returns a scan by primary key with user_id filter.
// Returns domain.ErrNotFound if the scan does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, scanID uuid.UUID) (*domain.Scan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Scan
	err := q.QueryRow(ctx, getScanByIDSQL, scanID, userID).
		Scan(&s.ID, &s.UserID, &s.URL, &s.Data, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "scan", scanID)
	}

	return &s, nil
}

// List returns the user's scans, newest first, optionally filtered to one
// folder. Returns an empty slice (not nil) when the user has no scans.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, limit, offset int) ([]*domain.Scan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sb := builder.
		Select("s.id", "s.user_id", "s.url", "s.data", "s.created_at").
		From("scans s").
		Where(squirrel.Eq{"s.user_id": userID}).
		OrderBy("s.created_at DESC")

	if folderID != nil {
		sb = sb.
			Join("folder_scans fs ON fs.scan_id = s.id").
			Where(squirrel.Eq{"fs.folder_id": *folderID})
	}
	if limit > 0 {
		sb = sb.Limit(uint64(limit))
	}
	if offset > 0 {
		sb = sb.Offset(uint64(offset))
	}

	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list scans query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	scans, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}

	return scans, nil
}

// FilterOwnedIDs returns the subset of the given scan IDs owned by the user.
// IDs that do not exist or belong to another user are silently dropped.
func (r *Repo) FilterOwnedIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, filterOwnedIDsSQL, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("filter owned scan ids: %w", err)
	}
	defer rows.Close()

	owned := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		owned = append(owned, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("filter owned scan ids: %w", err)
	}

	return owned, nil
}

func scanRows(rows pgx.Rows) ([]*domain.Scan, error) {
	scans := []*domain.Scan{}
	for rows.Next() {
		var s domain.Scan
		if err := rows.Scan(&s.ID, &s.UserID, &s.URL, &s.Data, &s.CreatedAt); err != nil {
			return nil, err
		}
		scans = append(scans, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scans, nil
}

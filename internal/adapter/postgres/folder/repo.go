// Package folder implements the Folder repository using PostgreSQL.
// It provides CRUD operations for user folders and M2M scan membership
// via the folder_scans join table.
package folder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/element-hunter/backend/internal/adapter/postgres"
	"github.com/element-hunter/backend/internal/domain"
)

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new folder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createFolderSQL = `
INSERT INTO folders (id, user_id, name, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, name, created_at`

const getFolderByIDSQL = `
SELECT id, user_id, name, created_at
FROM folders
WHERE id = $1 AND user_id = $2`

const listFoldersSQL = `
SELECT id, user_id, name, created_at
FROM folders
WHERE user_id = $1
ORDER BY name ASC, created_at DESC`

const listMembershipsSQL = `
SELECT fs.folder_id, s.id, s.user_id, s.url, s.data, s.created_at
FROM folder_scans fs
JOIN folders f ON f.id = fs.folder_id
JOIN scans s ON s.id = fs.scan_id
WHERE f.user_id = $1
ORDER BY fs.folder_id, s.created_at DESC`

const deleteFolderSQL = `DELETE FROM folders WHERE id = $1 AND user_id = $2`

const deleteMembershipsSQL = `DELETE FROM folder_scans WHERE folder_id = $1`

const attachScansSQL = `
INSERT INTO folder_scans (folder_id, scan_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

const detachScanSQL = `DELETE FROM folder_scans WHERE folder_id = $1 AND scan_id = $2`

// Create inserts a new folder and returns the persisted domain.Folder.
// Folder names are not unique; duplicates are allowed.
func (r *Repo) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Folder
	err := q.QueryRow(ctx, createFolderSQL, f.ID, f.UserID, f.Name, f.CreatedAt).
		Scan(&created.ID, &created.UserID, &created.Name, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "folder", f.ID)
	}

	return &created, nil
}

// GetByID returns a folder by primary key with user_id filter.
// Returns domain.ErrNotFound if the folder does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var f domain.Folder
	err := q.QueryRow(ctx, getFolderByIDSQL, folderID, userID).
		Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "folder", folderID)
	}

	return &f, nil
}

// ListWithScans returns all of the user's folders ordered by name, each with
// its member scans attached (newest scan first). Folders without scans carry
// an empty (non-nil) Scans slice.
func (r *Repo) ListWithScans(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listFoldersSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	folders := []*domain.Folder{}
	byID := map[uuid.UUID]*domain.Folder{}
	for rows.Next() {
		var f domain.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		f.Scans = []domain.Scan{}
		folders = append(folders, &f)
		byID[f.ID] = &f
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list folders: %w", err)
	}
	rows.Close()

	if len(folders) == 0 {
		return folders, nil
	}

	memberRows, err := q.Query(ctx, listMembershipsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list folder memberships: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var folderID uuid.UUID
		var s domain.Scan
		if err := memberRows.Scan(&folderID, &s.ID, &s.UserID, &s.URL, &s.Data, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan folder membership: %w", err)
		}
		if f, ok := byID[folderID]; ok {
			f.Scans = append(f.Scans, s)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("list folder memberships: %w", err)
	}

	return folders, nil
}

// Delete removes a folder.
// Returns domain.ErrNotFound if the folder does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteFolderSQL, folderID, userID)
	if err != nil {
		return postgres.MapError(err, "folder", folderID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}

	return nil
}

// DeleteMemberships removes all scan memberships of a folder.
// The scans themselves are not affected.
func (r *Repo) DeleteMemberships(ctx context.Context, folderID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteMembershipsSQL, folderID); err != nil {
		return postgres.MapError(err, "folder_scan", folderID)
	}

	return nil
}

// AttachScans creates M2M memberships between the folder and the given scans.
// Returns the number of new memberships (existing pairs are skipped via
// ON CONFLICT DO NOTHING).
func (r *Repo) AttachScans(ctx context.Context, folderID uuid.UUID, scanIDs []uuid.UUID) (int, error) {
	if len(scanIDs) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, attachScansSQL, folderID, scanIDs)
	if err != nil {
		return 0, postgres.MapError(err, "folder_scan", folderID)
	}

	return int(tag.RowsAffected()), nil
}

// DetachScan removes the membership between the folder and the scan.
// Returns the number of rows removed (0 when the membership did not exist).
func (r *Repo) DetachScan(ctx context.Context, folderID, scanID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, detachScanSQL, folderID, scanID)
	if err != nil {
		return 0, postgres.MapError(err, "folder_scan", folderID)
	}

	return int(tag.RowsAffected()), nil
}

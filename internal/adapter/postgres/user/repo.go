// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/element-hunter/backend/internal/adapter/postgres"
	"github.com/element-hunter/backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, password_hash, api_token, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (id, email, name, password_hash, api_token, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const getUserByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const getUserByAPITokenSQL = `SELECT ` + userColumns + ` FROM users WHERE api_token = $1`

const updateAPITokenSQL = `
UPDATE users SET api_token = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const listWithoutAPITokenSQL = `SELECT id FROM users WHERE api_token IS NULL`

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the email is already registered.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createUserSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, apiTokenToPg(u.APIToken), u.CreatedAt, u.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// GetByAPIToken returns the user owning the given extension API token.
// Returns domain.ErrNotFound for unknown tokens.
func (r *Repo) GetByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByAPITokenSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// UpdateAPIToken replaces the user's extension API token.
func (r *Repo) UpdateAPIToken(ctx context.Context, userID uuid.UUID, token string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateAPITokenSQL, userID, apiTokenToPg(token)))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// ListWithoutAPIToken returns IDs of users that have no extension API token.
func (r *Repo) ListWithoutAPIToken(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listWithoutAPITokenSQL)
	if err != nil {
		return nil, fmt.Errorf("list users without api token: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users without api token: %w", err)
	}

	return ids, nil
}

// rowScanner is satisfied by pgx.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one user row. api_token is NULL for legacy accounts that
// have not been issued a token yet; it maps to the empty string.
func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var token pgtype.Text

	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &token, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if token.Valid {
		u.APIToken = token.String
	}

	return &u, nil
}

// apiTokenToPg maps an empty token to NULL so the unique index allows many
// users without a token.
func apiTokenToPg(token string) pgtype.Text {
	if token == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: token, Valid: true}
}

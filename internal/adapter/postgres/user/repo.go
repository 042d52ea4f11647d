// Package user implements the credential store backed by PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tcpchat/internal/adapter/postgres"
	"github.com/heartmarshall/tcpchat/internal/domain"
)

var userColumns = []string{"id", "username", "password_hash", "auth_token", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// ListIDs returns the IDs of every registered user.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Select("id").
		From("users").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user. A taken username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert("users").
		Columns("id", "username", "password_hash", "auth_token").
		Values(u.ID, u.Username, u.PasswordHash, u.AuthToken).
		Suffix("RETURNING id, username, password_hash, auth_token, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateAuthToken replaces the stored token of a user.
func (r *Repo) UpdateAuthToken(ctx context.Context, id uuid.UUID, token string) error {
	sql, args, err := postgres.Builder().
		Update("users").
		Set("auth_token", token).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update token: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query sq.SelectBuilder) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}
	return scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.AuthToken, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

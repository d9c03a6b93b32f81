// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/casetrack-backend/internal/adapter/postgres"
	"github.com/dicri/casetrack-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL. Role names are
// resolved through the roles catalog table on every read.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var userColumns = []string{
	"u.id", "u.first_name", "u.last_name", "u.email", "u.username",
	"u.password_hash", "r.name", "u.active", "u.created_at", "u.updated_at",
}

func selectUsers() sq.SelectBuilder {
	return postgres.Builder().
		Select(userColumns...).
		From("users u").
		Join("roles r ON r.id = u.role_id")
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectUsers().Where(sq.Eq{"u.id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByUsername returns a user by login name.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectUsers().Where(sq.Eq{"u.username": username}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// The role name is resolved against the roles catalog; an unknown role
// surfaces as a foreign key violation mapped to ErrNotFound.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
INSERT INTO users (first_name, last_name, email, username, password_hash, role_id, active)
VALUES ($1, $2, $3, $4, $5, (SELECT id FROM roles WHERE name = $6), $7)
RETURNING id, created_at, updated_at`

	created := *u
	err := q.QueryRow(ctx, sql,
		u.FirstName, u.LastName, u.Email, u.Username,
		u.PasswordHash, u.Role.String(), u.Active,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	return &created, nil
}

// SetActive flips the active flag for a user.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE users SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id.String())
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role pgtype.Text
	)
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Username,
		&u.PasswordHash, &role, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role.String)
	return &u, nil
}

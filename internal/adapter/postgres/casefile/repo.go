// Package casefile implements the Case repository using PostgreSQL.
// State transitions are conditional updates so concurrent submissions are
// resolved by the database, not by in-process locking.
package casefile

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

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new case repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var snapshotColumns = []string{
	"c.id", "c.case_number", "c.title", "c.description", "c.incident_at",
	"c.incident_location", "c.technician_id", "c.state", "c.created_at", "c.updated_at",
	"u.first_name || ' ' || u.last_name AS technician_name",
	"s.label", "s.color",
	"(SELECT count(*) FROM evidence_items e WHERE e.case_id = c.id) AS evidence_count",
}

func selectSnapshots() sq.SelectBuilder {
	return postgres.Builder().
		Select(snapshotColumns...).
		From("cases c").
		Join("users u ON u.id = c.technician_id").
		Join("case_states s ON s.code = c.state")
}

// Create inserts a new case in the Registering state and returns the
// persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
INSERT INTO cases (case_number, title, description, incident_at, incident_location, technician_id, state)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`

	created := *c
	created.State = domain.CaseStateRegistering
	err := q.QueryRow(ctx, sql,
		c.CaseNumber, c.Title, c.Description, c.IncidentAt,
		c.IncidentLocation, c.TechnicianID, domain.CaseStateRegistering.String(),
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "case", c.CaseNumber)
	}

	return &created, nil
}

// GetByID returns the bare case row, without denormalized fields.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
SELECT id, case_number, title, description, incident_at, incident_location,
       technician_id, state, created_at, updated_at
FROM cases WHERE id = $1`

	var (
		c        domain.Case
		desc     pgtype.Text
		location pgtype.Text
		state    string
	)
	err := q.QueryRow(ctx, sql, id).Scan(
		&c.ID, &c.CaseNumber, &c.Title, &desc, &c.IncidentAt, &location,
		&c.TechnicianID, &state, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "case", id.String())
	}

	c.Description = textToPtr(desc)
	c.IncidentLocation = textToPtr(location)
	c.State = domain.CaseState(state)
	return &c, nil
}

// GetSnapshot returns a case with technician name, state label/color
// and evidence count.
func (r *Repo) GetSnapshot(ctx context.Context, id uuid.UUID) (*domain.CaseSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectSnapshots().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "case", id.String())
	}

	snap, err := scanSnapshot(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "case", id.String())
	}
	return snap, nil
}

// List returns case snapshots matching all supplied filters, newest first.
func (r *Repo) List(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := selectSnapshots().OrderBy("c.created_at DESC")
	if filter.State != nil {
		query = query.Where(sq.Eq{"c.state": filter.State.String()})
	}
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"c.incident_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(sq.LtOrEq{"c.incident_at": *filter.To})
	}
	if filter.TechnicianID != nil {
		query = query.Where(sq.Eq{"c.technician_id": *filter.TechnicianID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "case", "list")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "case", "list")
	}
	defer rows.Close()

	var result []domain.CaseSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, postgres.MapError(err, "case", "list")
		}
		result = append(result, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "case", "list")
	}

	return result, nil
}

// UpdateState performs the conditional transition from → to. It reports
// false when no row changed, which means the case is absent or its current
// state differs from the expected one; the caller disambiguates.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, from, to domain.CaseState) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE cases SET state = $3, updated_at = now() WHERE id = $1 AND state = $2`,
		id, from.String(), to.String(),
	)
	if err != nil {
		return false, postgres.MapError(err, "case", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

func scanSnapshot(row pgx.Row) (*domain.CaseSnapshot, error) {
	var (
		snap     domain.CaseSnapshot
		desc     pgtype.Text
		location pgtype.Text
		state    string
	)
	err := row.Scan(
		&snap.ID, &snap.CaseNumber, &snap.Title, &desc, &snap.IncidentAt, &location,
		&snap.TechnicianID, &state, &snap.CreatedAt, &snap.UpdatedAt,
		&snap.TechnicianName, &snap.StateLabel, &snap.StateColor, &snap.EvidenceCount,
	)
	if err != nil {
		return nil, err
	}

	snap.Description = textToPtr(desc)
	snap.IncidentLocation = textToPtr(location)
	snap.State = domain.CaseState(state)
	return &snap, nil
}

func textToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// Package approval implements the Approval repository using PostgreSQL.
package approval

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/casetrack-backend/internal/adapter/postgres"
	"github.com/dicri/casetrack-backend/internal/domain"
)

// Repo provides approval decision persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new approval repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an approval decision. The lifecycle engine calls it inside
// the same transaction as the state transition, which keeps the
// one-decision-per-review-cycle invariant.
func (r *Repo) Create(ctx context.Context, a *domain.Approval) (*domain.Approval, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
INSERT INTO approvals (case_id, coordinator_id, approved, justification)
VALUES ($1, $2, $3, $4)
RETURNING id, decided_at`

	created := *a
	err := q.QueryRow(ctx, sql,
		a.CaseID, a.CoordinatorID, a.Approved, a.Justification,
	).Scan(&created.ID, &created.DecidedAt)
	if err != nil {
		return nil, postgres.MapError(err, "approval", a.CaseID.String())
	}

	return &created, nil
}

// ListByCase returns the decision history of a case, newest first.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ApprovalSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
SELECT a.id, a.case_id, a.coordinator_id, a.approved, a.justification, a.decided_at,
       u.first_name || ' ' || u.last_name AS coordinator_name
FROM approvals a
JOIN users u ON u.id = a.coordinator_id
WHERE a.case_id = $1
ORDER BY a.decided_at DESC`

	rows, err := q.Query(ctx, sql, caseID)
	if err != nil {
		return nil, postgres.MapError(err, "approval", caseID.String())
	}
	defer rows.Close()

	var result []domain.ApprovalSnapshot
	for rows.Next() {
		var (
			snap          domain.ApprovalSnapshot
			justification pgtype.Text
		)
		err := rows.Scan(
			&snap.ID, &snap.CaseID, &snap.CoordinatorID, &snap.Approved,
			&justification, &snap.DecidedAt, &snap.CoordinatorName,
		)
		if err != nil {
			return nil, postgres.MapError(err, "approval", caseID.String())
		}
		if justification.Valid {
			snap.Justification = &justification.String
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "approval", caseID.String())
	}

	return result, nil
}

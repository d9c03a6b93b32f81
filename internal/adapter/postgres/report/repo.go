// Package report implements the read-only reporting queries.
// Aggregations run as raw SQL; optional date bounds are passed as nullable
// parameters so a single statement covers every filter combination.
package report

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/casetrack-backend/internal/adapter/postgres"
	"github.com/dicri/casetrack-backend/internal/domain"
)

// Repo provides reporting aggregations backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const statsSQL = `
SELECT
    (SELECT count(*) FROM cases),
    (SELECT count(*) FROM evidence_items),
    (SELECT count(*) FROM users u JOIN roles r ON r.id = u.role_id
        WHERE r.name = 'Técnico' AND u.active),
    (SELECT count(*) FROM users u JOIN roles r ON r.id = u.role_id
        WHERE r.name = 'Coordinador' AND u.active),
    (SELECT count(*) FROM cases WHERE state = 'APPROVED'),
    (SELECT count(*) FROM cases WHERE state = 'REJECTED'),
    (SELECT count(*) FROM cases WHERE state = 'IN_REVIEW')`

// Stats returns the global dashboard counters.
func (r *Repo) Stats(ctx context.Context) (*domain.Stats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Stats
	err := q.QueryRow(ctx, statsSQL).Scan(
		&s.TotalCases, &s.TotalEvidence, &s.TotalTechnicians,
		&s.TotalCoordinators, &s.CasesApproved, &s.CasesRejected, &s.CasesInReview,
	)
	if err != nil {
		return nil, postgres.MapError(err, "report", "stats")
	}

	return &s, nil
}

const casesByStateSQL = `
SELECT s.label, s.color,
       count(c.id) AS cases,
       count(DISTINCT c.technician_id) AS technicians
FROM case_states s
LEFT JOIN cases c ON c.state = s.code
    AND ($1::timestamptz IS NULL OR c.created_at >= $1)
    AND ($2::timestamptz IS NULL OR c.created_at <= $2)
GROUP BY s.code, s.label, s.color
ORDER BY s.code`

// CasesByState returns one row per catalog state, including states with
// zero cases in the period.
func (r *Repo) CasesByState(ctx context.Context, period domain.ReportPeriod) ([]domain.StateBreakdownRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, casesByStateSQL, period.From, period.To)
	if err != nil {
		return nil, postgres.MapError(err, "report", "cases_by_state")
	}
	defer rows.Close()

	var result []domain.StateBreakdownRow
	for rows.Next() {
		var row domain.StateBreakdownRow
		if err := rows.Scan(&row.StateLabel, &row.StateColor, &row.Cases, &row.Technicians); err != nil {
			return nil, postgres.MapError(err, "report", "cases_by_state")
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "report", "cases_by_state")
	}

	return result, nil
}

const approvalOutcomesSQL = `
SELECT CASE WHEN a.approved THEN 'Aprobado' ELSE 'Rechazado' END AS outcome,
       count(*) AS total,
       count(DISTINCT a.coordinator_id) AS coordinators,
       COALESCE(avg(EXTRACT(EPOCH FROM (a.decided_at - c.created_at)) / 3600.0), 0) AS avg_review_hours
FROM approvals a
JOIN cases c ON c.id = a.case_id
WHERE ($1::timestamptz IS NULL OR a.decided_at >= $1)
  AND ($2::timestamptz IS NULL OR a.decided_at <= $2)
GROUP BY a.approved
ORDER BY outcome`

// ApprovalOutcomes returns the approvals/rejections breakdown for the period.
func (r *Repo) ApprovalOutcomes(ctx context.Context, period domain.ReportPeriod) ([]domain.OutcomeBreakdownRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, approvalOutcomesSQL, period.From, period.To)
	if err != nil {
		return nil, postgres.MapError(err, "report", "approval_outcomes")
	}
	defer rows.Close()

	var result []domain.OutcomeBreakdownRow
	for rows.Next() {
		var row domain.OutcomeBreakdownRow
		if err := rows.Scan(&row.Outcome, &row.Total, &row.Coordinators, &row.AvgReviewHours); err != nil {
			return nil, postgres.MapError(err, "report", "approval_outcomes")
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "report", "approval_outcomes")
	}

	return result, nil
}

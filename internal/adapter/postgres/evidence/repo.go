// Package evidence implements the EvidenceItem repository using PostgreSQL.
package evidence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/casetrack-backend/internal/adapter/postgres"
	"github.com/dicri/casetrack-backend/internal/domain"
)

// Repo provides evidence item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new evidence repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const snapshotSQL = `
SELECT e.id, e.case_id, e.item_number, e.object_name, e.description,
       e.color, e.size, e.weight, e.found_location, e.notes,
       e.technician_id, e.created_at, e.updated_at,
       u.first_name || ' ' || u.last_name AS technician_name
FROM evidence_items e
JOIN users u ON u.id = e.technician_id`

// Create inserts a new evidence item. A duplicate item number within the
// same case violates the per-case unique constraint and maps to
// ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item *domain.EvidenceItem) (*domain.EvidenceItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
INSERT INTO evidence_items
    (case_id, item_number, object_name, description, color, size, weight,
     found_location, notes, technician_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, created_at, updated_at`

	created := *item
	err := q.QueryRow(ctx, sql,
		item.CaseID, item.ItemNumber, item.ObjectName, item.Description,
		item.Color, item.Size, item.Weight, item.FoundLocation, item.Notes,
		item.TechnicianID,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "evidence_item", item.ItemNumber)
	}

	return &created, nil
}

// GetByID returns a single evidence item.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EvidenceItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
SELECT id, case_id, item_number, object_name, description, color, size,
       weight, found_location, notes, technician_id, created_at, updated_at
FROM evidence_items WHERE id = $1`

	var (
		item                                       domain.EvidenceItem
		desc, color, size, weight, location, notes pgtype.Text
	)
	err := q.QueryRow(ctx, sql, id).Scan(
		&item.ID, &item.CaseID, &item.ItemNumber, &item.ObjectName,
		&desc, &color, &size, &weight, &location, &notes,
		&item.TechnicianID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "evidence_item", id.String())
	}

	item.Description = textToPtr(desc)
	item.Color = textToPtr(color)
	item.Size = textToPtr(size)
	item.Weight = textToPtr(weight)
	item.FoundLocation = textToPtr(location)
	item.Notes = textToPtr(notes)
	return &item, nil
}

// Update overwrites the mutable attributes of an item. Optional attributes
// passed as nil become NULL.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, item *domain.EvidenceItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
UPDATE evidence_items
SET object_name = $2, description = $3, color = $4, size = $5, weight = $6,
    found_location = $7, notes = $8, updated_at = now()
WHERE id = $1`

	tag, err := q.Exec(ctx, sql,
		id, item.ObjectName, item.Description, item.Color, item.Size,
		item.Weight, item.FoundLocation, item.Notes,
	)
	if err != nil {
		return postgres.MapError(err, "evidence_item", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "evidence_item", id.String())
	}
	return nil
}

// Delete removes an evidence item.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM evidence_items WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "evidence_item", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "evidence_item", id.String())
	}
	return nil
}

// ListByCase returns all items of a case ordered by item number.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.EvidenceSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, snapshotSQL+` WHERE e.case_id = $1 ORDER BY e.item_number ASC`, caseID)
	if err != nil {
		return nil, postgres.MapError(err, "evidence_item", caseID.String())
	}
	defer rows.Close()

	var result []domain.EvidenceSnapshot
	for rows.Next() {
		var (
			snap                                       domain.EvidenceSnapshot
			desc, color, size, weight, location, notes pgtype.Text
		)
		err := rows.Scan(
			&snap.ID, &snap.CaseID, &snap.ItemNumber, &snap.ObjectName,
			&desc, &color, &size, &weight, &location, &notes,
			&snap.TechnicianID, &snap.CreatedAt, &snap.UpdatedAt,
			&snap.TechnicianName,
		)
		if err != nil {
			return nil, postgres.MapError(err, "evidence_item", caseID.String())
		}
		snap.Description = textToPtr(desc)
		snap.Color = textToPtr(color)
		snap.Size = textToPtr(size)
		snap.Weight = textToPtr(weight)
		snap.FoundLocation = textToPtr(location)
		snap.Notes = textToPtr(notes)
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "evidence_item", caseID.String())
	}

	return result, nil
}

func textToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

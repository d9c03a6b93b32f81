package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the given role and returns the
// filled domain.User. The password hash is a fixed bcrypt digest of
// "password123" so login-path tests can reuse it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID: uuid.New(),
		FirstName: "Test",
		LastName:  "User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		Username:  "testuser-" + suffix,
		// bcrypt("password123"), cost 10
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, username, password_hash, role_id, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, (SELECT id FROM roles WHERE name = $7), $8, $9, $10)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.Username,
		user.PasswordHash, user.Role.String(), user.Active, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCase creates a case in the given state owned by technicianID and
// returns the filled domain.Case.
func SeedCase(t *testing.T, pool *pgxpool.Pool, technicianID uuid.UUID, state domain.CaseState) domain.Case {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	location := "Zona 1, Ciudad de Guatemala"
	c := domain.Case{
		ID:               uuid.New(),
		CaseNumber:       "EXP-" + suffix,
		Title:            "Caso de prueba " + suffix,
		IncidentAt:       now.Add(-24 * time.Hour),
		IncidentLocation: &location,
		TechnicianID:     technicianID,
		State:            state,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cases (id, case_number, title, description, incident_at, incident_location, technician_id, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.CaseNumber, c.Title, c.Description, c.IncidentAt,
		c.IncidentLocation, c.TechnicianID, c.State.String(), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert case: %v", err)
	}

	return c
}

// SeedEvidence creates an evidence item attached to caseID and returns the
// filled domain.EvidenceItem.
func SeedEvidence(t *testing.T, pool *pgxpool.Pool, caseID, technicianID uuid.UUID, itemNumber string) domain.EvidenceItem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	color := "Negro"
	item := domain.EvidenceItem{
		ID:           uuid.New(),
		CaseID:       caseID,
		ItemNumber:   itemNumber,
		ObjectName:   "Objeto " + suffix,
		Color:        &color,
		TechnicianID: technicianID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO evidence_items (id, case_id, item_number, object_name, description, color, size, weight, found_location, notes, technician_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		item.ID, item.CaseID, item.ItemNumber, item.ObjectName, item.Description,
		item.Color, item.Size, item.Weight, item.FoundLocation, item.Notes,
		item.TechnicianID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvidence insert evidence_item: %v", err)
	}

	return item
}

// SeedApproval records a review decision for caseID and returns the filled
// domain.Approval.
func SeedApproval(t *testing.T, pool *pgxpool.Pool, caseID, coordinatorID uuid.UUID, approved bool) domain.Approval {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	justification := "Revisión completada"
	a := domain.Approval{
		ID:            uuid.New(),
		CaseID:        caseID,
		CoordinatorID: coordinatorID,
		Approved:      approved,
		Justification: &justification,
		DecidedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO approvals (id, case_id, coordinator_id, approved, justification, decided_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.CaseID, a.CoordinatorID, a.Approved, a.Justification, a.DecidedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApproval insert approval: %v", err)
	}

	return a
}

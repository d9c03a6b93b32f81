package domain

import (
	"time"

	"github.com/google/uuid"
)

// Case represents one forensic incident file ("expediente").
type Case struct {
	ID               uuid.UUID
	CaseNumber       string
	Title            string
	Description      *string
	IncidentAt       time.Time
	IncidentLocation *string
	TechnicianID     uuid.UUID
	State            CaseState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CaseSnapshot is a Case enriched with denormalized display fields.
type CaseSnapshot struct {
	Case
	TechnicianName string
	StateLabel     string
	StateColor     string
	EvidenceCount  int
}

// CaseFilter contains the filtering parameters for case listings.
// All supplied filters apply together (AND semantics); nil fields are ignored.
type CaseFilter struct {
	State        *CaseState
	From         *time.Time
	To           *time.Time
	TechnicianID *uuid.UUID
}

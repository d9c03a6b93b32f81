package domain

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceItem represents a single piece of physical evidence ("indicio")
// attached to a case. ItemNumber is unique within the owning case.
type EvidenceItem struct {
	ID            uuid.UUID
	CaseID        uuid.UUID
	ItemNumber    string
	ObjectName    string
	Description   *string
	Color         *string
	Size          *string
	Weight        *string
	FoundLocation *string
	Notes         *string
	TechnicianID  uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EvidenceSnapshot is an EvidenceItem enriched with the registering
// technician's display name.
type EvidenceSnapshot struct {
	EvidenceItem
	TechnicianName string
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Approval records a coordinator's approve/reject decision on a case under
// review ("aprobación"). Justification is required when the outcome is
// negative; the lifecycle engine enforces at most one approval per review
// cycle by creating the row in the same transaction as the state transition.
type Approval struct {
	ID            uuid.UUID
	CaseID        uuid.UUID
	CoordinatorID uuid.UUID
	Approved      bool
	Justification *string
	DecidedAt     time.Time
}

// ApprovalSnapshot is an Approval enriched with the coordinator's display name.
type ApprovalSnapshot struct {
	Approval
	CoordinatorName string
}

package casefile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/pkg/ctxutil"
)

// SubmitForReview moves a case from Registering to InReview. From that point
// the evidence register is frozen. Any other prior state yields
// ErrInvalidState; concurrent submissions resolve in the store, so exactly
// one caller wins.
func (s *Service) SubmitForReview(ctx context.Context, caseID uuid.UUID) (*domain.CaseSnapshot, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.transition(ctx, caseID, domain.CaseStateRegistering, domain.CaseStateInReview); err != nil {
		return nil, fmt.Errorf("casefile.SubmitForReview: %w", err)
	}

	s.log.InfoContext(ctx, "case submitted for review",
		slog.String("case_id", caseID.String()))

	return s.GetCase(ctx, caseID)
}

// Decide records a coordinator's approve/reject decision and moves the case
// from InReview to the terminal state in a single transaction. A failed
// transition rolls the approval row back, which keeps one effective decision
// per review cycle.
func (s *Service) Decide(ctx context.Context, caseID uuid.UUID, input DecideInput) (*domain.Approval, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the reviewing coordinator
	reviewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	target := domain.CaseStateRejected
	if input.Approved {
		target = domain.CaseStateApproved
	}

	// Step 3: Approval insert + transition atomically
	var created *domain.Approval
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a := &domain.Approval{
			CaseID:        caseID,
			CoordinatorID: reviewerID,
			Approved:      input.Approved,
			Justification: input.Justification,
		}
		var err error
		created, err = s.approvals.Create(txCtx, a)
		if err != nil {
			return fmt.Errorf("create approval: %w", err)
		}

		return s.transition(txCtx, caseID, domain.CaseStateInReview, target)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidState) {
			return nil, err
		}
		return nil, fmt.Errorf("casefile.Decide: %w", err)
	}

	s.log.InfoContext(ctx, "case decided",
		slog.String("case_id", caseID.String()),
		slog.Bool("approved", input.Approved),
		slog.String("coordinator_id", reviewerID.String()))

	return created, nil
}

// SetState applies an explicit state change requested by a coordinator. Only
// transitions permitted by the lifecycle table are accepted, including the
// Rejected → Registering rework path.
func (s *Service) SetState(ctx context.Context, caseID uuid.UUID, target domain.CaseState) (*domain.CaseSnapshot, error) {
	if !target.IsValid() {
		return nil, domain.NewValidationError("state", "unknown state")
	}
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("casefile.SetState: %w", err)
	}
	if !c.State.CanTransitionTo(target) {
		return nil, &domain.InvalidStateError{From: c.State, To: target}
	}

	// The observed state can be stale by now; the conditional update
	// settles it.
	if err := s.transition(ctx, caseID, c.State, target); err != nil {
		return nil, fmt.Errorf("casefile.SetState: %w", err)
	}

	s.log.InfoContext(ctx, "case state changed",
		slog.String("case_id", caseID.String()),
		slog.String("from", c.State.String()),
		slog.String("to", target.String()))

	return s.GetCase(ctx, caseID)
}

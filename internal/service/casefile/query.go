package casefile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// GetCase returns a case snapshot with the technician name, state
// label/color and evidence count. Returns ErrNotFound when absent.
func (s *Service) GetCase(ctx context.Context, caseID uuid.UUID) (*domain.CaseSnapshot, error) {
	snap, err := s.cases.GetSnapshot(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("casefile.GetCase: %w", err)
	}
	return snap, nil
}

// ListCases returns case snapshots matching all supplied filters, newest
// first. Nil filters are ignored.
func (s *Service) ListCases(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSnapshot, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	cases, err := s.cases.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("casefile.ListCases: %w", err)
	}
	return cases, nil
}

// ListApprovals returns the decision history of a case, newest first.
// Returns ErrNotFound when the case does not exist.
func (s *Service) ListApprovals(ctx context.Context, caseID uuid.UUID) ([]domain.ApprovalSnapshot, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, fmt.Errorf("casefile.ListApprovals: %w", err)
	}

	approvals, err := s.approvals.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("casefile.ListApprovals: %w", err)
	}
	return approvals, nil
}

// Package casefile implements the case lifecycle operations: registration,
// submission for review, coordinator decisions and manual state changes.
package casefile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// caseRepo defines the case repository interface needed by casefile service.
type caseRepo interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	GetSnapshot(ctx context.Context, id uuid.UUID) (*domain.CaseSnapshot, error)
	List(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSnapshot, error)
	UpdateState(ctx context.Context, id uuid.UUID, from, to domain.CaseState) (bool, error)
}

// approvalRepo defines the approval repository interface needed by casefile service.
type approvalRepo interface {
	Create(ctx context.Context, a *domain.Approval) (*domain.Approval, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ApprovalSnapshot, error)
}

// txManager defines the transaction manager interface needed by casefile service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements case lifecycle operations.
type Service struct {
	log       *slog.Logger
	cases     caseRepo
	approvals approvalRepo
	tx        txManager
}

// NewService creates a new casefile service instance.
func NewService(
	logger *slog.Logger,
	cases caseRepo,
	approvals approvalRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "casefile"),
		cases:     cases,
		approvals: approvals,
		tx:        tx,
	}
}

// transition applies from → to as a conditional update. When the update
// touches no row the case is either gone or in a different state; the reload
// disambiguates the two.
func (s *Service) transition(ctx context.Context, caseID uuid.UUID, from, to domain.CaseState) error {
	ok, err := s.cases.UpdateState(ctx, caseID, from, to)
	if err != nil {
		return fmt.Errorf("update state: %w", err)
	}
	if ok {
		return nil
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return err
	}
	return &domain.InvalidStateError{From: c.State, To: to}
}

// Package evidence implements the evidence register. All mutations are
// gated on the owning case still being in the Registering state.
package evidence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// evidenceRepo defines the evidence repository interface needed by evidence service.
type evidenceRepo interface {
	Create(ctx context.Context, item *domain.EvidenceItem) (*domain.EvidenceItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EvidenceItem, error)
	Update(ctx context.Context, id uuid.UUID, item *domain.EvidenceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.EvidenceSnapshot, error)
}

// caseRepo defines the case repository interface needed by evidence service.
type caseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
}

// Service implements evidence register operations.
type Service struct {
	log   *slog.Logger
	items evidenceRepo
	cases caseRepo
}

// NewService creates a new evidence service instance.
func NewService(logger *slog.Logger, items evidenceRepo, cases caseRepo) *Service {
	return &Service{
		log:   logger.With("service", "evidence"),
		items: items,
		cases: cases,
	}
}

// requireRegistering loads the case and rejects the mutation unless it is
// still in the Registering state.
func (s *Service) requireRegistering(ctx context.Context, caseID uuid.UUID) error {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return err
	}
	if c.State != domain.CaseStateRegistering {
		return fmt.Errorf("case is %s: %w", c.State, domain.ErrInvalidState)
	}
	return nil
}

package casefile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/pkg/ctxutil"
)

// CreateCase registers a new case owned by the authenticated user. The case
// always starts in the Registering state regardless of input.
// Returns ErrAlreadyExists when the case number is taken.
func (s *Service) CreateCase(ctx context.Context, input CreateCaseInput) (*domain.Case, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the acting technician
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Persist
	c := &domain.Case{
		CaseNumber:       input.CaseNumber,
		Title:            input.Title,
		Description:      input.Description,
		IncidentAt:       input.IncidentAt,
		IncidentLocation: input.IncidentLocation,
		TechnicianID:     actorID,
	}

	created, err := s.cases.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("casefile.CreateCase: %w", err)
	}

	s.log.InfoContext(ctx, "case registered",
		slog.String("case_id", created.ID.String()),
		slog.String("case_number", created.CaseNumber))

	return created, nil
}

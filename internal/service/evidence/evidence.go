package evidence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/pkg/ctxutil"
)

// Add registers a new evidence item on a case that is still in the
// Registering state. Returns ErrInvalidState once the case has been
// submitted, ErrAlreadyExists on a duplicate item number within the case.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.EvidenceItem, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the acting technician
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: The owning case must still accept evidence
	if err := s.requireRegistering(ctx, input.CaseID); err != nil {
		return nil, fmt.Errorf("evidence.Add: %w", err)
	}

	// Step 4: Persist
	item := &domain.EvidenceItem{
		CaseID:        input.CaseID,
		ItemNumber:    input.ItemNumber,
		ObjectName:    input.ObjectName,
		Description:   input.Description,
		Color:         input.Color,
		Size:          input.Size,
		Weight:        input.Weight,
		FoundLocation: input.FoundLocation,
		Notes:         input.Notes,
		TechnicianID:  actorID,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("evidence.Add: %w", err)
	}

	s.log.InfoContext(ctx, "evidence registered",
		slog.String("case_id", input.CaseID.String()),
		slog.String("item_number", created.ItemNumber))

	return created, nil
}

// Update overwrites the mutable attributes of an item. The owning case is
// re-checked: edits are rejected once it leaves the Registering state.
func (s *Service) Update(ctx context.Context, itemID uuid.UUID, input UpdateInput) (*domain.EvidenceItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("evidence.Update: %w", err)
	}
	if err := s.requireRegistering(ctx, item.CaseID); err != nil {
		return nil, fmt.Errorf("evidence.Update: %w", err)
	}

	item.ObjectName = input.ObjectName
	item.Description = input.Description
	item.Color = input.Color
	item.Size = input.Size
	item.Weight = input.Weight
	item.FoundLocation = input.FoundLocation
	item.Notes = input.Notes

	if err := s.items.Update(ctx, itemID, item); err != nil {
		return nil, fmt.Errorf("evidence.Update: %w", err)
	}

	updated, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("evidence.Update reload: %w", err)
	}

	s.log.InfoContext(ctx, "evidence updated",
		slog.String("item_id", itemID.String()))

	return updated, nil
}

// Remove deletes an evidence item, subject to the same case state check as
// updates.
func (s *Service) Remove(ctx context.Context, itemID uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("evidence.Remove: %w", err)
	}
	if err := s.requireRegistering(ctx, item.CaseID); err != nil {
		return fmt.Errorf("evidence.Remove: %w", err)
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("evidence.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "evidence removed",
		slog.String("item_id", itemID.String()),
		slog.String("case_id", item.CaseID.String()))

	return nil
}

// ListForCase returns all items of a case ordered by item number.
// Returns ErrNotFound when the case does not exist.
func (s *Service) ListForCase(ctx context.Context, caseID uuid.UUID) ([]domain.EvidenceSnapshot, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, fmt.Errorf("evidence.ListForCase: %w", err)
	}

	items, err := s.items.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("evidence.ListForCase: %w", err)
	}
	return items, nil
}

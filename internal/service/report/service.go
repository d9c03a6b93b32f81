// Package report implements the reporting aggregator on top of the
// read-only reporting queries.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// reportRepo defines the reporting query interface needed by report service.
type reportRepo interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	CasesByState(ctx context.Context, period domain.ReportPeriod) ([]domain.StateBreakdownRow, error)
	ApprovalOutcomes(ctx context.Context, period domain.ReportPeriod) ([]domain.OutcomeBreakdownRow, error)
}

// Service implements reporting operations.
type Service struct {
	log     *slog.Logger
	reports reportRepo
}

// NewService creates a new report service instance.
func NewService(logger *slog.Logger, reports reportRepo) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
	}
}

// validatePeriod rejects inverted date ranges; open bounds are fine.
func validatePeriod(p domain.ReportPeriod) error {
	if p.From != nil && p.To != nil && p.From.After(*p.To) {
		return domain.NewValidationError("from", "must not be after to")
	}
	return nil
}

// Stats returns the global dashboard counters.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.reports.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.Stats: %w", err)
	}
	return stats, nil
}

// CasesByState returns the per-state case breakdown for the period,
// including catalog states with zero cases.
func (s *Service) CasesByState(ctx context.Context, period domain.ReportPeriod) ([]domain.StateBreakdownRow, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	rows, err := s.reports.CasesByState(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("report.CasesByState: %w", err)
	}
	return rows, nil
}

// ApprovalOutcomes returns the approvals/rejections breakdown for the
// period, with average review duration in hours.
func (s *Service) ApprovalOutcomes(ctx context.Context, period domain.ReportPeriod) ([]domain.OutcomeBreakdownRow, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	rows, err := s.reports.ApprovalOutcomes(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("report.ApprovalOutcomes: %w", err)
	}
	return rows, nil
}

package casefile

import (
	"time"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// CreateCaseInput holds parameters for case registration.
type CreateCaseInput struct {
	CaseNumber       string
	Title            string
	Description      *string
	IncidentAt       time.Time
	IncidentLocation *string
}

// Validate validates the create case input.
func (i CreateCaseInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseNumber == "" {
		errs = append(errs, domain.FieldError{Field: "case_number", Message: "required"})
	} else if len(i.CaseNumber) > 100 {
		errs = append(errs, domain.FieldError{Field: "case_number", Message: "too long"})
	}

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.IncidentAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "incident_date", Message: "required"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.IncidentLocation != nil && len(*i.IncidentLocation) > 255 {
		errs = append(errs, domain.FieldError{Field: "incident_location", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DecideInput holds parameters for a coordinator decision on a case
// under review.
type DecideInput struct {
	Approved      bool
	Justification *string
}

// Validate validates the decide input. A rejection without justification
// is not admissible.
func (i DecideInput) Validate() error {
	var errs []domain.FieldError

	if !i.Approved && (i.Justification == nil || *i.Justification == "") {
		errs = append(errs, domain.FieldError{Field: "justification", Message: "required when rejecting"})
	}
	if i.Justification != nil && len(*i.Justification) > 2000 {
		errs = append(errs, domain.FieldError{Field: "justification", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateFilter validates the optional case listing filters.
func validateFilter(f domain.CaseFilter) error {
	var errs []domain.FieldError

	if f.State != nil && !f.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "unknown state"})
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
